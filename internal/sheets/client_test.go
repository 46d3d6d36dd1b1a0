package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/portfolio-server/internal/model"
)

func TestClientAppend(t *testing.T) {
	sub := model.Submission{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Message:   "Hello & welcome",
		Timestamp: "2025-01-01T12:00:00.000Z",
	}

	t.Run("posts form-encoded fields", func(t *testing.T) {
		var got url.Values
		var contentType, method string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			contentType = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			got, _ = url.ParseQuery(string(body))
			w.Write([]byte(`{"result":"success"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		require.NoError(t, c.Append(context.Background(), sub))

		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "application/x-www-form-urlencoded", contentType)
		assert.Equal(t, "Ada Lovelace", got.Get("name"))
		assert.Equal(t, "ada@example.com", got.Get("email"))
		assert.Equal(t, "Hello & welcome", got.Get("message"))
		assert.Equal(t, "2025-01-01T12:00:00.000Z", got.Get("timestamp"))
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		assert.Error(t, c.Append(context.Background(), sub))
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		endpoint := srv.URL
		srv.Close()

		c := NewClient(endpoint, time.Second)
		assert.Error(t, c.Append(context.Background(), sub))
	})

	t.Run("missing endpoint makes no request", func(t *testing.T) {
		c := NewClient("", time.Second)
		assert.ErrorIs(t, c.Append(context.Background(), sub), ErrNotConfigured)
	})
}

func TestClientFetch(t *testing.T) {
	t.Run("returns body verbatim", func(t *testing.T) {
		payload := `[{"name":"Ada","email":"ada@example.com","message":"hi","timestamp":"2025-01-01T00:00:00.000Z","extra":1}]`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		data, err := c.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, payload, string(data))
	})

	t.Run("follows the script redirect", func(t *testing.T) {
		var hits atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/exec", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			http.Redirect(w, r, "/echo", http.StatusFound)
		})
		mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write([]byte(`[]`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		c := NewClient(srv.URL+"/exec", time.Second)
		data, err := c.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>Sign in</html>`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		_, err := c.Fetch(context.Background())
		assert.Error(t, err)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		_, err := c.Fetch(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		c := NewClient("", time.Second)
		_, err := c.Fetch(context.Background())
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
