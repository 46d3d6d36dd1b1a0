package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw      string
		expected Text
	}{
		{`"s3cret"`, "s3cret"},
		{`""`, ""},
		{`"  "`, "  "},
		{`123`, "123"},
		{`-4.25`, "-4.25"},
		{`0`, ""},
		{`0.0`, ""},
		{`true`, "true"},
		{`false`, ""},
		{`null`, ""},
		{`{"k": "v"}`, `{"k":"v"}`},
		{`[]`, "[]"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTextInStruct(t *testing.T) {
	var req struct {
		Password Text `json:"password"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"password":123}`), &req))
	assert.Equal(t, "123", req.Password.String())
}
