package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Aakarshit Raj", p.Personal.Name)
	assert.Len(t, p.Personal.About, 3)
	assert.Len(t, p.Experiences, 2)
	assert.Len(t, p.Projects, 2)
	assert.Equal(t, []string{"ReactJS", "Node.js", "Express.js", "MongoDB"}, p.Projects[0].Technologies)
	assert.Len(t, p.Skills, 4)
	assert.Equal(t, "AWS (IAM, EC2, S3, Lambda)", p.Skills[2].Items[0])
	assert.Len(t, p.Achievements, 8)
	assert.Empty(t, p.Achievements[0].Link)
}

func TestParse(t *testing.T) {
	t.Run("fills missing sections with empty slices", func(t *testing.T) {
		p, err := Parse([]byte("personal:\n  name: Ada\nskills:\n  - category: Math\n"))
		require.NoError(t, err)

		assert.NotNil(t, p.Personal.About)
		assert.NotNil(t, p.Experiences)
		assert.NotNil(t, p.Projects)
		assert.NotNil(t, p.Achievements)
		require.Len(t, p.Skills, 1)
		assert.NotNil(t, p.Skills[0].Items)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := Parse([]byte("personal:\n  title: Engineer\n"))
		assert.Error(t, err)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Parse([]byte("personal:\n  name: Ada\n  nickname: A\n"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("personal: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses bundled document", func(t *testing.T) {
		p, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Aakarshit Raj", p.Personal.Name)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("personal:\n  name: Grace Hopper\n"), 0644))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", p.Personal.Name)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
