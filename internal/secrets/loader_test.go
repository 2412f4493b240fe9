package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "key")
	require.NoError(t, os.WriteFile(file, []byte("  from-file\n"), 0o600))
	t.Setenv("RESUME_MATCHER_TEST_KEY", " from-env ")

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{name: "file wins", src: Source{File: file, Env: "RESUME_MATCHER_TEST_KEY", Value: "inline"}, want: "from-file"},
		{name: "env over inline", src: Source{Env: "RESUME_MATCHER_TEST_KEY", Value: "inline"}, want: "from-env"},
		{name: "unset env falls back", src: Source{Env: "RESUME_MATCHER_UNSET_KEY", Value: " inline "}, want: "inline"},
		{name: "inline only", src: Source{Value: "inline"}, want: "inline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte(" \n"), 0o600))

	_, err := Load(Source{Name: "gemini api key"})
	assert.EqualError(t, err, "gemini api key is not configured")

	_, err = Load(Source{Name: "gemini api key", File: empty, Value: "inline"})
	assert.ErrorContains(t, err, "is empty")

	_, err = Load(Source{File: filepath.Join(dir, "missing")})
	assert.ErrorContains(t, err, "reading secret from file")
}
