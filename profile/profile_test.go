/*
File    : milkconv/profile/profile_test.go
*/
package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_OverridesOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	assert.NoError(t, os.WriteFile(path, []byte("precision = \"mediump\"\n"), 0o644))

	p, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "mediump", p.Precision)
	assert.Equal(t, Default().MaxWaveIters, p.MaxWaveIters)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/profile.toml")
	assert.Error(t, err)
}

func TestDefault_HasSaneValues(t *testing.T) {
	p := Default()
	assert.Equal(t, 6, p.DefaultWave)
	assert.True(t, p.WidenBounds)
}
