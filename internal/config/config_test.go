package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
patterns:
  - ./internal/...
  - ./models
output:
  suffix: _gen.go
  header: source-of-truth is the annotated struct
  comments: false
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./internal/...", "./models"}, f.Patterns)
	assert.Equal(t, "_gen.go", f.Output.Suffix)

	cfg := f.GeneratorConfig()
	assert.Equal(t, "_gen.go", cfg.Suffix)
	assert.Equal(t, "source-of-truth is the annotated struct", cfg.Header)
	assert.False(t, cfg.GenerateComments)
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./..."}, f.Patterns)
	assert.Equal(t, "_construct.go", f.Output.Suffix)
	assert.Equal(t, "construct-generator/typestate", f.Output.RuntimePackage)

	cfg := f.GeneratorConfig()
	assert.True(t, cfg.GenerateComments)
}

func TestParseRejectsBadSuffix(t *testing.T) {
	_, err := Parse([]byte("output:\n  suffix: .txt\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must end in .go")

	_, err = Parse([]byte("output:\n  suffix: _x_test.go\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test file")
}

func TestParseRejectsEmptyPattern(t *testing.T) {
	_, err := Parse([]byte("patterns:\n  - ./...\n  - \"  \"\n"))
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.yaml")
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	f := Default()
	require.NoError(t, f.Validate())
	assert.Equal(t, []string{"./..."}, f.Patterns)
}
