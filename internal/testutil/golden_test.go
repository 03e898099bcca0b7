package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpFromGoldenFile(t *testing.T) {
	filename := SetUpFromGoldenFile(t)

	assert.Equal(t, "TestSetUpFromGoldenFile.txt", filepath.Base(filename))
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, GoldenFile(t), string(bytes))
}

func TestGoldenFile(t *testing.T) {
	content := GoldenFile(t)
	assert.Equal(t, "hola;hello\n", content)
}

func TestGoldenFileNamed(t *testing.T) {
	content := GoldenFileNamed(t, "TestGoldenFileNamedWithAnotherName.txt")
	assert.Equal(t, "adiós;goodbye\n", content)
}

func TestGoldenLines(t *testing.T) {
	t.Run("Subtest", func(t *testing.T) {
		assert.Equal(t, []string{"hola;hello", "", "adiós;goodbye"}, GoldenLines(t))
		assert.Equal(t, []string{"spanish", "", "spanish, goodbye"}, GoldenTagLines(t))
	})
}

func TestSetUpFromFileContent(t *testing.T) {
	filename := SetUpFromFileContent(t, "batch.txt", "hola\thello\n")
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "hola\thello\n", string(bytes))
}
