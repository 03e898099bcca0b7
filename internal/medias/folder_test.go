package medias

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestImport(t *testing.T) {
	srcDir := t.TempDir()
	mediaDir := t.TempDir()

	src := filepath.Join(srcDir, "go.png")
	writeFile(t, src, "gopher")

	name, err := Import(src, mediaDir, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, "go.png", name)
	assert.FileExists(t, filepath.Join(mediaDir, "go.png"))

	// Same content => reused
	name, err = Import(src, mediaDir, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, "go.png", name)
	assert.NoFileExists(t, filepath.Join(mediaDir, "go1.png"))

	// Same name but different content => counter
	other := filepath.Join(t.TempDir(), "go.png")
	writeFile(t, other, "gopher v2")
	name, err = Import(other, mediaDir, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, "go1.png", name)

	writeFile(t, other, "gopher v3")
	name, err = Import(other, mediaDir, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, "go2.png", name)

	// Reuse existing file whatever the content
	name, err = Import(other, mediaDir, ImportOptions{Reuse: true})
	require.NoError(t, err)
	assert.Equal(t, "go.png", name)

	content, err := os.ReadFile(filepath.Join(mediaDir, "go1.png"))
	require.NoError(t, err)
	assert.Equal(t, "gopher v2", string(content))
}

func TestImportSlugify(t *testing.T) {
	srcDir := t.TempDir()
	mediaDir := t.TempDir()

	src := filepath.Join(srcDir, "My Photo.PNG")
	writeFile(t, src, "photo")

	name, err := Import(src, mediaDir, ImportOptions{Slugify: true})
	require.NoError(t, err)
	assert.Equal(t, "my-photo.png", name)
	assert.FileExists(t, filepath.Join(mediaDir, "my-photo.png"))
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "unknown.png"), t.TempDir(), ImportOptions{})
	assert.Error(t, err)
}

func TestReferences(t *testing.T) {
	content := `What is it?;<img src="go.png">
Listen;<audio controls=""><source src="bell.mp3" type="audio/mpeg"></audio>
Watch;<video src="clip.webm" controls width="320" height="240"></video>
Again;<img src="go.png">`

	assert.Equal(t, []string{"go.png", "bell.mp3", "clip.webm"}, References(content))
	assert.Empty(t, References("front;back"))
}

func TestMissing(t *testing.T) {
	mediaDir := t.TempDir()
	writeFile(t, filepath.Join(mediaDir, "go.png"), "gopher")

	content := `<img src="go.png"> <img src="rust.png">`
	assert.Equal(t, []string{"rust.png"}, Missing(mediaDir, content))
}

func TestRename(t *testing.T) {
	mediaDir := t.TempDir()
	writeFile(t, filepath.Join(mediaDir, "go.png"), "gopher")
	writeFile(t, filepath.Join(mediaDir, "taken.png"), "taken")

	content := `Logo;<img src="go.png">`

	updated, err := Rename(mediaDir, content, "go.png", "gopher.png")
	require.NoError(t, err)
	assert.Equal(t, `Logo;<img src="gopher.png">`, updated)
	assert.FileExists(t, filepath.Join(mediaDir, "gopher.png"))
	assert.NoFileExists(t, filepath.Join(mediaDir, "go.png"))

	// Never overwrite
	_, err = Rename(mediaDir, updated, "gopher.png", "taken.png")
	assert.ErrorIs(t, err, ErrMediaExists)
}
