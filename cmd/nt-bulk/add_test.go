package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/internal/medias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatchRequest() core.BuildRequest {
	return core.BuildRequest{
		Lines:      []string{"hola;hello", "", "no delimiter"},
		NoteType:   "Basic",
		Deck:       "Spanish",
		Delimiters: []core.Delimiter{core.Semicolon},
	}
}

func loadBatches(t *testing.T, config *core.Config) []*core.Batch {
	t.Helper()
	journal, err := core.OpenJournal(config.JournalPath())
	require.NoError(t, err)
	defer journal.Close()
	batches, err := journal.Batches(10)
	require.NoError(t, err)
	return batches
}

func TestBuildAndRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed batch", func(t *testing.T) {
		config := &core.Config{RootDirectory: t.TempDir()}
		store := core.NewMemoryStore()

		result, err := buildAndRecord(ctx, config, core.StaticSchemas{"Basic": {"Front", "Back"}}, store, newBatchRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, store.Notes, 1)

		batches := loadBatches(t, config)
		require.Len(t, batches, 1)
		assert.Equal(t, 1, batches[0].Created)
		assert.Equal(t, 1, batches[0].Skipped)
		assert.False(t, batches[0].FinishedAt.IsZero())
	})

	t.Run("Unknown note type", func(t *testing.T) {
		config := &core.Config{RootDirectory: t.TempDir()}
		store := core.NewMemoryStore()

		result, err := buildAndRecord(ctx, config, core.StaticSchemas{}, store, newBatchRequest())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, store.Notes)

		// No unfinished batch is left behind
		assert.Empty(t, loadBatches(t, config))
	})

	t.Run("Missing selection", func(t *testing.T) {
		config := &core.Config{RootDirectory: t.TempDir()}
		req := newBatchRequest()
		req.Deck = ""

		_, err := buildAndRecord(ctx, config, core.StaticSchemas{"Basic": {"Front", "Back"}}, core.NewMemoryStore(), req)
		require.ErrorIs(t, err, core.ErrMissingSelection)
		assert.NoFileExists(t, config.JournalPath())
	})
}

func TestFormatBuildError(t *testing.T) {
	t.Run("Interrupted", func(t *testing.T) {
		result := &core.BuildResult{
			Created:  2,
			Failures: []*core.NoteCreationError{{Line: 3, Err: errors.New("duplicate")}},
		}
		expected := "Interrupted. Notes already created are kept.\n" +
			"Line 4: duplicate\n" +
			"2 cards added successfully! (1 failed)\n"
		assert.Equal(t, expected, formatBuildError(result, context.Canceled))
	})

	t.Run("Interrupted before any note", func(t *testing.T) {
		assert.Equal(t, "Interrupted. Notes already created are kept.\n", formatBuildError(nil, context.Canceled))
	})

	t.Run("Missing selection", func(t *testing.T) {
		assert.Equal(t, "missing selection (use --deck, --note-type and --delimiters)\n", formatBuildError(nil, core.ErrMissingSelection))
	})

	t.Run("Other", func(t *testing.T) {
		assert.Equal(t, "boom\n", formatBuildError(nil, errors.New("boom")))
	})
}

func TestAddMedia(t *testing.T) {
	ctx := context.Background()
	srcDir := t.TempDir()
	mediaDir := t.TempDir()
	importer := func(ctx context.Context, path string) (string, error) {
		return medias.Import(path, mediaDir, medias.ImportOptions{})
	}

	t.Run("Picture", func(t *testing.T) {
		src := filepath.Join(srcDir, "go.png")
		require.NoError(t, os.WriteFile(src, []byte("gopher"), 0644))

		tag, err := addMedia(ctx, src, importer)
		require.NoError(t, err)
		assert.Equal(t, `<img src="go.png">`, tag)
		assert.FileExists(t, filepath.Join(mediaDir, "go.png"))
	})

	t.Run("Unsupported file", func(t *testing.T) {
		called := false
		_, err := addMedia(ctx, filepath.Join(srcDir, "notes.txt"), func(ctx context.Context, path string) (string, error) {
			called = true
			return "", nil
		})
		assert.ErrorIs(t, err, errUnsupportedMedia)
		assert.False(t, called)
	})

	t.Run("Import failure", func(t *testing.T) {
		_, err := addMedia(ctx, filepath.Join(srcDir, "missing.mp3"), importer)
		assert.Error(t, err)
	})
}
