package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/nt-bulk/internal/core"
	"github.com/julien-sobczak/nt-bulk/internal/medias"
	"github.com/spf13/cobra"
)

var mediaReuse bool
var mediaUpload bool

func init() {
	mediaAddCmd.Flags().BoolVar(&mediaReuse, "reuse", false, "reference an existing file with the same name instead of copying")
	mediaAddCmd.Flags().BoolVar(&mediaUpload, "upload", false, "send the file through AnkiConnect instead of copying it to the media folder")
	mediaCmd.AddCommand(mediaAddCmd)
	mediaCmd.AddCommand(mediaRefsCmd)
	mediaCmd.AddCommand(mediaMissingCmd)
	mediaCmd.AddCommand(mediaRenameCmd)
	rootCmd.AddCommand(mediaCmd)
}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage the files referenced by notes",
}

var mediaAddCmd = &cobra.Command{
	Use:   "add FILE...",
	Short: "Import files in the media folder and print the tags to insert in fields",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		importer := importMedia
		if mediaUpload {
			importer = ankiClient().StoreMediaFile
		}
		for _, path := range args {
			tag, err := addMedia(ctx, path, importer)
			if errors.Is(err, errUnsupportedMedia) {
				fmt.Fprintf(os.Stderr, "Ignoring %s: %v\n", path, errUnsupportedMedia)
				continue
			}
			exitOnError(err)
			fmt.Println(tag)
		}
	},
}

var mediaRefsCmd = &cobra.Command{
	Use:   "refs [file]",
	Short: "List the media referenced by the content",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args)
		exitOnError(err)
		for _, name := range medias.References(content) {
			fmt.Println(name)
		}
	},
}

var mediaMissingCmd = &cobra.Command{
	Use:   "missing [file]",
	Short: "List the referenced media absent from the media folder",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args)
		exitOnError(err)
		ctx, cancel := commandContext()
		defer cancel()
		mediaDir, err := mediaDirectory(ctx)
		exitOnError(err)
		missing := medias.Missing(mediaDir, content)
		for _, name := range missing {
			fmt.Println(name)
		}
		if len(missing) > 0 {
			os.Exit(1)
		}
	},
}

var mediaRenameCmd = &cobra.Command{
	Use:   "rename OLD NEW [file]",
	Short: "Rename a media file and update the references in the content",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(args[2:])
		exitOnError(err)
		ctx, cancel := commandContext()
		defer cancel()
		mediaDir, err := mediaDirectory(ctx)
		exitOnError(err)

		updated, err := medias.Rename(mediaDir, content, args[0], args[1])
		exitOnError(err)
		writeOutput(args[2:], updated)
	},
}

var errUnsupportedMedia = errors.New("unsupported file type")

// addMedia stores a file using the importer and returns the HTML tag to insert in a field.
func addMedia(ctx context.Context, path string, importer func(ctx context.Context, path string) (string, error)) (string, error) {
	kind := medias.DetectKind(path)
	if kind == medias.KindUnknown {
		return "", errUnsupportedMedia
	}
	name, err := importer(ctx, path)
	if err != nil {
		return "", err
	}
	core.CurrentLogger().Infof("Imported %s %s (%s) as %s", kind, path, medias.MimeType(filepath.Ext(path)), name)
	return medias.Tag(name), nil
}

func importMedia(ctx context.Context, path string) (string, error) {
	mediaDir, err := mediaDirectory(ctx)
	if err != nil {
		return "", err
	}
	return medias.Import(path, mediaDir, medias.ImportOptions{
		Slugify: core.CurrentConfig().ConfigFile.Medias.Slugify,
		Reuse:   mediaReuse,
	})
}

// mediaDirectory returns the configured media folder or asks Anki.
func mediaDirectory(ctx context.Context) (string, error) {
	if dir := core.CurrentConfig().ConfigFile.Medias.Dir; dir != "" {
		return dir, nil
	}
	return ankiClient().MediaDir(ctx)
}
