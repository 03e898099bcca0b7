package medias

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"github.com/otiai10/copy"

	"github.com/julien-sobczak/nt-bulk/internal/helpers"
	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

var ErrMediaExists = errors.New("media already exists")

// Media references as inserted by Tag().
var referenceRegex = regexp.MustCompile(`<(?:img|source|video) src="([^"]+)"`)

type ImportOptions struct {
	// Slugify normalizes the file name (ex: "My Photo.PNG" => "my-photo.png").
	Slugify bool
	// Reuse keeps an existing file with the same name instead of importing a numbered copy,
	// even when the contents differ.
	Reuse bool
}

// Import copies a file into the media folder and returns the name to reference it.
// An existing file with the same name is never overwritten. It is reused when
// the contents are identical. Otherwise, a counter is appended to the base name
// (ex: "go.png" => "go1.png").
func Import(src, mediaDir string, opts ImportOptions) (string, error) {
	stat, err := os.Stat(src)
	if err != nil {
		return "", err
	}
	if stat.IsDir() {
		return "", fmt.Errorf("%s is a directory", src)
	}

	name := filepath.Base(src)
	if opts.Slugify {
		ext := strings.ToLower(filepath.Ext(name))
		name = slug.Make(text.TrimExtension(name)) + ext
	}

	dest := filepath.Join(mediaDir, name)
	if _, err := os.Stat(dest); err == nil {
		if opts.Reuse {
			return name, nil
		}
		same, err := helpers.SameContent(src, dest)
		if err != nil {
			return "", err
		}
		if same {
			return name, nil
		}
		name, dest = nextAvailableName(mediaDir, name)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := copy.Copy(src, dest); err != nil {
		return "", fmt.Errorf("unable to copy %s to media folder: %w", src, err)
	}
	return name, nil
}

func nextAvailableName(mediaDir, name string) (string, string) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	counter := 1
	for {
		candidate := fmt.Sprintf("%s%d%s", base, counter, ext)
		path := filepath.Join(mediaDir, candidate)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return candidate, path
		}
		counter++
	}
}

// References returns the media file names referenced in a text, in order of appearance.
func References(content string) []string {
	var names []string
	for _, match := range referenceRegex.FindAllStringSubmatch(content, -1) {
		names = append(names, match[1])
	}
	return text.Unique(names)
}

// Missing returns the referenced media files absent from the media folder.
func Missing(mediaDir, content string) []string {
	var missing []string
	for _, name := range References(content) {
		if _, err := os.Stat(filepath.Join(mediaDir, name)); os.IsNotExist(err) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Rename renames a file in the media folder and updates the references in the text.
func Rename(mediaDir, content, oldName, newName string) (string, error) {
	if oldName == newName {
		return content, nil
	}
	newPath := filepath.Join(mediaDir, newName)
	if _, err := os.Stat(newPath); err == nil {
		return content, fmt.Errorf("%w: %s", ErrMediaExists, newName)
	}
	if err := os.Rename(filepath.Join(mediaDir, oldName), newPath); err != nil {
		return content, err
	}
	return strings.ReplaceAll(content, `src="`+oldName+`"`, `src="`+newName+`"`), nil
}
