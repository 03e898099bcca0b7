package medias

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

type Kind int

const (
	KindUnknown Kind = 0
	KindAudio   Kind = 1
	KindPicture Kind = 2
	KindVideo   Kind = 3
)

var AudioExtensions = []string{".mp3", ".wav", ".ogg"}
var PictureExtensions = []string{".png", ".xpm", ".jpg", ".jpeg", ".bmp", ".gif"}
var VideoExtensions = []string{".mp4", ".webm", ".avi", ".mkv", ".mov"}

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindPicture:
		return "picture"
	case KindVideo:
		return "video"
	}
	return "unknown"
}

// DetectKind returns the media kind based on a file name.
func DetectKind(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case slices.Contains(AudioExtensions, ext):
		return KindAudio
	case slices.Contains(PictureExtensions, ext):
		return KindPicture
	case slices.Contains(VideoExtensions, ext):
		return KindVideo
	}
	return KindUnknown
}

// Tag returns the HTML snippet referencing a media file from a note field.
// Returns an empty string for unsupported files.
func Tag(filename string) string {
	switch DetectKind(filename) {
	case KindPicture:
		return fmt.Sprintf(`<img src="%s">`, filename)
	case KindAudio:
		return fmt.Sprintf(`<audio controls=""><source src="%s" type="audio/mpeg"></audio>`, filename)
	case KindVideo:
		return fmt.Sprintf(`<video src="%s" controls width="320" height="240"></video>`, filename)
	}
	return ""
}
