package medias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		kind     Kind
	}{
		{"go.png", KindPicture},
		{"GO.JPEG", KindPicture},
		{"bell.mp3", KindAudio},
		{"bell.ogg", KindAudio},
		{"clip.webm", KindVideo},
		{"clip.mov", KindVideo},
		{"notes.txt", KindUnknown},
		{"noextension", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.kind, DetectKind(tt.filename))
		})
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t, `<img src="go.png">`, Tag("go.png"))
	assert.Equal(t, `<audio controls=""><source src="bell.wav" type="audio/mpeg"></audio>`, Tag("bell.wav"))
	assert.Equal(t, `<video src="clip.mp4" controls width="320" height="240"></video>`, Tag("clip.mp4"))
	assert.Equal(t, "", Tag("notes.pdf"))
}
