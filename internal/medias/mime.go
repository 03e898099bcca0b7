package medias

import "strings"

var mimeTypes = map[string]string{
	// See https://developer.mozilla.org/en-US/docs/Web/HTTP/Basics_of_HTTP/MIME_types/Common_types
	".aac":  "audio/aac",
	".avi":  "video/x-msvideo",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".ogv":  "video/ogg",
	".opus": "audio/opus",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".wav":  "audio/wav",
	".weba": "audio/webm",
	".webm": "video/webm",
	".webp": "image/webp",
	".xpm":  "image/x-xpixmap",
}

// MimeType returns the mime type for common media file extensions.
func MimeType(extension string) string {
	mime, ok := mimeTypes[strings.ToLower(extension)]
	if !ok {
		// RFC 2046 declares:
		// The "octet-stream" subtype is used to indicate that a body contains arbitrary binary data.
		return "application/octet-stream"
	}
	return mime
}
