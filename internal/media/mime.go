package media

import (
	"mime"
	"path/filepath"
	"strings"
)

// mimeByExt pins the MIME types of the media formats this service serves.
// mime.TypeByExtension consults /etc/mime.types, which minimal container
// images do not ship, and Go's compiled-in table has no video entries.
var mimeByExt = map[string]string{
	"mp4":  "video/mp4",
	"m4v":  "video/x-m4v",
	"mov":  "video/quicktime",
	"webm": "video/webm",
	"avi":  "video/x-msvideo",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// sniffedExts are the declared image types whose content is verified after
// the bytes land on disk. webp uploads are accepted on extension alone.
var sniffedExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// TypeByName guesses the MIME type of a file from its extension, falling
// back to the platform table and finally to application/octet-stream.
func TypeByName(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if mt, ok := mimeByExt[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension("." + ext); mt != "" {
		return mt
	}
	return "application/octet-stream"
}

// extensionOf returns the lower-cased extension after the final dot and
// whether the name carries one at all.
func extensionOf(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(ext, ".")), true
}
