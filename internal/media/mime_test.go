package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeByName(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{"clip.mp4", "video/mp4"},
		{"clip.m4v", "video/x-m4v"},
		{"clip.mov", "video/quicktime"},
		{"clip.webm", "video/webm"},
		{"clip.avi", "video/x-msvideo"},
		{"shot.jpg", "image/jpeg"},
		{"shot.JPEG", "image/jpeg"},
		{"shot.png", "image/png"},
		{"anim.webp", "image/webp"},
		{"uppercase.MP4", "video/mp4"},
		{"path/with/dirs/clip.mp4", "video/mp4"},
		{"archive.zzz", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			assert.Equal(t, tc.want, TypeByName(tc.file))
		})
	}
}

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		file   string
		ext    string
		hasExt bool
	}{
		{"clip.mp4", "mp4", true},
		{"CLIP.MP4", "mp4", true},
		{"archive.tar.gz", "gz", true},
		{".hidden", "hidden", true},
		{"trailing.", "", true},
		{"noextension", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run("name "+tc.file, func(t *testing.T) {
			ext, ok := extensionOf(tc.file)
			assert.Equal(t, tc.hasExt, ok)
			assert.Equal(t, tc.ext, ext)
		})
	}
}
