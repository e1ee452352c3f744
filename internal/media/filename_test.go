package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBaseName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "clip", "clip"},
		{"case preserved", "MyClip", "MyClip"},
		{"digits and hyphen kept", "take-2", "take-2"},
		{"spaces collapse to underscore", "my  holiday   video", "my_holiday_video"},
		{"tabs and newlines collapse", "a\t\nb", "a_b"},
		{"diacritics fold", "résumé", "resume"},
		{"dots dropped", "résumé.final", "resumefinal"},
		{"eszett expands", "straße", "strasse"},
		{"ligature expands", "œuvre", "oeuvre"},
		{"portuguese folds", "promoção de verão", "promocao_de_verao"},
		{"path separators become underscores", "../../etc/passwd", "etc_passwd"},
		{"backslashes too", `clips\2026\final`, "clips_2026_final"},
		{"symbols dropped", "video (1) [final]!", "video_1_final"},
		{"emoji dropped", "clip🎬final", "clipfinal"},
		{"leading underscores trimmed", "__private__", "private"},
		{"empty input", "", "file"},
		{"nothing survives", "!!!.???", "file"},
		{"truncated to cap", strings.Repeat("a", 120), strings.Repeat("a", 80)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeBaseName(tc.in))
		})
	}
}

func TestSanitizeBaseNameOutputIsAlwaysSafe(t *testing.T) {
	inputs := []string{
		"normal.mp4", "..", "/", "////", "a/../b", "ünïcödé",
		"\x00null\x00byte", "mixed 中文 and latin", strings.Repeat("é", 200),
	}
	for _, in := range inputs {
		out := sanitizeBaseName(in)
		assert.NotEmpty(t, out, in)
		assert.LessOrEqual(t, len(out), 80, in)
		for _, r := range out {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || r == '_' || r == '-'
			assert.True(t, ok, "unsafe rune %q in %q (from %q)", r, out, in)
		}
	}
}

func TestRandomSuffix(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		suf := randomSuffix()
		assert.Regexp(t, "^[0-9a-f]{8}$", suf)
		seen[suf] = true
	}
	assert.Len(t, seen, 100)
}
