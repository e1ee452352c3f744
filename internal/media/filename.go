package media

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// maxBaseLen caps the sanitized stem of a stored file name.
const maxBaseLen = 80

// randomSuffix returns the 8-hex-character suffix appended to every stored
// name. Uniqueness is probabilistic: four random bytes, no collision check.
func randomSuffix() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}

// foldASCII maps accented Latin letters onto their plain ASCII equivalents.
var foldASCII = map[rune]string{
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Ā': "A", 'Ă': "A", 'Ą': "A",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'ā': "a", 'ă': "a", 'ą': "a",
	'Ç': "C", 'Ć': "C", 'Ĉ': "C", 'Ċ': "C", 'Č': "C",
	'ç': "c", 'ć': "c", 'ĉ': "c", 'ċ': "c", 'č': "c",
	'Ď': "D", 'Đ': "D", 'Ð': "D",
	'ď': "d", 'đ': "d", 'ð': "d",
	'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E", 'Ē': "E", 'Ĕ': "E", 'Ė': "E", 'Ę': "E", 'Ě': "E",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ē': "e", 'ĕ': "e", 'ė': "e", 'ę': "e", 'ě': "e",
	'Ĝ': "G", 'Ğ': "G", 'Ġ': "G", 'Ģ': "G",
	'ĝ': "g", 'ğ': "g", 'ġ': "g", 'ģ': "g",
	'Ĥ': "H", 'Ħ': "H",
	'ĥ': "h", 'ħ': "h",
	'Ì': "I", 'Í': "I", 'Î': "I", 'Ï': "I", 'Ĩ': "I", 'Ī': "I", 'Ĭ': "I", 'Į': "I", 'İ': "I",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ĩ': "i", 'ī': "i", 'ĭ': "i", 'į': "i", 'ı': "i",
	'Ĵ': "J", 'ĵ': "j",
	'Ķ': "K", 'ķ': "k",
	'Ĺ': "L", 'Ļ': "L", 'Ľ': "L", 'Ŀ': "L", 'Ł': "L",
	'ĺ': "l", 'ļ': "l", 'ľ': "l", 'ŀ': "l", 'ł': "l",
	'Ñ': "N", 'Ń': "N", 'Ņ': "N", 'Ň': "N",
	'ñ': "n", 'ń': "n", 'ņ': "n", 'ň': "n",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O", 'Ø': "O", 'Ō': "O", 'Ŏ': "O", 'Ő': "O",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o", 'ō': "o", 'ŏ': "o", 'ő': "o",
	'Ŕ': "R", 'Ŗ': "R", 'Ř': "R",
	'ŕ': "r", 'ŗ': "r", 'ř': "r",
	'Ś': "S", 'Ŝ': "S", 'Ş': "S", 'Š': "S",
	'ś': "s", 'ŝ': "s", 'ş': "s", 'š': "s",
	'Ţ': "T", 'Ť': "T", 'Ŧ': "T",
	'ţ': "t", 'ť': "t", 'ŧ': "t",
	'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U", 'Ũ': "U", 'Ū': "U", 'Ŭ': "U", 'Ů': "U", 'Ű': "U", 'Ų': "U",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ũ': "u", 'ū': "u", 'ŭ': "u", 'ů': "u", 'ű': "u", 'ų': "u",
	'Ŵ': "W", 'ŵ': "w",
	'Ý': "Y", 'Ŷ': "Y", 'Ÿ': "Y",
	'ý': "y", 'ŷ': "y", 'ÿ': "y",
	'Ź': "Z", 'Ż': "Z", 'Ž': "Z",
	'ź': "z", 'ż': "z", 'ž': "z",
	'Æ': "AE", 'æ': "ae",
	'Œ': "OE", 'œ': "oe",
	'Þ': "TH", 'þ': "th",
	'ß': "ss",
}

// sanitizeBaseName reduces a client-supplied file stem to a portable name:
// accented letters fold to ASCII, whitespace and path-separator runs become
// a single underscore, every other character outside [A-Za-z0-9_-] is
// dropped, and the result is capped at maxBaseLen. A stem with nothing left
// after cleaning becomes "file".
func sanitizeBaseName(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))

	pendingSep := false
	emit := func(s string) {
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteString(s)
	}

	for _, r := range stem {
		if folded, ok := foldASCII[r]; ok {
			emit(folded)
			continue
		}
		switch {
		case r == '/' || r == '\\' || unicode.IsSpace(r):
			pendingSep = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			r == '_' || r == '-':
			emit(string(r))
		}
	}

	out := b.String()
	if len(out) > maxBaseLen {
		out = out[:maxBaseLen]
	}
	out = strings.Trim(out, "_-")
	if out == "" {
		return "file"
	}
	return out
}
