package media

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// rangePattern matches the supported Range header forms, "bytes=N-" and
// "bytes=N-M". Only the first range of a multi-range header is honored and
// the suffix form "bytes=-N" is not recognized; both degrade to full-content
// serving.
var rangePattern = regexp.MustCompile(`^bytes=(\d+)-(\d*)`)

// errUnsatisfiable reports a well-formed range that starts at or past the
// end of the file.
var errUnsatisfiable = errors.New("range not satisfiable")

// byteRange is an inclusive byte interval within a file.
type byteRange struct {
	start, end int64
}

func (r byteRange) length() int64 { return r.end - r.start + 1 }

func (r byteRange) contentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.start, r.end, size)
}

// parseRange interprets a Range header against a file of the given size.
// A nil range with a nil error means the header named no usable range
// (absent, malformed, suffix-only, or inverted) and the caller should serve
// the whole file. errUnsatisfiable maps to HTTP 416. An open-ended or
// oversized end is clamped to the last byte.
func parseRange(header string, size int64) (*byteRange, error) {
	m := rangePattern.FindStringSubmatch(header)
	if m == nil {
		return nil, nil
	}

	start, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil, nil
	}
	if start >= size {
		return nil, errUnsatisfiable
	}

	end := size - 1
	if m[2] != "" {
		e, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, nil
		}
		if e < start {
			return nil, nil
		}
		if e < end {
			end = e
		}
	}

	return &byteRange{start: start, end: end}, nil
}
