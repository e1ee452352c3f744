// Package storage owns the on-disk layout of uploaded media and the canonical
// addressing scheme that maps public /cdn/ URLs onto it. Every path handed in
// by a client goes through Resolve, which guarantees the result stays inside
// the configured media root.
package storage

import "errors"

const (
	// PublicPrefix is the fixed leading segment of every canonical address.
	// "/cdn/uploads/2024/05/clip-1a2b3c4d.mp4" is served from
	// "<root>/uploads/2024/05/clip-1a2b3c4d.mp4".
	PublicPrefix = "/cdn"

	// UploadsDir is the partition base under the root. Ingestion writes to
	// UploadsDir/<YYYY>/<MM>, and pruning never climbs above it.
	UploadsDir = "uploads"

	// partitionDepth bounds upward pruning after a delete: month, year, and
	// at most one level more, matching the uploads/YYYY/MM layout.
	partitionDepth = 3
)

// ErrTraversal is returned when a candidate path would resolve outside the
// media root.
var ErrTraversal = errors.New("path escapes storage root")

// ErrInvalidAddress is returned when an input address cannot be normalized to
// the canonical /cdn/ form.
var ErrInvalidAddress = errors.New("address must start with /cdn/")
