package storage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes media files under a single root directory and
// converts between the three address forms a file has: the absolute on-disk
// path, the canonical /cdn/ path, and the full public URL.
type Store struct {
	root       string // absolute, no trailing separator
	publicBase string // e.g. "https://storage.grupoupper.com.br", no trailing slash
}

// New creates a Store rooted at root, creating the directory if it does not
// exist yet. publicBaseURL is the browser-facing base public URLs are built
// from and stripped of.
func New(root, publicBaseURL string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", abs, err)
	}
	return &Store{
		root:       abs,
		publicBase: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Resolve maps a root-relative candidate path to an absolute path, rejecting
// anything that would land outside the root. The check is purely lexical:
// the candidate is cleaned, joined with the root, and the result must start
// with the root plus a separator. Requiring the separator keeps a sibling
// directory that shares a prefix (say /app/media-evil next to /app/media)
// from being accepted. Symlinks are not resolved.
func (s *Store) Resolve(candidate string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(candidate))
	if !strings.HasPrefix(full, s.root+string(os.PathSeparator)) {
		return "", ErrTraversal
	}
	return full, nil
}

// RelURL normalizes an input address, either a full public URL or an
// already-canonical path, to the canonical "/cdn/..." form. The public base
// is stripped only on an exact prefix match; a URL under any other base is
// left untouched and then fails the /cdn/ check.
func (s *Store) RelURL(input string) (string, error) {
	addr := strings.TrimSpace(input)
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		if strings.HasPrefix(addr, s.publicBase) {
			addr = strings.TrimPrefix(addr, s.publicBase)
		}
	}
	if !strings.HasPrefix(addr, PublicPrefix+"/") {
		return "", ErrInvalidAddress
	}
	return addr, nil
}

// FilePath resolves a canonical "/cdn/..." address to the absolute path of
// the file it denotes. The public prefix maps onto the root itself, so
// "/cdn/uploads/2024/05/x.mp4" becomes "<root>/uploads/2024/05/x.mp4".
func (s *Store) FilePath(relURL string) (string, error) {
	return s.Resolve(strings.TrimPrefix(relURL, PublicPrefix))
}

// PublicURL returns the browser-accessible URL for a canonical path.
func (s *Store) PublicURL(relURL string) string {
	return s.publicBase + relURL
}

// Save writes the contents of r to the root-relative path rel. The partition
// directories are created if absent (tolerating concurrent creation), and the
// bytes are written to a temp file in the destination directory first, then
// renamed into place, so a partially written file is never visible at the
// final path. Returns the number of bytes stored.
func (s *Store) Save(rel string, r io.Reader) (int64, error) {
	full, err := s.Resolve(rel)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create partition %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("flush upload: %w", err)
	}

	if err := os.Rename(tmp.Name(), full); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("finalize upload: %w", err)
	}
	return n, nil
}

// Open opens the file at the root-relative path rel for reading.
func (s *Store) Open(rel string) (*os.File, error) {
	full, err := s.Resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Remove deletes the file at the root-relative path rel and then prunes any
// parent directories the deletion left empty. Missing files and paths that
// name a directory report fs.ErrNotExist.
func (s *Store) Remove(rel string) error {
	full, err := s.Resolve(rel)
	if err != nil {
		return err
	}

	info, err := os.Stat(full)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fs.ErrNotExist
	}

	if err := os.Remove(full); err != nil {
		return err
	}
	s.prune(filepath.Dir(full))
	return nil
}

// prune climbs from dir removing directories the last delete emptied. It is
// best-effort cleanup: at most partitionDepth levels, stopping at the first
// non-empty or unreadable directory, and never removing the uploads base or
// the root itself. Races with concurrent writers simply stop the climb.
func (s *Store) prune(dir string) {
	stop := filepath.Join(s.root, UploadsDir)
	for i := 0; i < partitionDepth; i++ {
		if dir == s.root || dir == stop {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
