// Package media implements the media lifecycle: validated multipart
// ingestion into the date-partitioned store, public byte-range serving and
// removal by public address.
package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/grupoupper/storage/internal/storage"
)

var (
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrInvalidContent      = errors.New("invalid image")
	ErrNotFound            = errors.New("file not found")
)

// Object describes a stored media file as reported back to clients.
type Object struct {
	RelURL string // canonical address, "/cdn/uploads/YYYY/MM/<name>"
	URL    string // public URL, configured base + RelURL
	Mime   string
	Size   int64
}

// Service contains the business logic for media ingestion and removal.
type Service struct {
	store      *storage.Store
	allowedExt map[string]bool
}

// NewService creates a media Service persisting files through store and
// accepting only the given extensions.
func NewService(store *storage.Store, allowedExt []string) *Service {
	allow := make(map[string]bool, len(allowedExt))
	for _, e := range allowedExt {
		allow[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))] = true
	}
	return &Service{store: store, allowedExt: allow}
}

// Ingest validates one uploaded file and stores it under the current UTC
// year/month partition with a sanitized stem and a random suffix. Declared
// image types other than webp are content-sniffed after the write; a file
// that does not sniff as an image is removed again and rejected.
func (s *Service) Ingest(filename string, r io.Reader) (*Object, error) {
	ext, ok := extensionOf(filename)
	if !ok || !s.allowedExt[ext] {
		return nil, ErrExtensionNotAllowed
	}

	now := time.Now().UTC()
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	name := sanitizeBaseName(stem) + "-" + randomSuffix() + "." + ext
	rel := path.Join(storage.UploadsDir, now.Format("2006"), now.Format("01"), name)

	size, err := s.store.Save(rel, r)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	if sniffedExts[ext] {
		if err := s.verifyImage(rel); err != nil {
			// The bytes already landed; take them back out rather than
			// leave an orphan behind.
			_ = s.store.Remove(rel)
			return nil, err
		}
	}

	relURL := storage.PublicPrefix + "/" + rel
	return &Object{
		RelURL: relURL,
		URL:    s.store.PublicURL(relURL),
		Mime:   TypeByName(name),
		Size:   size,
	}, nil
}

// Remove resolves a public URL or canonical address to its stored file and
// deletes it, pruning the partition directories the removal emptied. The
// canonical address is returned for the client even when the file is gone.
func (s *Service) Remove(input string) (string, error) {
	relURL, err := s.store.RelURL(input)
	if err != nil {
		return "", err
	}

	rel := strings.TrimPrefix(relURL, storage.PublicPrefix)
	if err := s.store.Remove(rel); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return relURL, ErrNotFound
		}
		return relURL, err
	}
	return relURL, nil
}

// verifyImage sniffs the leading bytes of a stored file and reports
// ErrInvalidContent unless they classify as a raster image. The declared
// format does not have to match the sniffed one; a PNG uploaded as .jpg
// passes.
func (s *Service) verifyImage(rel string) error {
	f, err := s.store.Open(rel)
	if err != nil {
		return fmt.Errorf("open for sniffing: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512) // http.DetectContentType never reads further
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("sniff upload: %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(buf[:n]), "image/") {
		return ErrInvalidContent
	}
	return nil
}
