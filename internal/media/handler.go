package media

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/grupoupper/storage/internal/config"
	"github.com/grupoupper/storage/internal/response"
	"github.com/grupoupper/storage/internal/storage"
)

// cacheControl is sent with everything under /cdn/. Stored names embed a
// random suffix, so the content behind a given URL never changes.
const cacheControl = "public, max-age=31536000"

// Handler holds the HTTP handlers for the media endpoints.
type Handler struct {
	svc       *Service
	store     *storage.Store
	origin    string // precomputed Access-Control-Allow-Origin value
	maxUpload int64
}

// NewHandler creates a media Handler configured from cfg.
func NewHandler(svc *Service, store *storage.Store, cfg *config.Config) *Handler {
	return &Handler{
		svc:       svc,
		store:     store,
		origin:    originHeader(cfg.AllowedOrigins),
		maxUpload: cfg.MaxUploadBytes(),
	}
}

// originHeader mirrors the configured allow-list onto served files: a lone
// "*" stays a wildcard, anything else is sent as the joined list.
func originHeader(origins []string) string {
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return "*"
	}
	return strings.Join(origins, ",")
}

type uploadResponse struct {
	OK     bool   `json:"ok" example:"true"`
	URL    string `json:"url" example:"https://storage.grupoupper.com.br/cdn/uploads/2026/08/clipe-1a2b3c4d.mp4"`
	RelURL string `json:"rel_url" example:"/cdn/uploads/2026/08/clipe-1a2b3c4d.mp4"`
	Mime   string `json:"mime" example:"video/mp4"`
	Size   int64  `json:"size" example:"1048576"`
}

type deleteRequest struct {
	URL    string `json:"url" example:"https://storage.grupoupper.com.br/cdn/uploads/2026/08/clipe-1a2b3c4d.mp4"`
	RelURL string `json:"rel_url" example:"/cdn/uploads/2026/08/clipe-1a2b3c4d.mp4"`
}

type deleteResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Deleted string `json:"deleted" example:"/cdn/uploads/2026/08/clipe-1a2b3c4d.mp4"`
}

type deleteNotFoundResponse struct {
	OK     bool   `json:"ok" example:"false"`
	Error  string `json:"error" example:"file not found"`
	RelURL string `json:"rel_url" example:"/cdn/uploads/2026/08/clipe-1a2b3c4d.mp4"`
}

// Upload godoc
//
//	@Summary		Upload a media file
//	@Description	Stores one file under the current year/month partition and returns its public address.
//	@Tags			media
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Media file"
//	@Success		200		{object}	uploadResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		413		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Security		BearerAuth
//	@Router			/admin/media/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			response.Error(w, http.StatusRequestEntityTooLarge, "file too large")
		case errors.Is(err, http.ErrMissingFile):
			response.BadRequest(w, "file missing")
		default:
			response.BadRequest(w, "invalid multipart form")
		}
		return
	}
	defer file.Close()

	if header.Filename == "" {
		response.BadRequest(w, "file missing")
		return
	}

	obj, err := h.svc.Ingest(header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrExtensionNotAllowed):
			response.BadRequest(w, "file extension not allowed")
		case errors.Is(err, ErrInvalidContent):
			response.BadRequest(w, "invalid image")
		case errors.Is(err, storage.ErrTraversal):
			response.Forbidden(w, "forbidden path")
		default:
			response.InternalError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, uploadResponse{
		OK:     true,
		URL:    obj.URL,
		RelURL: obj.RelURL,
		Mime:   obj.Mime,
		Size:   obj.Size,
	})
}

// Delete godoc
//
//	@Summary		Delete a media file
//	@Description	Removes the file behind a public URL or canonical /cdn/ address and prunes emptied partition directories.
//	@Tags			media
//	@Accept			json
//	@Produce		json
//	@Param			request	body		deleteRequest	true	"Address of the file to delete"
//	@Success		200		{object}	deleteResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		403		{object}	response.ErrorBody
//	@Failure		404		{object}	deleteNotFoundResponse
//	@Security		BearerAuth
//	@Router			/admin/media/delete [post]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	addr := deleteAddress(r)
	if addr == "" {
		response.BadRequest(w, "missing url or rel_url")
		return
	}

	relURL, err := h.svc.Remove(addr)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, deleteResponse{OK: true, Deleted: relURL})
	case errors.Is(err, storage.ErrInvalidAddress):
		response.BadRequest(w, "address must start with /cdn/")
	case errors.Is(err, storage.ErrTraversal):
		response.Forbidden(w, "forbidden path")
	case errors.Is(err, ErrNotFound):
		response.JSON(w, http.StatusNotFound, deleteNotFoundResponse{
			OK:     false,
			Error:  "file not found",
			RelURL: relURL,
		})
	default:
		response.InternalError(w)
	}
}

// deleteAddress pulls the target address out of the request, trying the JSON
// body, then form fields, then the query string. "url" wins over "rel_url"
// within each carrier.
func deleteAddress(r *http.Request) string {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req deleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			if req.URL != "" {
				return req.URL
			}
			if req.RelURL != "" {
				return req.RelURL
			}
		}
	}
	if v := r.PostFormValue("url"); v != "" {
		return v
	}
	if v := r.PostFormValue("rel_url"); v != "" {
		return v
	}
	if v := r.URL.Query().Get("url"); v != "" {
		return v
	}
	return r.URL.Query().Get("rel_url")
}

// ServeCDN godoc
//
//	@Summary		Serve a stored media file
//	@Description	Streams the file at the given storage path. Supports single byte ranges of the forms bytes=N- and bytes=N-M.
//	@Tags			media
//	@Produce		octet-stream
//	@Param			relpath	path	string	true	"Storage path, e.g. uploads/2026/08/clipe-1a2b3c4d.mp4"
//	@Param			Range	header	string	false	"Byte range"	example(bytes=0-1023)
//	@Success		200	{file}		file
//	@Success		206	{file}		file
//	@Failure		403	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		416	"requested range not satisfiable"
//	@Router			/cdn/{relpath} [get]
func (h *Handler) ServeCDN(w http.ResponseWriter, r *http.Request) {
	relpath := chi.URLParam(r, "*")

	full, err := h.store.Resolve(relpath)
	if err != nil {
		response.Forbidden(w, "forbidden path")
		return
	}

	f, err := os.Open(full)
	if err != nil {
		response.NotFound(w, "file not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		response.NotFound(w, "file not found")
		return
	}
	size := info.Size()

	hdr := w.Header()
	hdr.Set("Content-Type", TypeByName(full))
	hdr.Set("Accept-Ranges", "bytes")
	hdr.Set("Cache-Control", cacheControl)
	hdr.Set("Access-Control-Allow-Origin", h.origin)
	hdr.Set("Last-Modified", info.ModTime().UTC().Format(http.TimeFormat))

	rng, err := parseRange(r.Header.Get("Range"), size)
	if err != nil {
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return
	}

	if rng == nil {
		hdr.Set("Content-Length", strconv.FormatInt(size, 10))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = io.Copy(w, f)
		return
	}

	if _, err := f.Seek(rng.start, io.SeekStart); err != nil {
		response.InternalError(w)
		return
	}
	hdr.Set("Content-Range", rng.contentRange(size))
	hdr.Set("Content-Length", strconv.FormatInt(rng.length(), 10))
	w.WriteHeader(http.StatusPartialContent)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.CopyN(w, f, rng.length())
}
