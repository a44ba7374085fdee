// Package media handles image uploads for animal photos.
package media

import (
	"bytes"
	"errors"
	"image"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	// Registered decoders so DecodeConfig can sniff the common upload formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/blob"
	"zoo-ops/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MaxUploadSize caps the multipart body. 10 MB matches typical photo sizes.
const MaxUploadSize = 10 << 20

func RegisterRoutes(r chi.Router, store blob.Store) {
	r.With(middleware.RequireAuth).Post("/api/media/upload", uploadHandler(store))

	// Serving only matters for the memory and filesystem drivers; with S3 the
	// returned URLs point at the bucket directly and this route sits unused.
	r.Get("/media/{key}", serveHandler(store))
}

type uploadData struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
}

// uploadHandler godoc
// @Summary Upload an image
// @Description Accepts a multipart form with an "image" field. Returns the stored URL plus decoded dimensions.
// @Tags media
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file (jpeg, png or gif)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/media/upload [post]
func uploadHandler(store blob.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
		if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "image file is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "failed to read upload")
			return
		}

		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "unsupported image format")
			return
		}

		key := uuid.NewString() + "." + format
		info, err := store.Put(r.Context(), key, contentTypeFor(format, header.Header.Get("Content-Type")), bytes.NewReader(data))
		if err != nil {
			respond.Internal(w, "failed to store image", err)
			return
		}

		respond.OK(w, http.StatusOK, "image uploaded", map[string]any{
			"data": uploadData{
				URL:      info.URL,
				PublicID: info.Key,
				Width:    cfg.Width,
				Height:   cfg.Height,
				Format:   format,
				Size:     info.Size,
			},
		})
	}
}

func serveHandler(store blob.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := path.Base(chi.URLParam(r, "key"))
		if key == "" || key == "." || key == "/" {
			http.NotFound(w, r)
			return
		}

		rc, info, err := store.Get(r.Context(), key)
		if err != nil {
			if errors.Is(err, blob.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "failed to read media", http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		if info.ContentType != "" {
			w.Header().Set("Content-Type", info.ContentType)
		}
		if info.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")

		// Headers are already out if Copy fails mid-stream; nothing to do.
		_, _ = io.Copy(w, rc)
	}
}

func contentTypeFor(format, header string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	}
	if strings.HasPrefix(header, "image/") {
		return header
	}
	return "application/octet-stream"
}
