package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"job-portal-service/internal/apperror"
)

type fileKind int

const (
	imageFile fileKind = iota
	documentFile
)

var allowedTypes = map[fileKind][]string{
	imageFile: {"image/jpeg", "image/png", "image/gif", "image/webp"},
	documentFile: {
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain",
	},
}

// Uploader stores multipart files on local disk under Dir, named after the
// client's file name. A second upload with the same name replaces the first.
type Uploader struct {
	Dir      string
	MaxBytes int64
}

func NewUploader(dir string, maxBytes int64) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Uploader{Dir: dir, MaxBytes: maxBytes}, nil
}

// Save writes the file sent under field and returns the stored name.
// ok is false when the request carries no such file.
func (u *Uploader) Save(c *gin.Context, field string, kind fileKind) (name string, ok bool, err error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.New(http.StatusBadRequest, "could not read "+field, err)
	}
	if u.MaxBytes > 0 && header.Size > u.MaxBytes {
		return "", false, apperror.New(http.StatusRequestEntityTooLarge, field+" is too large", nil)
	}

	name = filepath.Base(header.Filename)
	if name == "." || name == string(filepath.Separator) {
		return "", false, apperror.BadRequest(field + " has no file name")
	}
	if err := checkType(header, kind); err != nil {
		return "", false, apperror.New(http.StatusUnsupportedMediaType, field+": "+err.Error(), err)
	}

	if err := c.SaveUploadedFile(header, filepath.Join(u.Dir, name)); err != nil {
		return "", false, apperror.Internal(err)
	}
	log.Info().Str("field", field).Str("file", name).Int64("size", header.Size).Msg("Upload stored")
	return name, true, nil
}

var errFileType = errors.New("file type not allowed")

func checkType(header *multipart.FileHeader, kind fileKind) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return err
	}
	for _, allowed := range allowedTypes[kind] {
		if detected.Is(allowed) {
			return nil
		}
	}
	return errFileType
}

// saveUploads stores each present file field and records its name in fields
// under the same key.
func (h *Handler) saveUploads(c *gin.Context, fields map[string]interface{}, kinds map[string]fileKind) error {
	if h.Uploads == nil {
		return nil
	}
	for field, kind := range kinds {
		name, ok, err := h.Uploads.Save(c, field, kind)
		if err != nil {
			return err
		}
		if ok {
			fields[field] = name
		}
	}
	return nil
}
