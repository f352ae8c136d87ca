package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/crewboard/crewboard-back/pkg/api/errors"
	"github.com/crewboard/crewboard-back/pkg/models"
	"github.com/crewboard/crewboard-back/pkg/storage"
)

// maxUploadBytes caps admin asset uploads at 10 MB.
const maxUploadBytes = 10 << 20

// UploadHandler stores admin-uploaded assets (lead photos, site images).
type UploadHandler struct {
	uploader *storage.Uploader
}

// NewUploadHandler creates the upload handler.
func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload stores one file and returns its public URL.
// POST /api/admin/upload (multipart, field "file")
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.BadRequest(c, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return apierrors.BadRequest(c, "file too large (max 10 MB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.BadRequest(c, "could not read file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apierrors.BadRequest(c, "could not read file")
	}

	url, err := h.uploader.Upload(c.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.UploadResponse{URL: url})
}
