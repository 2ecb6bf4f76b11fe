package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// maxUploadBytes caps a single uploaded file at 50 MiB.
const maxUploadBytes = 50 << 20

// UploadHandler handles multipart file uploads and deletions.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type removeFileRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Upload stores a multipart file under the caller's namespace.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        type  formData  string  true  "Asset category (asmrImage, asmrMusic, playlistImage, profileImage, postImage)"
// @Param        file  formData  file    true  "File content"
// @Success      201   {object}  ports.UploadResult
// @Failure      400   {object}  errorResponse
// @Router       /upload/file [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	result, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		Type:        c.FormValue("type"),
		UserID:      identity.UserID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

// Remove deletes a stored file by its public URL.
//
// @Summary      Delete a file
// @Tags         uploads
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  removeFileRequest  true  "File URL"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Router       /upload/file [delete]
func (h *UploadHandler) Remove(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req removeFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Remove(c.Request().Context(), req.URL); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
