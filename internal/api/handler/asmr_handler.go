package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// AsmrHandler handles HTTP requests for track operations.
type AsmrHandler struct {
	service ports.AsmrService
}

func NewAsmrHandler(service ports.AsmrService) *AsmrHandler {
	return &AsmrHandler{service: service}
}

type createAsmrRequest struct {
	PlaylistID int64  `json:"playlistId" validate:"required,gt=0"`
	Name       string `json:"name"       validate:"required,max=255"`
	ImageURL   string `json:"imageUrl"   validate:"omitempty,url"`
	YoutubeURL string `json:"youtubeUrl" validate:"omitempty,url"`
	MusicURL   string `json:"musicUrl"   validate:"omitempty,url"`
}

type updateAsmrRequest struct {
	PlaylistID *int64  `json:"playlistId" validate:"omitempty,gt=0"`
	Name       *string `json:"name"       validate:"omitempty,max=255"`
	ImageURL   *string `json:"imageUrl"   validate:"omitempty,url"`
	YoutubeURL *string `json:"youtubeUrl" validate:"omitempty,url"`
	MusicURL   *string `json:"musicUrl"   validate:"omitempty,url"`
}

// Create adds a track to a playlist.
//
// @Summary      Create a track
// @Tags         asmrs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAsmrRequest  true  "Track details"
// @Success      201   {object}  domain.Asmr
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /asmrs [post]
func (h *AsmrHandler) Create(c echo.Context) error {
	var req createAsmrRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	asmr, err := h.service.Create(c.Request().Context(), ports.CreateAsmrInput{
		PlaylistID: req.PlaylistID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		YoutubeURL: req.YoutubeURL,
		MusicURL:   req.MusicURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, asmr)
}

// List returns tracks, optionally filtered by playlist.
//
// @Summary      List tracks
// @Tags         asmrs
// @Produce      json
// @Param        playlistId  query     int  false  "Filter by playlist"
// @Success      200         {array}   domain.Asmr
// @Router       /asmrs [get]
func (h *AsmrHandler) List(c echo.Context) error {
	asmrs, err := h.service.List(c.Request().Context(), queryInt64(c, "playlistId"))
	if err != nil {
		return err
	}
	if asmrs == nil {
		asmrs = []domain.Asmr{}
	}
	return c.JSON(http.StatusOK, asmrs)
}

// Get returns a track by id.
//
// @Summary      Get a track
// @Tags         asmrs
// @Produce      json
// @Param        id  path      int  true  "Track id"
// @Success      200  {object}  domain.Asmr
// @Failure      404  {object}  errorResponse
// @Router       /asmrs/{id} [get]
func (h *AsmrHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	asmr, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, asmr)
}

// Update modifies a track; omitted fields are left unchanged.
//
// @Summary      Update a track
// @Tags         asmrs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Track id"
// @Param        body  body      updateAsmrRequest  true  "Fields to change"
// @Success      200   {object}  domain.Asmr
// @Failure      404   {object}  errorResponse
// @Router       /asmrs/{id} [put]
func (h *AsmrHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAsmrRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	asmr, err := h.service.Update(c.Request().Context(), id, ports.UpdateAsmrInput{
		PlaylistID: req.PlaylistID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		YoutubeURL: req.YoutubeURL,
		MusicURL:   req.MusicURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, asmr)
}

// Delete removes a track and its stored files.
//
// @Summary      Delete a track
// @Tags         asmrs
// @Security     BearerAuth
// @Param        id  path  int  true  "Track id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /asmrs/{id} [delete]
func (h *AsmrHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
