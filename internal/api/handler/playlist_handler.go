package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// PlaylistHandler handles HTTP requests for playlist operations.
type PlaylistHandler struct {
	service ports.PlaylistService
}

func NewPlaylistHandler(service ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

type createPlaylistRequest struct {
	Name   string `json:"name"   validate:"required,max=255"`
	ImgURL string `json:"imgUrl" validate:"omitempty,url"`
}

type updatePlaylistRequest struct {
	Name   *string `json:"name"   validate:"omitempty,max=255"`
	ImgURL *string `json:"imgUrl" validate:"omitempty,url"`
	Status *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// Create adds a playlist.
//
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlaylistRequest  true  "Playlist details"
// @Success      201   {object}  domain.Playlist
// @Failure      400   {object}  errorResponse
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c echo.Context) error {
	var req createPlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	playlist, err := h.service.Create(c.Request().Context(), ports.CreatePlaylistInput{
		Name:   req.Name,
		ImgURL: req.ImgURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, playlist)
}

// List returns all active playlists with their tracks.
//
// @Summary      List playlists
// @Tags         playlists
// @Produce      json
// @Success      200  {array}  domain.Playlist
// @Router       /playlists [get]
func (h *PlaylistHandler) List(c echo.Context) error {
	playlists, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	return c.JSON(http.StatusOK, playlists)
}

// Get returns a playlist by id.
//
// @Summary      Get a playlist
// @Tags         playlists
// @Produce      json
// @Param        id  path      int  true  "Playlist id"
// @Success      200  {object}  domain.Playlist
// @Failure      404  {object}  errorResponse
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	playlist, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, playlist)
}

// Update modifies a playlist; omitted fields are left unchanged.
//
// @Summary      Update a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Playlist id"
// @Param        body  body      updatePlaylistRequest  true  "Fields to change"
// @Success      200   {object}  domain.Playlist
// @Failure      404   {object}  errorResponse
// @Router       /playlists/{id} [put]
func (h *PlaylistHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	playlist, err := h.service.Update(c.Request().Context(), id, ports.UpdatePlaylistInput{
		Name:   req.Name,
		ImgURL: req.ImgURL,
		Status: req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, playlist)
}

// Delete soft-deletes a playlist.
//
// @Summary      Delete a playlist
// @Tags         playlists
// @Security     BearerAuth
// @Param        id  path  int  true  "Playlist id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
