package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// FreeBoardHandler handles HTTP requests for the free community board.
type FreeBoardHandler struct {
	service ports.FreeBoardService
}

func NewFreeBoardHandler(service ports.FreeBoardService) *FreeBoardHandler {
	return &FreeBoardHandler{service: service}
}

// Create publishes a free-board post.
//
// @Summary      Create a free-board post
// @Tags         free-board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFreePostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Router       /boards/free [post]
func (h *FreeBoardHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createFreePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), identity.UserID, ports.CreateFreePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		ImageURLs:  req.ImageURLs,
		AsmrID:     req.AsmrID,
		PlaylistID: req.PlaylistID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// List returns a page of free-board posts.
//
// @Summary      List free-board posts
// @Tags         free-board
// @Produce      json
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Param        search      query     string  false  "Title/content search"
// @Param        sort        query     string  false  "latest | popular | views"
// @Param        category    query     string  false  "REVIEW | QUESTION | DAILY | TIP"
// @Param        asmrId      query     int     false  "Filter by linked track"
// @Param        playlistId  query     int     false  "Filter by linked playlist"
// @Success      200         {object}  pageResponse
// @Router       /boards/free [get]
func (h *FreeBoardHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), postQueryFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// Get returns a post with author and comments, counting the view.
//
// @Summary      Get a free-board post
// @Tags         free-board
// @Produce      json
// @Param        id  path      int  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /boards/free/{id} [get]
func (h *FreeBoardHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), id, optionalIdentity(c).UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Update modifies the caller's own post.
//
// @Summary      Update a free-board post
// @Tags         free-board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Post id"
// @Param        body  body      updateFreePostRequest  true  "Fields to change"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /boards/free/{id} [put]
func (h *FreeBoardHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateFreePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), id, identity.UserID, ports.UpdateFreePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		ImageURLs:  req.ImageURLs,
		AsmrID:     req.AsmrID,
		PlaylistID: req.PlaylistID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Delete soft-deletes the caller's own post.
//
// @Summary      Delete a free-board post
// @Tags         free-board
// @Security     BearerAuth
// @Param        id  path  int  true  "Post id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /boards/free/{id} [delete]
func (h *FreeBoardHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, identity.UserID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleLike likes or unlikes a post for the caller.
//
// @Summary      Toggle a like
// @Tags         free-board
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Post id"
// @Success      200  {object}  ports.LikeResult
// @Failure      404  {object}  errorResponse
// @Router       /boards/free/{id}/like [post]
func (h *FreeBoardHandler) ToggleLike(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), id, identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// ListMine returns a page of the caller's own posts.
//
// @Summary      List own free-board posts
// @Tags         free-board
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  pageResponse
// @Router       /boards/free/me [get]
func (h *FreeBoardHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListMine(c.Request().Context(), identity.UserID, postQueryFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(page))
}
