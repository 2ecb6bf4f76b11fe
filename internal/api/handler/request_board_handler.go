package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// RequestBoardHandler handles HTTP requests for the track-request board.
type RequestBoardHandler struct {
	service ports.RequestBoardService
}

func NewRequestBoardHandler(service ports.RequestBoardService) *RequestBoardHandler {
	return &RequestBoardHandler{service: service}
}

// Create publishes a track request. New requests start in PENDING.
//
// @Summary      Create a track request
// @Tags         request-board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestPostRequest  true  "Request details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Router       /boards/request [post]
func (h *RequestBoardHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRequestPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), identity.UserID, ports.CreateRequestPostInput{
		Title:       req.Title,
		Content:     req.Content,
		RequestType: req.RequestType,
		YoutubeURL:  req.YoutubeURL,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// List returns a page of track requests.
//
// @Summary      List track requests
// @Tags         request-board
// @Produce      json
// @Param        page           query     int     false  "Page (1-based)"
// @Param        limit          query     int     false  "Page size (max 100)"
// @Param        search         query     string  false  "Title/content search"
// @Param        sort           query     string  false  "latest | popular | views"
// @Param        requestType    query     string  false  "ASMR | MUSIC"
// @Param        requestStatus  query     string  false  "PENDING | IN_PROGRESS | COMPLETED | REJECTED"
// @Success      200            {object}  pageResponse
// @Router       /boards/request [get]
func (h *RequestBoardHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), postQueryFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// Get returns a request with author and comments, counting the view.
//
// @Summary      Get a track request
// @Tags         request-board
// @Produce      json
// @Param        id  path      int  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /boards/request/{id} [get]
func (h *RequestBoardHandler) Get(c echo.Context) error {
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

// Update modifies the caller's own request.
//
// @Summary      Update a track request
// @Tags         request-board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Post id"
// @Param        body  body      updateRequestPostRequest  true  "Fields to change"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /boards/request/{id} [put]
func (h *RequestBoardHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRequestPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), id, identity.UserID, ports.UpdateRequestPostInput{
		Title:       req.Title,
		Content:     req.Content,
		RequestType: req.RequestType,
		YoutubeURL:  req.YoutubeURL,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// UpdateStatus moves a request through its workflow. Admin only.
//
// @Summary      Update request status
// @Tags         request-board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                         true  "Post id"
// @Param        body  body      updateRequestStatusRequest  true  "New status"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /boards/request/{id}/status [patch]
func (h *RequestBoardHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Delete soft-deletes the caller's own request.
//
// @Summary      Delete a track request
// @Tags         request-board
// @Security     BearerAuth
// @Param        id  path  int  true  "Post id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /boards/request/{id} [delete]
func (h *RequestBoardHandler) Delete(c echo.Context) error {
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

// ToggleLike likes or unlikes a request for the caller.
//
// @Summary      Toggle a like
// @Tags         request-board
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Post id"
// @Success      200  {object}  ports.LikeResult
// @Failure      404  {object}  errorResponse
// @Router       /boards/request/{id}/like [post]
func (h *RequestBoardHandler) ToggleLike(c echo.Context) error {
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

// ListMine returns a page of the caller's own requests.
//
// @Summary      List own track requests
// @Tags         request-board
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  pageResponse
// @Router       /boards/request/me [get]
func (h *RequestBoardHandler) ListMine(c echo.Context) error {
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
