package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments on board posts.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create adds a comment or reply to a post.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      int                   true  "Post id"
// @Param        body    body      createCommentRequest  true  "Comment details"
// @Success      201     {object}  domain.Comment
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /posts/{postId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), postID, identity.UserID, req.Content, req.ParentCommentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// ListByPost returns the visible comments of a post in creation order.
//
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        postId  path      int  true  "Post id"
// @Success      200     {array}   domain.Comment
// @Failure      404     {object}  errorResponse
// @Router       /posts/{postId}/comments [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}

	comments, err := h.service.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return c.JSON(http.StatusOK, comments)
}

// Update modifies the caller's own comment.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "New content"
// @Success      200   {object}  domain.Comment
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Update(c.Request().Context(), id, identity.UserID, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comment)
}

// Delete removes the caller's own comment. Comments with visible replies are
// tombstoned instead of removed.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  int  true  "Comment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
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

// ListMine returns a page of the caller's own comments.
//
// @Summary      List own comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  pageResponse
// @Router       /comments/me [get]
func (h *CommentHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListMine(c.Request().Context(), identity.UserID,
		queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		return err
	}

	items := page.Items
	if items == nil {
		items = []domain.Comment{}
	}

	return c.JSON(http.StatusOK, pageResponse{
		Data:       items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}
