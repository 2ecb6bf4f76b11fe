package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// --- Request types shared by the board handlers ---

type createFreePostRequest struct {
	Title      string   `json:"title"      validate:"required,max=255"`
	Content    string   `json:"content"    validate:"required"`
	Category   string   `json:"category"   validate:"required,oneof=REVIEW QUESTION DAILY TIP"`
	ImageURLs  []string `json:"imageUrls"  validate:"omitempty,max=10,dive,url"`
	AsmrID     int64    `json:"asmrId"     validate:"omitempty,gt=0"`
	PlaylistID int64    `json:"playlistId" validate:"omitempty,gt=0"`
}

type updateFreePostRequest struct {
	Title      *string   `json:"title"      validate:"omitempty,max=255"`
	Content    *string   `json:"content"    validate:"omitempty"`
	Category   *string   `json:"category"   validate:"omitempty,oneof=REVIEW QUESTION DAILY TIP"`
	ImageURLs  *[]string `json:"imageUrls"  validate:"omitempty,max=10,dive,url"`
	AsmrID     *int64    `json:"asmrId"     validate:"omitempty,gt=0"`
	PlaylistID *int64    `json:"playlistId" validate:"omitempty,gt=0"`
}

type createRequestPostRequest struct {
	Title       string   `json:"title"       validate:"required,max=255"`
	Content     string   `json:"content"     validate:"required"`
	RequestType string   `json:"requestType" validate:"required,oneof=ASMR MUSIC"`
	YoutubeURL  string   `json:"youtubeUrl"  validate:"omitempty,url"`
	Description string   `json:"description" validate:"omitempty"`
	ImageURLs   []string `json:"imageUrls"   validate:"omitempty,max=10,dive,url"`
}

type updateRequestPostRequest struct {
	Title       *string   `json:"title"       validate:"omitempty,max=255"`
	Content     *string   `json:"content"     validate:"omitempty"`
	RequestType *string   `json:"requestType" validate:"omitempty,oneof=ASMR MUSIC"`
	YoutubeURL  *string   `json:"youtubeUrl"  validate:"omitempty,url"`
	Description *string   `json:"description" validate:"omitempty"`
	ImageURLs   *[]string `json:"imageUrls"   validate:"omitempty,max=10,dive,url"`
}

type updateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createCommentRequest struct {
	Content         string `json:"content"         validate:"required,max=2000"`
	ParentCommentID int64  `json:"parentCommentId" validate:"omitempty,gt=0"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// postQueryFrom parses the shared list query parameters. Out-of-range page
// and limit values are normalised by the repository.
func postQueryFrom(c echo.Context) ports.PostQuery {
	return ports.PostQuery{
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 20),
		Search:        c.QueryParam("search"),
		Sort:          c.QueryParam("sort"),
		Category:      c.QueryParam("category"),
		AsmrID:        queryInt64(c, "asmrId"),
		PlaylistID:    queryInt64(c, "playlistId"),
		RequestType:   c.QueryParam("requestType"),
		RequestStatus: c.QueryParam("requestStatus"),
	}
}

func toPageResponse(p *ports.PostPage) pageResponse {
	items := p.Items
	if items == nil {
		items = []domain.Post{}
	}
	return pageResponse{
		Data:       items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
