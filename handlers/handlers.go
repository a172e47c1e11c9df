package handlers

import (
	"net/http"
	"strconv"

	"blog/models"
	"blog/pagination"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var OKResponse = Response{}

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type PostInfo struct {
	ID       uint64     `json:"id"`
	Text     string     `json:"text"`
	PubDate  int64      `json:"pub_date"`
	Author   string     `json:"author"`
	Group    *GroupInfo `json:"group,omitempty"`
	HasImage bool       `json:"has_image"`
}

type FeedResponse struct {
	Posts       []PostInfo `json:"posts"`
	Page        int        `json:"page"`
	PerPage     int        `json:"per_page"`
	TotalItems  int        `json:"total_items"`
	TotalPages  int        `json:"total_pages"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
}

func newGroupInfo(g *models.Group) *GroupInfo {
	if g == nil || g.ID == 0 {
		return nil
	}
	return &GroupInfo{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

func newPostInfo(p *models.Post) PostInfo {
	return PostInfo{
		ID:       p.ID,
		Text:     p.Text,
		PubDate:  p.PubDate,
		Author:   p.Author.Username,
		Group:    newGroupInfo(p.Group),
		HasImage: p.ImagePath != "",
	}
}

func newFeedResponse(page pagination.Page[models.Post]) FeedResponse {
	posts := make([]PostInfo, 0, len(page.Items))
	for i := range page.Items {
		posts = append(posts, newPostInfo(&page.Items[i]))
	}
	return FeedResponse{
		Posts:       posts,
		Page:        page.Number,
		PerPage:     page.PerPage,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious,
		HasNext:     page.HasNext,
	}
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
