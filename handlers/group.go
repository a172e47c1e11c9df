package handlers

import (
	"errors"
	"net/http"

	"blog/feed"
	"blog/models"
	"blog/pagination"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type GroupCreateRequest struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// GroupFeed returns the group record and one page of its posts
func GroupFeed(c *gin.Context) {
	page := pagination.ParsePageNumber(c.Query("page"))
	group, result, err := feed.Group(c.Param("slug"), page)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such group"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": newGroupInfo(&group), "feed": newFeedResponse(result)})
}

func GroupCreate(c *gin.Context, user *models.User) {
	r := GroupCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	group := models.Group{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
	}
	if err := models.GroupCreate(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newGroupInfo(&group))
}

// GroupDelete removes the group. Its posts survive with the group cleared.
func GroupDelete(c *gin.Context, user *models.User) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such group"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err = group.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
