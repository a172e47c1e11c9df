package handlers

import (
	"errors"
	"net/http"

	"blog/auth"
	"blog/feed"
	"blog/models"
	"blog/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileFeed returns the author, their post count, one page of their posts
// and whether the current viewer follows them.
func ProfileFeed(c *gin.Context) {
	page := pagination.ParsePageNumber(c.Query("page"))
	author, result, err := feed.Profile(c.Param("username"), page)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	following := false
	if viewerID := auth.LoadSession(c).UserID(); viewerID != 0 {
		following, _ = models.IsFollowing(viewerID, author.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"author":     gin.H{"username": author.Username, "name": author.Name},
		"post_count": result.TotalItems,
		"following":  following,
		"feed":       newFeedResponse(result),
	})
}

// FollowFeed lists posts by the authors the viewer follows
func FollowFeed(c *gin.Context, user *models.User) {
	page := pagination.ParsePageNumber(c.Query("page"))
	result, err := feed.Following(user.ID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newFeedResponse(result))
}

func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	err = models.FollowAuthor(user.ID, author.ID)
	switch {
	case errors.Is(err, models.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyFollowing):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, OKResponse)
	}
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err = models.UnfollowAuthor(user.ID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
