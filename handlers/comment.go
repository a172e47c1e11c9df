package handlers

import (
	"errors"
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type CommentInfo struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	Created int64  `json:"created"`
	Author  string `json:"author"`
}

type CommentRequest struct {
	Text string `form:"text"`
}

func newCommentInfo(comment *models.Comment) CommentInfo {
	return CommentInfo{
		ID:      comment.ID,
		Text:    comment.Text,
		Created: comment.Created,
		Author:  comment.Author.Username,
	}
}

func CommentAdd(c *gin.Context, user *models.User) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := models.PostByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such post"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	r := CommentRequest{}
	_ = c.ShouldBindWith(&r, binding.Form)
	comment, err := models.CommentCreate(id, user.ID, r.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	comment.Author = *user
	c.JSON(http.StatusOK, newCommentInfo(&comment))
}
