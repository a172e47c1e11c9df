package models

import (
	"time"

	"blog/db"
)

// DefaultCommentText stands in when a comment is submitted with no body
const DefaultCommentText = "(no text)"

type Comment struct {
	ID       uint64 `gorm:"primaryKey"`
	Created  int64  `gorm:"index:idx_comment_created"`
	PostID   uint64 `gorm:"index:idx_comment_post"`
	Post     Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID uint64
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text     string `gorm:"type:text"`
}

func CommentCreate(postID, authorID uint64, text string) (c Comment, err error) {
	if text == "" {
		text = DefaultCommentText
	}
	c.PostID = postID
	c.AuthorID = authorID
	c.Text = text
	c.Created = time.Now().Unix()
	err = db.Instance.Create(&c).Error
	return
}

// CommentsForPost returns the post's comments, newest first.
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created DESC, id DESC").
		Find(&comments).Error
	return
}
