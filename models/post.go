package models

import (
	"errors"
	"time"

	"blog/db"
)

var ErrEmptyText = errors.New("text must not be empty")

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	UpdatedAt int64
	// PubDate is set once at creation and drives the feed order
	PubDate   int64   `gorm:"index:idx_pub_date"`
	Text      string  `gorm:"type:text"`
	AuthorID  uint64  `gorm:"index:idx_post_author"`
	Author    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index:idx_post_group"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ImagePath string  `gorm:"type:varchar(300)"`
	ThumbPath string  `gorm:"type:varchar(300)"`
}

// PostCreate persists a new post. The publication date is always set here,
// client-supplied values are ignored.
func PostCreate(authorID uint64, text string, groupID *uint64, imagePath, thumbPath string) (p Post, err error) {
	if text == "" {
		return Post{}, ErrEmptyText
	}
	p.AuthorID = authorID
	p.Text = text
	p.GroupID = groupID
	p.ImagePath = imagePath
	p.ThumbPath = thumbPath
	p.PubDate = time.Now().Unix()
	err = db.Instance.Create(&p).Error
	return
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// Update changes the text and group of an existing post. PubDate stays as it
// was. The caller is responsible for checking that the editor is the author.
func (p *Post) Update(text string, groupID *uint64) error {
	if text == "" {
		return ErrEmptyText
	}
	p.Text = text
	p.GroupID = groupID
	return db.Instance.Model(p).Updates(map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}).Error
}

// Delete removes the post and, via the foreign key constraint, its comments.
func (p *Post) Delete() error {
	return db.Instance.Delete(p).Error
}
