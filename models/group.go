package models

import (
	"errors"

	"blog/db"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(55);index:uniq_slug,unique"`
	Description string `gorm:"type:varchar(400)"`
}

func GroupCreate(g *Group) error {
	err := db.Instance.Create(g).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.New("slug is taken")
	}
	return err
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

// Delete removes the group. Posts referencing it keep existing with their
// group cleared (SET NULL constraint on Post.GroupID).
func (g *Group) Delete() error {
	return db.Instance.Delete(g).Error
}
