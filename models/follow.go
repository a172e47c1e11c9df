package models

import (
	"errors"

	"blog/db"

	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this author")
)

// Follow is a directed subscription: UserID reads posts by AuthorID.
// The pair is unique and both sides cascade when the user is deleted.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_follow_pair,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_follow_pair,unique"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor subscribes userID to authorID. The unique index is the
// arbiter for duplicates, so two concurrent attempts cannot both succeed.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	f := Follow{UserID: userID, AuthorID: authorID}
	err := db.Instance.Create(&f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyFollowing
	}
	return err
}

// UnfollowAuthor removes the subscription. Unsubscribing when not
// subscribed is a no-op.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) (bool, error) {
	var cnt int64
	err := db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&cnt).Error
	return cnt > 0, err
}
