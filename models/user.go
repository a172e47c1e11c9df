package models

import (
	"errors"

	"blog/db"
	"blog/utils"

	"gorm.io/gorm"
)

const saltSize = 60

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
	Admin     bool
}

func UserCreate(username, name, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.SetPassword(plainTextPassword)
	err = db.Instance.Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return User{}, errors.New("username is taken")
	}
	return u, err
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// UserDelete removes the user. Their posts, comments and follow rows (as
// follower and as followee) go with them via the foreign key constraints.
func (u *User) Delete() error {
	return db.Instance.Delete(u).Error
}
