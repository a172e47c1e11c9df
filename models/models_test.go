package models

import (
	"strings"
	"testing"

	"blog/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points db.Instance at a fresh in-memory SQLite database with
// foreign keys on, named after the test so parallel packages don't collide.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared&_fk=1"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.Instance = conn
	Init()
}

func mustCreateUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username, "secret")
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func mustCreatePost(t *testing.T, authorID uint64, text string, groupID *uint64) Post {
	t.Helper()
	p, err := PostCreate(authorID, text, groupID, "", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var cnt int64
	if err := db.Instance.Model(model).Count(&cnt).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return cnt
}
