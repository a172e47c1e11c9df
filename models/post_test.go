package models

import (
	"errors"
	"testing"

	"blog/db"

	"gorm.io/gorm"
)

func TestPostCreateRequiresText(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")

	if _, err := PostCreate(a.ID, "", nil, "", ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
	if got := countRows(t, &Post{}); got != 0 {
		t.Fatalf("post rows = %d, want 0", got)
	}
}

func TestPostUpdateKeepsPubDate(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	p := mustCreatePost(t, a.ID, "before", nil)
	pubDate := p.PubDate

	if err := p.Update("after", nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := PostByID(p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Text != "after" {
		t.Fatalf("text = %q", got.Text)
	}
	if got.PubDate != pubDate {
		t.Fatalf("pub date changed: %d -> %d", pubDate, got.PubDate)
	}
	if err = p.Update("", nil); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("empty update err = %v, want ErrEmptyText", err)
	}
}

func TestPostByIDUnknown(t *testing.T) {
	setupTestDB(t)
	if _, err := PostByID(12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestGroupDeleteClearsPostGroup(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	group := Group{Title: "Cats", Slug: "cats", Description: "cat pictures"}
	if err := GroupCreate(&group); err != nil {
		t.Fatalf("create group: %v", err)
	}
	p1 := mustCreatePost(t, a.ID, "in the group", &group.ID)
	p2 := mustCreatePost(t, a.ID, "also in the group", &group.ID)

	if err := group.Delete(); err != nil {
		t.Fatalf("delete group: %v", err)
	}
	for _, id := range []uint64{p1.ID, p2.ID} {
		got, err := PostByID(id)
		if err != nil {
			t.Fatalf("post %d gone after group delete: %v", id, err)
		}
		if got.GroupID != nil {
			t.Fatalf("post %d still has group %d", id, *got.GroupID)
		}
	}
}

func TestGroupCreateDuplicateSlug(t *testing.T) {
	setupTestDB(t)
	if err := GroupCreate(&Group{Title: "Cats", Slug: "cats", Description: "d"}); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if err := GroupCreate(&Group{Title: "Other cats", Slug: "cats", Description: "d"}); err == nil {
		t.Fatal("expected error for duplicate slug")
	}
}

func TestUserDeleteCascadesPostsAndComments(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "ana")
	commenter := mustCreateUser(t, "bob")
	p := mustCreatePost(t, author.ID, "hello", nil)
	if _, err := CommentCreate(p.ID, commenter.ID, "hi ana"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, err := CommentCreate(p.ID, author.ID, "hi bob"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	// Deleting the commenter removes only their comment
	if err := commenter.Delete(); err != nil {
		t.Fatalf("delete commenter: %v", err)
	}
	if got := countRows(t, &Comment{}); got != 1 {
		t.Fatalf("comment rows = %d, want 1", got)
	}

	// Deleting the author removes their posts and the posts' comments
	if err := author.Delete(); err != nil {
		t.Fatalf("delete author: %v", err)
	}
	if got := countRows(t, &Post{}); got != 0 {
		t.Fatalf("post rows = %d, want 0", got)
	}
	if got := countRows(t, &Comment{}); got != 0 {
		t.Fatalf("comment rows = %d, want 0", got)
	}
}

func TestPostDeleteCascadesComments(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	p := mustCreatePost(t, a.ID, "hello", nil)
	if _, err := CommentCreate(p.ID, a.ID, "note to self"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if err := p.Delete(); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if got := countRows(t, &Comment{}); got != 0 {
		t.Fatalf("comment rows = %d, want 0", got)
	}
}

func TestCommentDefaultText(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	p := mustCreatePost(t, a.ID, "hello", nil)

	c, err := CommentCreate(p.ID, a.ID, "")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if c.Text != DefaultCommentText {
		t.Fatalf("text = %q, want placeholder", c.Text)
	}
}

func TestCommentsForPostNewestFirst(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	p := mustCreatePost(t, a.ID, "hello", nil)
	for _, text := range []string{"first", "second", "third"} {
		if _, err := CommentCreate(p.ID, a.ID, text); err != nil {
			t.Fatalf("comment: %v", err)
		}
	}
	comments, err := CommentsForPost(p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 3 || comments[0].Text != "third" || comments[2].Text != "first" {
		t.Fatalf("unexpected order: %+v", comments)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	mustCreateUser(t, "ana")
	if _, err := UserCreate("ana", "Another Ana", "pw"); err == nil {
		t.Fatal("expected error for duplicate username")
	}
	var cnt int64
	db.Instance.Model(&User{}).Count(&cnt)
	if cnt != 1 {
		t.Fatalf("user rows = %d, want 1", cnt)
	}
}

func TestUserLogin(t *testing.T) {
	setupTestDB(t)
	mustCreateUser(t, "ana")
	if _, ok := UserLogin("ana", "secret"); !ok {
		t.Fatal("expected login to succeed")
	}
	if _, ok := UserLogin("ana", "wrong"); ok {
		t.Fatal("expected login to fail with wrong password")
	}
	if _, ok := UserLogin("nobody", "secret"); ok {
		t.Fatal("expected login to fail for unknown user")
	}
}
