package models

import (
	"errors"
	"testing"
)

func TestFollowDuplicateIsConflict(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	b := mustCreateUser(t, "bob")

	if err := FollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := FollowAuthor(a.ID, b.ID); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("second follow err = %v, want ErrAlreadyFollowing", err)
	}
	if got := countRows(t, &Follow{}); got != 1 {
		t.Fatalf("follow rows = %d, want 1", got)
	}
	// The reverse direction is a separate relation
	if err := FollowAuthor(b.ID, a.ID); err != nil {
		t.Fatalf("reverse follow: %v", err)
	}
}

func TestFollowSelfIsRejected(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")

	if err := FollowAuthor(a.ID, a.ID); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("self follow err = %v, want ErrSelfFollow", err)
	}
	if got := countRows(t, &Follow{}); got != 0 {
		t.Fatalf("follow rows = %d, want 0", got)
	}
}

func TestUnfollowIsIdempotent(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	b := mustCreateUser(t, "bob")

	// Unfollow without a prior follow is a no-op
	if err := UnfollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("unfollow without follow: %v", err)
	}

	if err := FollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := UnfollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if got := countRows(t, &Follow{}); got != 0 {
		t.Fatalf("follow rows = %d, want 0", got)
	}
	if err := UnfollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("repeated unfollow: %v", err)
	}
}

func TestIsFollowing(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	b := mustCreateUser(t, "bob")

	following, err := IsFollowing(a.ID, b.ID)
	if err != nil || following {
		t.Fatalf("IsFollowing before = %v, %v", following, err)
	}
	if err = FollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	following, err = IsFollowing(a.ID, b.ID)
	if err != nil || !following {
		t.Fatalf("IsFollowing after = %v, %v", following, err)
	}
}

func TestUserDeleteRemovesFollowRowsBothWays(t *testing.T) {
	setupTestDB(t)
	a := mustCreateUser(t, "ana")
	b := mustCreateUser(t, "bob")
	c := mustCreateUser(t, "cat")

	// b appears as followee of a and as follower of c
	if err := FollowAuthor(a.ID, b.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := FollowAuthor(b.ID, c.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := FollowAuthor(a.ID, c.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	if err := b.Delete(); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if got := countRows(t, &Follow{}); got != 1 {
		t.Fatalf("follow rows = %d, want only ana->cat left", got)
	}
}
