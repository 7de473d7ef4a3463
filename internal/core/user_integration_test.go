package core_test

import (
	"context"
	"errors"
	"testing"

	"wms/internal/core"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	users := core.NewUserService(pool)

	created, err := users.RegisterUser(ctx, "pat", "s3cret", "Pat Example", "clerk")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a non-zero user id")
	}
	if created.PasswordHash == "s3cret" {
		t.Error("password stored in plaintext")
	}

	authed, err := users.Authenticate(ctx, "pat", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if authed == nil {
		t.Fatal("expected successful authentication")
	}
	if authed.ID != created.ID || authed.Role != "clerk" {
		t.Errorf("authenticated user mismatch: %+v", authed)
	}

	byID, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID == nil || byID.Username != "pat" {
		t.Errorf("GetByID mismatch: %+v", byID)
	}
}

func TestUserService_AuthenticateRejections(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	users := core.NewUserService(pool)
	if _, err := users.RegisterUser(ctx, "pat", "s3cret", "Pat Example", "clerk"); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "pat", "wrong"},
		{"unknown username", "nobody", "s3cret"},
		{"seeded placeholder hash", "user1", "md5hash"},
	}
	for _, tc := range cases {
		user, err := users.Authenticate(ctx, tc.username, tc.password)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if user != nil {
			t.Errorf("%s: expected nil user, got %+v", tc.name, user)
		}
	}
}

func TestUserService_DuplicateUsername(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	users := core.NewUserService(pool)
	if _, err := users.RegisterUser(ctx, "pat", "s3cret", "Pat Example", "clerk"); err != nil {
		t.Fatalf("first RegisterUser failed: %v", err)
	}

	_, err := users.RegisterUser(ctx, "pat", "other", "Pat Two", "manager")
	if err == nil {
		t.Fatal("expected duplicate username to fail")
	}
	var dup *core.DuplicateUsernameError
	if !errors.As(err, &dup) {
		t.Fatalf("got %T, want *DuplicateUsernameError", err)
	}
	if dup.Username != "pat" {
		t.Errorf("dup.Username = %q", dup.Username)
	}
}
