package app_test

import (
	"context"
	"errors"
	"testing"

	"wms/internal/app"
	"wms/internal/core"
)

type fakeUserService struct {
	users map[string]string // username -> password
}

func (f *fakeUserService) Authenticate(_ context.Context, username, password string) (*core.User, error) {
	if f.users[username] != password {
		return nil, nil
	}
	return &core.User{ID: 1, Username: username, FullName: "Fake User", Role: "clerk"}, nil
}

func (f *fakeUserService) RegisterUser(_ context.Context, username, _, fullName, role string) (*core.User, error) {
	if _, taken := f.users[username]; taken {
		return nil, &core.DuplicateUsernameError{Username: username}
	}
	return &core.User{ID: 2, Username: username, FullName: fullName, Role: role}, nil
}

func (f *fakeUserService) GetByID(context.Context, int) (*core.User, error) {
	return nil, nil
}

func TestAuthenticateUser_MapsNilToInvalidCredentials(t *testing.T) {
	users := &fakeUserService{users: map[string]string{"pat": "s3cret"}}
	svc := app.NewAppService(users, nil, nil, nil)
	ctx := context.Background()

	session, err := svc.AuthenticateUser(ctx, "pat", "s3cret")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if session.Username != "pat" || session.UserID != 1 {
		t.Errorf("unexpected session: %+v", session)
	}

	_, err = svc.AuthenticateUser(ctx, "pat", "wrong")
	if !errors.Is(err, app.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.AuthenticateUser(ctx, "nobody", "s3cret")
	if !errors.Is(err, app.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterUser_PassesThroughDuplicateError(t *testing.T) {
	users := &fakeUserService{users: map[string]string{"pat": "s3cret"}}
	svc := app.NewAppService(users, nil, nil, nil)

	_, err := svc.RegisterUser(context.Background(), app.RegisterRequest{
		Username: "pat", Password: "x", FullName: "Pat", Role: "clerk",
	})
	var dup *core.DuplicateUsernameError
	if !errors.As(err, &dup) {
		t.Fatalf("got %T, want *DuplicateUsernameError", err)
	}
}

func TestParseRevenueKind(t *testing.T) {
	for _, valid := range []string{"product", "store", "month"} {
		kind, err := app.ParseRevenueKind(valid)
		if err != nil {
			t.Errorf("ParseRevenueKind(%q) failed: %v", valid, err)
		}
		if string(kind) != valid {
			t.Errorf("ParseRevenueKind(%q) = %q", valid, kind)
		}
	}
	for _, invalid := range []string{"", "products", "MONTH", "weekly"} {
		if _, err := app.ParseRevenueKind(invalid); err == nil {
			t.Errorf("ParseRevenueKind(%q) should have failed", invalid)
		}
	}
}
