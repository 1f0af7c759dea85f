package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/pkg/token"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	findErr error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetDigest(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func runAuthenticate(t *testing.T, codec *token.Codec, repo *stubUserRepo, configure func(*http.Request)) (echo.Context, error, bool) {
	t.Helper()
	c := newContext(t, configure)

	called := false
	mw := Authenticate(codec, repo)
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return c, err, called
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he
}

func messages(t *testing.T, he *echo.HTTPError) []string {
	t.Helper()
	msgs, ok := he.Message.([]string)
	if !ok {
		t.Fatalf("expected []string message, got %T", he.Message)
	}
	return msgs
}

func TestAuthenticate_ValidHeaderToken(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	user := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleVet, Active: true}
	repo := newStubUserRepo(user)

	signed, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	identity, ok := CurrentIdentity(c)
	if !ok {
		t.Fatalf("identity not attached")
	}
	if identity.ID != "u1" || identity.Role != domain.RoleVet {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthenticate_ValidCookieToken(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo(&domain.User{ID: "u1", Role: domain.RoleReceptionist, Active: true})

	signed, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signed})
	})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingCredential(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo()

	_, err, called := runAuthenticate(t, codec, repo, nil)
	if called {
		t.Fatalf("next should not run")
	}

	he := httpError(t, err)
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if msgs := messages(t, he); len(msgs) == 0 {
		t.Fatalf("expected at least one message")
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo(&domain.User{ID: "u1", Active: true})

	signed, err := codec.IssueTTL("u1", -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
	if called {
		t.Fatalf("next should not run")
	}

	he := httpError(t, err)
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if msgs := messages(t, he); msgs[0] != "Invalid token" {
		t.Fatalf("expected Invalid token message, got %v", msgs)
	}
}

func TestAuthenticate_TamperedToken(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo(&domain.User{ID: "u1", Active: true})

	_, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-token")
	})
	if called {
		t.Fatalf("next should not run")
	}
	if he := httpError(t, err); he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthenticate_UserDeletedAfterIssuance(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo() // user gone

	signed, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
	if called {
		t.Fatalf("next should not run")
	}

	he := httpError(t, err)
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if msgs := messages(t, he); msgs[0] != "User no longer exists" {
		t.Fatalf("unexpected message: %v", msgs)
	}
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo(&domain.User{ID: "u1", Active: false})

	signed, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
	if called {
		t.Fatalf("next should not run")
	}
	if he := httpError(t, err); he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthenticate_RepositoryFailureIsNotAuthFailure(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")

	signed, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err, called := runAuthenticate(t, codec, repo, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
	if called {
		t.Fatalf("next should not run")
	}

	// Infrastructure failures surface as plain errors for the central
	// handler to log and map to 500, never as a 401.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("expected non-HTTP error, got %v", he)
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}
