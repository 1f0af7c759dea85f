package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
	"github.com/pawdesk/clinic-api/internal/pkg/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	r.nextID++
	created.ID = "u" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetDigest(_ context.Context, digest string) (*domain.User, error) {
	if digest == "" {
		return nil, domain.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.ResetDigest == digest {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type stubThrottle struct {
	allow  bool
	resets int
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) { return t.allow, nil }
func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

func newAuthService(repo ports.UserRepository, throttle ports.LoginThrottle) *AuthService {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewAuthService(repo, codec, throttle, zerolog.Nop())
}

func registerVet(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "drsmith",
		Password: "hunter22!",
		Email:    "vet@clinic.test",
		Role:     domain.RoleVet,
		LastName: "Smith",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user := registerVet(t, svc)
	if user.ID == "" {
		t.Fatalf("expected assigned user ID")
	}
	if !user.Active {
		t.Fatalf("new users must start active")
	}
	if user.PasswordHash == "hunter22!" {
		t.Fatalf("password stored in plain text")
	}

	signed, loggedIn, err := svc.Login(context.Background(), "vet@clinic.test", "hunter22!")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected a session token")
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, loggedIn.ID)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "eve",
		Password: "password-1",
		Email:    "eve@clinic.test",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)
	registerVet(t, svc)

	_, _, err := svc.Login(context.Background(), "vet@clinic.test", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	_, _, err := svc.Login(context.Background(), "nobody@clinic.test", "whatever1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	user := registerVet(t, svc)

	stored, _ := repo.FindByID(context.Background(), user.ID)
	stored.Active = false
	if err := repo.Update(context.Background(), stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "vet@clinic.test", "hunter22!")
	if !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubThrottle{allow: false})
	registerVet(t, svc)

	_, _, err := svc.Login(context.Background(), "vet@clinic.test", "hunter22!")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_SuccessResetsThrottle(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{allow: true}
	svc := newAuthService(repo, throttle)
	registerVet(t, svc)

	if _, _, err := svc.Login(context.Background(), "vet@clinic.test", "hunter22!"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected one throttle reset, got %d", throttle.resets)
	}
}

func TestAuthService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if err := svc.ForgotPassword(context.Background(), "nobody@clinic.test"); err != nil {
		t.Fatalf("expected nil for unknown email, got %v", err)
	}
}

func TestAuthService_ResetPassword_Flow(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	user := registerVet(t, svc)

	if err := svc.ForgotPassword(context.Background(), "vet@clinic.test"); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}

	// The raw token is delivered out of band and never stored, so drive
	// the reset through the digest path with a known token.
	stored, _ := repo.FindByID(context.Background(), user.ID)
	stored.ResetDigest = digest("known-reset-token")
	stored.ResetExpiry = time.Now().UTC().Add(time.Hour)
	if err := repo.Update(context.Background(), stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	signed, _, err := svc.ResetPassword(context.Background(), "known-reset-token", "brand-new-pass1")
	if err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected a fresh session token")
	}

	// Old password no longer works, new one does, token is single-use.
	if _, _, err := svc.Login(context.Background(), "vet@clinic.test", "hunter22!"); err == nil {
		t.Fatalf("old password still accepted")
	}
	if _, _, err := svc.Login(context.Background(), "vet@clinic.test", "brand-new-pass1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
	if _, _, err := svc.ResetPassword(context.Background(), "known-reset-token", "another-pass-2"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected spent token to be rejected, got %v", err)
	}
}

func TestAuthService_ResetPassword_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	user := registerVet(t, svc)

	stored, _ := repo.FindByID(context.Background(), user.ID)
	stored.ResetDigest = digest("stale-token")
	stored.ResetExpiry = time.Now().UTC().Add(-time.Minute)
	if err := repo.Update(context.Background(), stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, _, err := svc.ResetPassword(context.Background(), "stale-token", "brand-new-pass1")
	if !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}
