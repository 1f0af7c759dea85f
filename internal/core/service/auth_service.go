package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/ports"
	"github.com/pawdesk/clinic-api/internal/pkg/token"
)

const resetTokenTTL = time.Hour

// AuthService implements registration, login and password reset.
type AuthService struct {
	repo     ports.UserRepository
	codec    *token.Codec
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService builds an AuthService. throttle may be nil, in which case
// login attempts are not rate limited.
func NewAuthService(repo ports.UserRepository, codec *token.Codec, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, throttle: throttle, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return "", nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Specialty:    input.Specialty,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	signed, err := s.codec.Issue(created.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return signed, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, email)
		if err != nil {
			// A broken throttle must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, domain.ErrUserInactive
	}

	signed, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return signed, user, nil
}

// ForgotPassword stores a hashed single-use reset token on the user record.
// It reports success even for unknown emails so accounts cannot be
// enumerated. Delivery of the token is a collaborator concern.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	resetToken := hex.EncodeToString(raw)

	user.ResetDigest = digest(resetToken)
	user.ResetExpiry = time.Now().UTC().Add(resetTokenTTL)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset token issued")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, *domain.User, error) {
	if resetToken == "" || newPassword == "" {
		return "", nil, domain.ErrResetTokenInvalid
	}

	user, err := s.repo.FindByResetDigest(ctx, digest(resetToken))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrResetTokenInvalid
		}
		return "", nil, err
	}

	if time.Now().UTC().After(user.ResetExpiry) {
		return "", nil, domain.ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.ResetDigest = ""
	user.ResetExpiry = time.Time{}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return "", nil, err
	}

	signed, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset completed")
	return signed, user, nil
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
