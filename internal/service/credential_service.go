package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sharegeb/internal/repository"
	"sharegeb/pkg/apperror"
)

// resetTokenTTL bounds how long an issued reset token stays valid.
const resetTokenTTL = time.Hour

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// CredentialService issues and consumes password-reset tokens. A user has
// at most one outstanding token; issuing again overwrites it.
type CredentialService interface {
	IssueResetToken(ctx context.Context, email string) (string, error)
	ValidateResetToken(ctx context.Context, token string) error
	ConsumeResetToken(ctx context.Context, token, newPassword string) error
}

type credentialService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewCredentialService(repo repository.UserRepository) CredentialService {
	return &credentialService{repo: repo, now: time.Now}
}

// NewCredentialServiceWithClock is used by tests to control expiry.
func NewCredentialServiceWithClock(repo repository.UserRepository, now func() time.Time) CredentialService {
	return &credentialService{repo: repo, now: now}
}

func (s *credentialService) IssueResetToken(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.ErrEmailNotFound
		}
		return "", apperror.NewPersistence(err)
	}

	token, err := generateResetToken()
	if err != nil {
		return "", err
	}

	expiry := s.now().Add(resetTokenTTL)
	err = s.repo.UpdateColumns(ctx, user.ID, map[string]any{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	})
	if err != nil {
		return "", apperror.NewPersistence(err)
	}

	return token, nil
}

// ValidateResetToken checks a token without consuming it, so the reset
// form can refuse a dead link before asking for a new password.
func (s *credentialService) ValidateResetToken(ctx context.Context, token string) error {
	if token == "" {
		return apperror.ErrInvalidResetToken
	}

	user, err := s.repo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrInvalidResetToken
		}
		return apperror.NewPersistence(err)
	}

	if user.ResetTokenExpiry == nil || s.now().After(*user.ResetTokenExpiry) {
		return apperror.ErrResetTokenExpired
	}

	return nil
}

func (s *credentialService) ConsumeResetToken(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperror.ErrInvalidResetToken
	}

	user, err := s.repo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrInvalidResetToken
		}
		return apperror.NewPersistence(err)
	}

	if user.ResetTokenExpiry == nil || s.now().After(*user.ResetTokenExpiry) {
		return apperror.ErrResetTokenExpired
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	// New hash and token clearing land in one transaction so a consumed
	// token can never be replayed.
	err = s.repo.UpdateColumns(ctx, user.ID, map[string]any{
		"password_hash":      hash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	})
	if err != nil {
		return apperror.NewPersistence(err)
	}

	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
