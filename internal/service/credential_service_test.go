package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sharegeb/internal/repository"
	"sharegeb/pkg/apperror"
)

func TestResetTokenRoundTrip(t *testing.T) {
	db := newTestDB(t)
	authSvc, repo := newAuthService(t, db)
	credSvc := NewCredentialService(repo)

	mustRegister(t, authSvc, "reset@example.com", "0911112222")

	token, err := credSvc.IssueResetToken(context.Background(), "reset@example.com")
	if err != nil {
		t.Fatalf("IssueResetToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("issued token is empty")
	}

	if err := credSvc.ConsumeResetToken(context.Background(), token, "brand-new-password"); err != nil {
		t.Fatalf("ConsumeResetToken failed: %v", err)
	}

	// New password works, old one does not.
	if _, err := authSvc.Login(context.Background(), "reset@example.com", "brand-new-password"); err != nil {
		t.Fatalf("Login with new password failed: %v", err)
	}
	if _, err := authSvc.Login(context.Background(), "reset@example.com", "secret-password"); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Fatalf("old password should be rejected, got %v", err)
	}

	// Token is single-use.
	if err := credSvc.ConsumeResetToken(context.Background(), token, "yet-another"); !errors.Is(err, apperror.ErrInvalidResetToken) {
		t.Fatalf("replayed token: expected ErrInvalidResetToken, got %v", err)
	}

	user, err := repo.FindByEmail(context.Background(), "reset@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if user.ResetToken != nil || user.ResetTokenExpiry != nil {
		t.Errorf("token fields not cleared: token=%v expiry=%v", user.ResetToken, user.ResetTokenExpiry)
	}
}

func TestResetTokenUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	credSvc := NewCredentialService(repo)

	if _, err := credSvc.IssueResetToken(context.Background(), "ghost@example.com"); !errors.Is(err, apperror.ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestResetTokenInvalid(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	credSvc := NewCredentialService(repo)

	if err := credSvc.ConsumeResetToken(context.Background(), "no-such-token", "pw"); !errors.Is(err, apperror.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
	if err := credSvc.ConsumeResetToken(context.Background(), "", "pw"); !errors.Is(err, apperror.ErrInvalidResetToken) {
		t.Fatalf("empty token: expected ErrInvalidResetToken, got %v", err)
	}
}

func TestResetTokenExpiry(t *testing.T) {
	db := newTestDB(t)
	authSvc, repo := newAuthService(t, db)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	credSvc := NewCredentialServiceWithClock(repo, func() time.Time { return now })

	mustRegister(t, authSvc, "expired@example.com", "0922223333")

	token, err := credSvc.IssueResetToken(context.Background(), "expired@example.com")
	if err != nil {
		t.Fatalf("IssueResetToken failed: %v", err)
	}

	now = now.Add(2 * time.Hour)

	if err := credSvc.ConsumeResetToken(context.Background(), token, "late-password"); !errors.Is(err, apperror.ErrResetTokenExpired) {
		t.Fatalf("expected ErrResetTokenExpired, got %v", err)
	}

	// Expired consume must not have changed the password.
	if _, err := authSvc.Login(context.Background(), "expired@example.com", "secret-password"); err != nil {
		t.Fatalf("original password no longer works after expired consume: %v", err)
	}
}

func TestIssueResetTokenOverwritesOutstanding(t *testing.T) {
	db := newTestDB(t)
	authSvc, repo := newAuthService(t, db)
	credSvc := NewCredentialService(repo)

	mustRegister(t, authSvc, "twice@example.com", "0933334444")

	first, err := credSvc.IssueResetToken(context.Background(), "twice@example.com")
	if err != nil {
		t.Fatalf("first IssueResetToken failed: %v", err)
	}
	second, err := credSvc.IssueResetToken(context.Background(), "twice@example.com")
	if err != nil {
		t.Fatalf("second IssueResetToken failed: %v", err)
	}
	if first == second {
		t.Fatal("expected a fresh token on reissue")
	}

	// Only the latest token is live.
	if err := credSvc.ConsumeResetToken(context.Background(), first, "pw1"); !errors.Is(err, apperror.ErrInvalidResetToken) {
		t.Fatalf("overwritten token: expected ErrInvalidResetToken, got %v", err)
	}
	if err := credSvc.ConsumeResetToken(context.Background(), second, "pw2"); err != nil {
		t.Fatalf("latest token should consume cleanly: %v", err)
	}
}
