package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"sharegeb/internal/model"
	"sharegeb/internal/repository"
	"sharegeb/internal/session"
	"sharegeb/pkg/apperror"
)

type RegisterInput struct {
	FullName string `json:"full_name" form:"full_name" binding:"required,max=255"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone" binding:"required,max=15"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*session.Record, error)
}

type authService struct {
	repo          repository.UserRepository
	notifications NotificationService
}

func NewAuthService(repo repository.UserRepository, notifications NotificationService) AuthService {
	return &authService{
		repo:          repo,
		notifications: notifications,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewPersistence(err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Avatar:       model.DefaultAvatar,
		Rating:       0,
		RideCount:    0,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.NewPersistence(err)
	}

	if s.notifications != nil {
		notif := &model.Notification{
			UserID:  user.ID,
			Message: "Welcome to ShareGeb! Book your first ride to start earning member ranks.",
		}
		if err := s.notifications.Create(ctx, notif); err != nil {
			log.Printf("failed to create welcome notification for user %d: %v", user.ID, err)
		}
	}

	return user, nil
}

// Login verifies credentials and snapshots the user row into a session
// record. As a side effect, a missing avatar is repaired to the default
// sentinel in storage before the snapshot is taken.
func (s *authService) Login(ctx context.Context, email, password string) (*session.Record, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, apperror.NewPersistence(err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	if user.Avatar == "" {
		err := s.repo.UpdateColumns(ctx, user.ID, map[string]any{"avatar": model.DefaultAvatar})
		if err != nil {
			return nil, apperror.NewPersistence(err)
		}
		user.Avatar = model.DefaultAvatar
	}

	return session.Snapshot(user), nil
}
