package service

import (
	"context"
	"mime/multipart"

	"sharegeb/internal/model"
	"sharegeb/internal/repository"
	"sharegeb/internal/session"
	"sharegeb/pkg/apperror"
	"sharegeb/pkg/storage"
)

type UpdateProfileInput struct {
	FullName  string   `json:"fullname" form:"fullname" binding:"required,max=255"`
	Phone     string   `json:"phone" form:"phone" binding:"required,max=15"`
	Email     string   `json:"email" form:"email" binding:"required,email"`
	Bio       string   `json:"bio" form:"bio"`
	Interests []string `json:"interests" form:"interests"`
}

type ProfileService interface {
	UpdateProfile(ctx context.Context, rec *session.Record, input UpdateProfileInput) error
	UploadAvatar(ctx context.Context, rec *session.Record, file *multipart.FileHeader) (string, error)
}

type profileService struct {
	repo     repository.UserRepository
	avatars  storage.AvatarStorage
	sessions *session.Manager
}

func NewProfileService(repo repository.UserRepository, avatars storage.AvatarStorage, sessions *session.Manager) ProfileService {
	return &profileService{
		repo:     repo,
		avatars:  avatars,
		sessions: sessions,
	}
}

// UpdateProfile persists the profile fields and then rewrites the session
// snapshot. The row update runs in one transaction; when it fails the
// session is left untouched.
func (s *profileService) UpdateProfile(ctx context.Context, rec *session.Record, input UpdateProfileInput) error {
	if rec == nil {
		return apperror.ErrNotLoggedIn
	}

	joined := model.JoinInterests(input.Interests)

	err := s.repo.UpdateColumns(ctx, rec.UserID, map[string]any{
		"full_name": input.FullName,
		"phone":     input.Phone,
		"email":     input.Email,
		"bio":       input.Bio,
		"interests": joined,
	})
	if err != nil {
		return apperror.NewPersistence(err)
	}

	rec.FullName = input.FullName
	rec.Phone = input.Phone
	rec.Email = input.Email
	rec.Bio = input.Bio
	rec.Interests = model.SplitInterests(joined)

	return s.sessions.Update(ctx, rec)
}

// UploadAvatar validates and stores the uploaded image, then points the
// user row and the session snapshot at the stored filename. When the row
// update fails the already-written file is left behind.
func (s *profileService) UploadAvatar(ctx context.Context, rec *session.Record, file *multipart.FileHeader) (string, error) {
	if rec == nil {
		return "", apperror.ErrNotLoggedIn
	}

	if file == nil || file.Filename == "" {
		return "", apperror.ErrNoFileProvided
	}

	if !storage.AllowedExtension(file.Filename) {
		return "", apperror.ErrInvalidExtension
	}

	src, err := file.Open()
	if err != nil {
		return "", apperror.ErrNoFileProvided
	}
	defer src.Close()

	storedName, err := s.avatars.Save(rec.UserID, file.Filename, src)
	if err != nil {
		return "", err
	}

	err = s.repo.UpdateColumns(ctx, rec.UserID, map[string]any{"avatar": storedName})
	if err != nil {
		return "", apperror.NewPersistence(err)
	}

	rec.Avatar = storedName
	if err := s.sessions.Update(ctx, rec); err != nil {
		return "", err
	}

	return storedName, nil
}
