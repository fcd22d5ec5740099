package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sharegeb/internal/model"
	"sharegeb/internal/repository"
)

type NotificationService interface {
	Create(ctx context.Context, notification *model.Notification) error
	List(ctx context.Context, userID uint, limit, offset int) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, userID, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) Create(ctx context.Context, notification *model.Notification) error {
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	// Fan out over redis when available so other frontends can pick the
	// notification up without polling.
	if s.redisClient != nil {
		channel := fmt.Sprintf("user_notifications:%d", notification.UserID)
		if payload, err := json.Marshal(notification); err == nil {
			s.redisClient.Publish(ctx, channel, payload)
		}
	}

	return nil
}

func (s *notificationService) List(ctx context.Context, userID uint, limit, offset int) ([]model.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, id uint) error {
	return s.repo.MarkAsRead(ctx, userID, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uint) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
