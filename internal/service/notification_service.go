package service

import (
	"context"
	"errors"

	"team-roster-service/internal/model"
	"team-roster-service/internal/repository"

	"github.com/google/uuid"
)

// notificationsPageSize — сколько последних уведомлений отдаём пользователю.
const notificationsPageSize = 20

// NotificationService — пользовательская поверхность уведомлений:
// список последних и отметка о прочтении.
type NotificationService struct {
	notifRepo NotificationRepository
}

// NewNotificationService создаёт новый сервис уведомлений.
func NewNotificationService(notifRepo NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// ListForUser возвращает последние уведомления пользователя.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	res, err := s.notifRepo.ListForUser(ctx, userID, notificationsPageSize)
	if err != nil {
		return nil, ErrInternal("failed to list notifications", err)
	}
	return res, nil
}

// MarkRead помечает уведомление прочитанным. Чужие уведомления недоступны.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.notifRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotFound("notification not found")
		}
		return ErrInternal("failed to mark notification as read", err)
	}
	return nil
}
