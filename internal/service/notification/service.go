package notification

import (
	"bonushunt_backend/internal/model"
	"bonushunt_backend/internal/repository"
	"bonushunt_backend/internal/service"
	"context"

	"github.com/google/uuid"
)

type serv struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService - чтение уведомлений пользователя
func NewNotificationService(notificationRepo repository.NotificationRepository) service.NotificationService {
	return &serv{
		notificationRepo: notificationRepo,
	}
}

func (s *serv) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}
