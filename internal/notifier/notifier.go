package notifier

import (
	"bonushunt_backend/internal/model"
	"bonushunt_backend/internal/repository"
	"bonushunt_backend/internal/service"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// payload - формат сообщения в Redis-канале уведомлений
type payload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

type notifier struct {
	notificationRepo repository.NotificationRepository
	rdb              *redis.Client
	channel          string
}

// NewNotifier - коллаборатор уведомлений: пишет строку в БД (в рамках
// транзакции вызывающего) и публикует событие в Redis-канал.
// Отправка fire-and-forget: сбои логируются и не всплывают к вызывающему
func NewNotifier(notificationRepo repository.NotificationRepository, rdb *redis.Client, channel string) service.Notifier {
	return &notifier{
		notificationRepo: notificationRepo,
		rdb:              rdb,
		channel:          channel,
	}
}

func (n *notifier) Send(ctx context.Context, notification model.Notification) {
	if err := n.notificationRepo.Create(ctx, &notification); err != nil {
		log.Printf("failed to store notification for user %s: %v", notification.UserID, err)
		return
	}

	raw, err := json.Marshal(payload{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Link:      notification.Link,
		CreatedAt: notification.CreatedAt,
	})
	if err != nil {
		log.Printf("failed to marshal notification: %v", err)
		return
	}

	if err := n.rdb.Publish(ctx, n.channel, raw).Err(); err != nil {
		log.Printf("failed to publish notification to %s: %v", n.channel, err)
	}
}
