package repository

import (
	"bonushunt_backend/internal/model"
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HuntRepository interface {
	Create(ctx context.Context, hunt *model.Hunt) error
	Update(ctx context.Context, hunt *model.Hunt) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Hunt, error)
	List(ctx context.Context, status *model.HuntStatus) ([]model.Hunt, error)
	// ListUnfinished - ханты со статусом, отличным от complete (для sweep-джобы)
	ListUnfinished(ctx context.Context) ([]model.Hunt, error)

	UpdateStats(ctx context.Context, id uuid.UUID, stats model.HuntStats) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.HuntStatus) error
	// Complete переводит хант в статус complete и фиксирует итоговый баланс
	Complete(ctx context.Context, id uuid.UUID, endingBalance decimal.Decimal) error
	// SetWinner - условная запись победителя: выполняется только если
	// winner_user_id еще NULL. Возвращает false, если победитель уже был записан
	SetWinner(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
}

type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	Update(ctx context.Context, slot *model.Slot) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Slot, error)
	// ListByHunt возвращает все слоты ханта в порядке sort_order
	ListByHunt(ctx context.Context, huntID uuid.UUID) ([]model.Slot, error)
	MaxSortOrder(ctx context.Context, huntID uuid.UUID) (int, error)
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
}

type GuessRepository interface {
	// Create вставляет прогноз; при конфликте (hunt_id, user_id)
	// возвращает model.ErrGuessExists
	Create(ctx context.Context, guess *model.Guess) error
	// ListByHunt возвращает прогнозы в порядке created_at
	ListByHunt(ctx context.Context, huntID uuid.UUID) ([]model.Guess, error)
	SetPointsEarned(ctx context.Context, id uuid.UUID, points int64) error
}

type ProfileRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	// AddPoints - атомарный инкремент баланса очков (points = points + amount)
	AddPoints(ctx context.Context, id uuid.UUID, amount int64) error
	Top(ctx context.Context, limit int) ([]model.Profile, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
}
