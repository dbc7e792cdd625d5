package service

import (
	"bonushunt_backend/internal/model"
	"context"

	"github.com/google/uuid"
)

type HuntService interface {
	CreateHunt(ctx context.Context, hunt model.Hunt) (*model.Hunt, error)
	UpdateHunt(ctx context.Context, hunt model.Hunt) (*model.Hunt, error)
	DeleteHunt(ctx context.Context, id uuid.UUID) error
	GetHunt(ctx context.Context, id uuid.UUID) (*model.HuntDetails, error)
	ListHunts(ctx context.Context, status *model.HuntStatus) ([]model.Hunt, error)

	AddSlot(ctx context.Context, huntID uuid.UUID, input model.SlotInput) (*model.Slot, error)
	QuickAddSlots(ctx context.Context, huntID uuid.UUID, inputs []model.SlotInput) ([]model.Slot, error)
	UpdateSlot(ctx context.Context, slotID uuid.UUID, input model.SlotInput) (*model.Slot, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
	ReorderSlots(ctx context.Context, huntID uuid.UUID, orderedIDs []uuid.UUID) error

	// PickWinner - ручное определение победителя админом.
	// Возвращает (nil, nil), если прогнозов нет
	PickWinner(ctx context.Context, huntID uuid.UUID) (*model.SettlementResult, error)
	// SettleDueHunts - фоновая проверка незавершенных хантов (sweep)
	SettleDueHunts(ctx context.Context) error
}

type GuessService interface {
	Submit(ctx context.Context, guess model.Guess) (*model.Guess, error)
	ListByHunt(ctx context.Context, huntID uuid.UUID) ([]model.Guess, error)
}

type LeaderboardService interface {
	Top(ctx context.Context) ([]model.Profile, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
}

// Notifier - коллаборатор уведомлений, fire-and-forget
type Notifier interface {
	Send(ctx context.Context, notification model.Notification)
}
