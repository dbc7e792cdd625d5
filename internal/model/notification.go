package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeGuessWin = "guess_win"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	Link      string
	IsRead    bool
	CreatedAt time.Time
}
