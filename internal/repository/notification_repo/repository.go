package notification_repo

import (
	"bonushunt_backend/internal/model"
	"bonushunt_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "notifications"
	colID        = "id"
	colUserID    = "user_id"
	colTitle     = "title"
	colMessage   = "message"
	colType      = "type"
	colLink      = "link"
	colIsRead    = "is_read"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewNotificationRepository(dbc *pgxpool.Pool) repository.NotificationRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Create(ctx context.Context, notification *model.Notification) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colTitle, colMessage, colType, colLink).
		Values(notification.ID, notification.UserID, notification.Title,
			notification.Message, notification.Type, notification.Link).
		Suffix("RETURNING " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&notification.CreatedAt)
}

// ListByUser - уведомления пользователя, свежие сверху
func (r *repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colTitle, colMessage, colType, colLink, colIsRead, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		err = rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Link, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
