package guess_repo

import (
	"bonushunt_backend/internal/model"
	"bonushunt_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "guesses"
	colID           = "id"
	colHuntID       = "hunt_id"
	colUserID       = "user_id"
	colGuessAmount  = "guess_amount"
	colPointsEarned = "points_earned"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGuessRepository(dbc *pgxpool.Pool) repository.GuessRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - вставка прогноза. Уникальность пары (hunt_id, user_id) обеспечивает
// индекс в БД: при конфликте вставка не происходит и возвращается ErrGuessExists.
// Пути обновления не существует - прогнозы неизменяемы
func (r *repo) Create(ctx context.Context, guess *model.Guess) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colHuntID, colUserID, colGuessAmount).
		Values(guess.ID, guess.HuntID, guess.UserID, guess.GuessAmount).
		Suffix("ON CONFLICT (" + colHuntID + ", " + colUserID + ") DO NOTHING RETURNING " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&guess.CreatedAt)
	if err != nil {
		// DO NOTHING не возвращает строку при конфликте
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrGuessExists
		}
		return err
	}

	return nil
}

// ListByHunt - прогнозы ханта в порядке подачи
func (r *repo) ListByHunt(ctx context.Context, huntID uuid.UUID) ([]model.Guess, error) {
	// Формируем запрос
	query := sq.Select(colID, colHuntID, colUserID, colGuessAmount, colPointsEarned, colCreatedAt).
		From(table).
		Where(sq.Eq{colHuntID: huntID}).
		OrderBy(colCreatedAt).
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

	var guesses []model.Guess
	for rows.Next() {
		var guess model.Guess
		err = rows.Scan(
			&guess.ID, &guess.HuntID, &guess.UserID,
			&guess.GuessAmount, &guess.PointsEarned, &guess.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		guesses = append(guesses, guess)
	}

	return guesses, rows.Err()
}

func (r *repo) SetPointsEarned(ctx context.Context, id uuid.UUID, points int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colPointsEarned, points).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
