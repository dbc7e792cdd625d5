package profile_repo

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
	table       = "profiles"
	colID       = "id"
	colUsername = "username"
	colPoints   = "points"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewProfileRepository(dbc *pgxpool.Pool) repository.ProfileRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colPoints).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var profile model.Profile
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&profile.ID, &profile.Username, &profile.Points,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// AddPoints - начисление очков одним атомарным инкрементом.
// Никакого чтения-модификации-записи из приложения: points = points + amount
func (r *repo) AddPoints(ctx context.Context, id uuid.UUID, amount int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colPoints, sq.Expr(colPoints+" + ?", amount)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// Top - первые limit профилей по убыванию очков (лидерборд)
func (r *repo) Top(ctx context.Context, limit int) ([]model.Profile, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colPoints).
		From(table).
		OrderBy(colPoints + " DESC").
		Limit(uint64(limit)).
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

	var profiles []model.Profile
	for rows.Next() {
		var profile model.Profile
		err = rows.Scan(&profile.ID, &profile.Username, &profile.Points)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
