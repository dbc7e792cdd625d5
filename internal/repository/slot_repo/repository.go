package slot_repo

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
	table         = "slots"
	colID         = "id"
	colHuntID     = "hunt_id"
	colName       = "name"
	colProvider   = "provider"
	colBetAmount  = "bet_amount"
	colWinAmount  = "win_amount"
	colMultiplier = "multiplier"
	colIsPlayed   = "is_played"
	colSortOrder  = "sort_order"
	colCreatedAt  = "created_at"
)

var allColumns = []string{
	colID, colHuntID, colName, colProvider,
	colBetAmount, colWinAmount, colMultiplier,
	colIsPlayed, colSortOrder, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSlotRepository(dbc *pgxpool.Pool) repository.SlotRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Create(ctx context.Context, slot *model.Slot) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colHuntID, colName, colProvider,
			colBetAmount, colWinAmount, colMultiplier,
			colIsPlayed, colSortOrder).
		Values(slot.ID, slot.HuntID, slot.Name, slot.Provider,
			slot.BetAmount, slot.WinAmount, slot.Multiplier,
			slot.IsPlayed, slot.SortOrder).
		Suffix("RETURNING " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&slot.CreatedAt)
}

func (r *repo) Update(ctx context.Context, slot *model.Slot) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colName, slot.Name).
		Set(colProvider, slot.Provider).
		Set(colBetAmount, slot.BetAmount).
		Set(colWinAmount, slot.WinAmount).
		Set(colMultiplier, slot.Multiplier).
		Set(colIsPlayed, slot.IsPlayed).
		Where(sq.Eq{colID: slot.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}

	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}

	return nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Slot, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var slot model.Slot
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&slot.ID, &slot.HuntID, &slot.Name, &slot.Provider,
		&slot.BetAmount, &slot.WinAmount, &slot.Multiplier,
		&slot.IsPlayed, &slot.SortOrder, &slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSlotNotFound
		}
		return nil, err
	}

	return &slot, nil
}

// ListByHunt - полный список слотов ханта в порядке отображения.
// Пагинации нет: слоты заводятся вручную и их мало
func (r *repo) ListByHunt(ctx context.Context, huntID uuid.UUID) ([]model.Slot, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colHuntID: huntID}).
		OrderBy(colSortOrder).
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

	var slots []model.Slot
	for rows.Next() {
		var slot model.Slot
		err = rows.Scan(
			&slot.ID, &slot.HuntID, &slot.Name, &slot.Provider,
			&slot.BetAmount, &slot.WinAmount, &slot.Multiplier,
			&slot.IsPlayed, &slot.SortOrder, &slot.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

// MaxSortOrder - наибольший sort_order в ханте, 0 если слотов нет
func (r *repo) MaxSortOrder(ctx context.Context, huntID uuid.UUID) (int, error) {
	// Формируем запрос
	query := sq.Select("COALESCE(MAX(" + colSortOrder + "), 0)").
		From(table).
		Where(sq.Eq{colHuntID: huntID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var max int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&max)
	if err != nil {
		return 0, err
	}

	return max, nil
}

func (r *repo) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colSortOrder, sortOrder).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return model.ErrSlotNotFound
	}

	return nil
}
