package hunt_repo

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
	"github.com/shopspring/decimal"
)

const (
	table                = "hunts"
	colID                = "id"
	colTitle             = "title"
	colDate              = "date"
	colCurrency          = "currency"
	colStatus            = "status"
	colStartingBalance   = "starting_balance"
	colTargetBalance     = "target_balance"
	colEndingBalance     = "ending_balance"
	colAverageBet        = "average_bet"
	colHighestWin        = "highest_win"
	colHighestMultiplier = "highest_multiplier"
	colWinnerPoints      = "winner_points"
	colWinnerUserID      = "winner_user_id"
	colCreatedAt         = "created_at"
)

var allColumns = []string{
	colID, colTitle, colDate, colCurrency, colStatus,
	colStartingBalance, colTargetBalance, colEndingBalance,
	colAverageBet, colHighestWin, colHighestMultiplier,
	colWinnerPoints, colWinnerUserID, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHuntRepository(dbc *pgxpool.Pool) repository.HuntRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создает хант и возвращает запись с проставленным created_at
func (r *repo) Create(ctx context.Context, hunt *model.Hunt) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colTitle, colDate, colCurrency, colStatus,
			colStartingBalance, colTargetBalance, colWinnerPoints).
		Values(hunt.ID, hunt.Title, hunt.Date, hunt.Currency, hunt.Status,
			hunt.StartingBalance, hunt.TargetBalance, hunt.WinnerPoints).
		Suffix("RETURNING " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&hunt.CreatedAt)
}

// Update - обновляет редактируемые админом поля ханта
func (r *repo) Update(ctx context.Context, hunt *model.Hunt) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTitle, hunt.Title).
		Set(colDate, hunt.Date).
		Set(colCurrency, hunt.Currency).
		Set(colStatus, hunt.Status).
		Set(colStartingBalance, hunt.StartingBalance).
		Set(colTargetBalance, hunt.TargetBalance).
		Set(colEndingBalance, hunt.EndingBalance).
		Set(colWinnerPoints, hunt.WinnerPoints).
		Where(sq.Eq{colID: hunt.ID}).
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
		return model.ErrHuntNotFound
	}

	return nil
}

// Delete - удаляет хант. Слоты и прогнозы удаляются каскадом на уровне БД
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
		return model.ErrHuntNotFound
	}

	return nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Hunt, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var hunt model.Hunt
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&hunt.ID, &hunt.Title, &hunt.Date, &hunt.Currency, &hunt.Status,
		&hunt.StartingBalance, &hunt.TargetBalance, &hunt.EndingBalance,
		&hunt.AverageBet, &hunt.HighestWin, &hunt.HighestMultiplier,
		&hunt.WinnerPoints, &hunt.WinnerUserID, &hunt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrHuntNotFound
		}
		return nil, err
	}

	return &hunt, nil
}

// List - ханты, опционально отфильтрованные по статусу, свежие сверху
func (r *repo) List(ctx context.Context, status *model.HuntStatus) ([]model.Hunt, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		OrderBy(colDate + " DESC, " + colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	if status != nil {
		query = query.Where(sq.Eq{colStatus: *status})
	}

	return r.listQuery(ctx, query)
}

// ListUnfinished - ханты, которые еще могут автозавершиться
func (r *repo) ListUnfinished(ctx context.Context) ([]model.Hunt, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.NotEq{colStatus: model.HuntStatusComplete}).
		OrderBy(colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	return r.listQuery(ctx, query)
}

func (r *repo) listQuery(ctx context.Context, query sq.SelectBuilder) ([]model.Hunt, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hunts []model.Hunt
	for rows.Next() {
		var hunt model.Hunt
		err = rows.Scan(
			&hunt.ID, &hunt.Title, &hunt.Date, &hunt.Currency, &hunt.Status,
			&hunt.StartingBalance, &hunt.TargetBalance, &hunt.EndingBalance,
			&hunt.AverageBet, &hunt.HighestWin, &hunt.HighestMultiplier,
			&hunt.WinnerPoints, &hunt.WinnerUserID, &hunt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		hunts = append(hunts, hunt)
	}

	return hunts, rows.Err()
}

// UpdateStats - сохраняет кэшированную статистику ханта
func (r *repo) UpdateStats(ctx context.Context, id uuid.UUID, stats model.HuntStats) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colAverageBet, stats.AverageBet).
		Set(colHighestWin, stats.HighestWin).
		Set(colHighestMultiplier, stats.HighestMultiplier).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) SetStatus(ctx context.Context, id uuid.UUID, status model.HuntStatus) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStatus, status).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// Complete - фиксирует итоговый баланс и переводит хант в complete
func (r *repo) Complete(ctx context.Context, id uuid.UUID, endingBalance decimal.Decimal) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStatus, model.HuntStatusComplete).
		Set(colEndingBalance, endingBalance).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// SetWinner - условная запись победителя (выполняется единственный раз).
// Условие winner_user_id IS NULL входит в сам UPDATE, поэтому гонка
// двух одновременных расчетов не приводит к двойному начислению
func (r *repo) SetWinner(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colWinnerUserID, userID).
		Where(sq.Eq{colID: id}).
		Where(sq.Eq{colWinnerUserID: nil}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}
