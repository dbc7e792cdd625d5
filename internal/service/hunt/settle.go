package hunt

import (
	"bonushunt_backend/internal/model"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickWinner - ручное определение победителя из админки.
// Разделяет с автозавершением один и тот же guard: если победитель
// уже записан, возвращается ErrWinnerAlreadyDetermined и ничего
// не начисляется повторно
func (s *serv) PickWinner(ctx context.Context, huntID uuid.UUID) (*model.SettlementResult, error) {
	var result *model.SettlementResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		hunt, err := s.huntRepo.Get(txCtx, huntID)
		if err != nil {
			return err
		}

		if hunt.WinnerUserID.Valid {
			return model.ErrWinnerAlreadyDetermined
		}
		if !hunt.EndingBalance.Valid {
			return model.ErrNoEndingBalance
		}

		result, err = s.settle(txCtx, hunt, hunt.EndingBalance.Decimal)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// settle - выбор победителя и начисление очков. Вызывается внутри транзакции.
// Атомарность "не более одного раза" держится на условном UPDATE в SetWinner,
// а не на предварительном чтении
func (s *serv) settle(ctx context.Context, hunt *model.Hunt, target decimal.Decimal) (*model.SettlementResult, error) {
	guesses, err := s.guessRepo.ListByHunt(ctx, hunt.ID)
	if err != nil {
		return nil, err
	}

	// Нет прогнозов - хант остается без победителя, это не ошибка
	selected := SelectWinner(target, guesses)
	if selected == nil {
		return nil, nil
	}

	ok, err := s.huntRepo.SetWinner(ctx, hunt.ID, selected.Winner.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Параллельный расчет успел первым
		return nil, model.ErrWinnerAlreadyDetermined
	}

	if err := s.guessRepo.SetPointsEarned(ctx, selected.Winner.ID, hunt.WinnerPoints); err != nil {
		return nil, err
	}

	if err := s.profileRepo.AddPoints(ctx, selected.Winner.UserID, hunt.WinnerPoints); err != nil {
		return nil, err
	}

	s.notifier.Send(ctx, model.Notification{
		ID:     uuid.New(),
		UserID: selected.Winner.UserID,
		Title:  "You won the guess the win game!",
		Message: fmt.Sprintf("Your guess %s was the closest to the final balance %s. You earned %d points!",
			selected.Winner.GuessAmount.StringFixed(2), target.StringFixed(2), hunt.WinnerPoints),
		Type: model.NotificationTypeGuessWin,
		Link: "/hunts/" + hunt.ID.String(),
	})

	return &model.SettlementResult{
		Winner:        selected.Winner,
		Distance:      selected.Distance,
		PointsAwarded: hunt.WinnerPoints,
	}, nil
}

// SettleDueHunts - sweep по незавершенным хантам. Подбирает ханты, у которых
// все слоты уже сыграны, но автозавершение по какой-то причине не отработало
// (например, запрос оборвался между записью слота и пересчетом)
func (s *serv) SettleDueHunts(ctx context.Context) error {
	hunts, err := s.huntRepo.ListUnfinished(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, h := range hunts {
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			hunt, err := s.huntRepo.Get(txCtx, h.ID)
			if err != nil {
				return err
			}
			return s.recomputeAndPersist(txCtx, hunt)
		})
		if err != nil && !errors.Is(err, model.ErrWinnerAlreadyDetermined) {
			log.Printf("failed to settle hunt %s: %v", h.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
