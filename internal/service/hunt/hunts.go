package hunt

import (
	"bonushunt_backend/internal/model"
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateHunt - создание ханта админом
func (s *serv) CreateHunt(ctx context.Context, hunt model.Hunt) (*model.Hunt, error) {
	hunt.ID = uuid.New()
	if hunt.Status == "" {
		hunt.Status = model.HuntStatusToBePlayed
	}
	if hunt.WinnerPoints == 0 {
		hunt.WinnerPoints = s.cfg.DefaultWinnerPoints()
	}

	err := s.huntRepo.Create(ctx, &hunt)
	if err != nil {
		return nil, err
	}

	return &hunt, nil
}

// UpdateHunt - обновление полей ханта из админской формы.
// Победитель через этот путь не трогается никогда
func (s *serv) UpdateHunt(ctx context.Context, hunt model.Hunt) (*model.Hunt, error) {
	var updated *model.Hunt

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.huntRepo.Get(txCtx, hunt.ID)
		if err != nil {
			return err
		}

		// Статус не откатывается назад: complete - терминальное состояние
		if current.Status == model.HuntStatusComplete {
			hunt.Status = model.HuntStatusComplete
		}
		hunt.WinnerUserID = current.WinnerUserID

		if err := s.huntRepo.Update(txCtx, &hunt); err != nil {
			return err
		}

		updated, err = s.huntRepo.Get(txCtx, hunt.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *serv) DeleteHunt(ctx context.Context, id uuid.UUID) error {
	return s.huntRepo.Delete(ctx, id)
}

// GetHunt - хант со слотами и статистикой, посчитанной по текущим слотам
func (s *serv) GetHunt(ctx context.Context, id uuid.UUID) (*model.HuntDetails, error) {
	hunt, err := s.huntRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByHunt(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.HuntDetails{
		Hunt:  *hunt,
		Slots: slots,
		Stats: Recompute(slots, hunt.StartingBalance),
	}, nil
}

func (s *serv) ListHunts(ctx context.Context, status *model.HuntStatus) ([]model.Hunt, error) {
	return s.huntRepo.List(ctx, status)
}

// huntTarget - итоговый баланс ханта как цель для прогнозов:
// валовая сумма выигрышей (totalWon), а не баланс с учетом
// стартового депозита
func huntTarget(stats model.HuntStats) decimal.Decimal {
	return stats.TotalWon
}
