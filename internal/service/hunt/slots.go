package hunt

import (
	"bonushunt_backend/internal/model"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// AddSlot - добавление слота в хант. Как и любая мутация слотов,
// выполняется в транзакции вместе с пересчетом статистики ханта
func (s *serv) AddSlot(ctx context.Context, huntID uuid.UUID, input model.SlotInput) (*model.Slot, error) {
	var created *model.Slot

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		hunt, err := s.huntRepo.Get(txCtx, huntID)
		if err != nil {
			return err
		}

		maxOrder, err := s.slotRepo.MaxSortOrder(txCtx, huntID)
		if err != nil {
			return err
		}

		slot := buildSlot(huntID, input, maxOrder+1)
		if err := s.slotRepo.Create(txCtx, &slot); err != nil {
			return err
		}
		created = &slot

		return s.recomputeAndPersist(txCtx, hunt)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// QuickAddSlots - массовое добавление слотов из формы быстрого ввода
func (s *serv) QuickAddSlots(ctx context.Context, huntID uuid.UUID, inputs []model.SlotInput) ([]model.Slot, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	var created []model.Slot

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		hunt, err := s.huntRepo.Get(txCtx, huntID)
		if err != nil {
			return err
		}

		maxOrder, err := s.slotRepo.MaxSortOrder(txCtx, huntID)
		if err != nil {
			return err
		}

		created = created[:0]
		for i, input := range inputs {
			slot := buildSlot(huntID, input, maxOrder+1+i)
			if err := s.slotRepo.Create(txCtx, &slot); err != nil {
				return err
			}
			created = append(created, slot)
		}

		return s.recomputeAndPersist(txCtx, hunt)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateSlot - запись ставки/выигрыша слота из админской формы
func (s *serv) UpdateSlot(ctx context.Context, slotID uuid.UUID, input model.SlotInput) (*model.Slot, error) {
	var updated *model.Slot

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.Get(txCtx, slotID)
		if err != nil {
			return err
		}

		hunt, err := s.huntRepo.Get(txCtx, slot.HuntID)
		if err != nil {
			return err
		}

		slot.Name = input.Name
		slot.Provider = input.Provider
		slot.BetAmount = input.BetAmount
		slot.WinAmount = input.WinAmount
		slot.Multiplier = resolveMultiplier(input)
		// Записанный выигрыш (в том числе нулевой) означает, что слот сыгран
		slot.IsPlayed = input.WinAmount.Valid

		if err := s.slotRepo.Update(txCtx, slot); err != nil {
			return err
		}
		updated = slot

		return s.recomputeAndPersist(txCtx, hunt)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *serv) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.Get(txCtx, slotID)
		if err != nil {
			return err
		}

		hunt, err := s.huntRepo.Get(txCtx, slot.HuntID)
		if err != nil {
			return err
		}

		if err := s.slotRepo.Delete(txCtx, slotID); err != nil {
			return err
		}

		return s.recomputeAndPersist(txCtx, hunt)
	})
}

// ReorderSlots - смена порядка отображения. orderedIDs должен содержать
// каждый слот ханта ровно один раз
func (s *serv) ReorderSlots(ctx context.Context, huntID uuid.UUID, orderedIDs []uuid.UUID) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		slots, err := s.slotRepo.ListByHunt(txCtx, huntID)
		if err != nil {
			return err
		}

		if len(orderedIDs) != len(slots) {
			return fmt.Errorf("reorder list has %d ids, hunt has %d slots", len(orderedIDs), len(slots))
		}

		known := make(map[uuid.UUID]struct{}, len(slots))
		for _, slot := range slots {
			known[slot.ID] = struct{}{}
		}

		for i, id := range orderedIDs {
			if _, ok := known[id]; !ok {
				return model.ErrSlotNotFound
			}
			if err := s.slotRepo.UpdateSortOrder(txCtx, id, i+1); err != nil {
				return err
			}
		}

		return nil
	})
}

// buildSlot - слот из входных данных формы с производными полями
func buildSlot(huntID uuid.UUID, input model.SlotInput, sortOrder int) model.Slot {
	return model.Slot{
		ID:         uuid.New(),
		HuntID:     huntID,
		Name:       input.Name,
		Provider:   input.Provider,
		BetAmount:  input.BetAmount,
		WinAmount:  input.WinAmount,
		Multiplier: resolveMultiplier(input),
		IsPlayed:   input.WinAmount.Valid,
		SortOrder:  sortOrder,
	}
}

// recomputeAndPersist - пересчет статистики по актуальным слотам, сохранение
// кэшированных полей и, при готовности, автозавершение ханта
func (s *serv) recomputeAndPersist(ctx context.Context, hunt *model.Hunt) error {
	slots, err := s.slotRepo.ListByHunt(ctx, hunt.ID)
	if err != nil {
		return err
	}

	stats := Recompute(slots, hunt.StartingBalance)

	if err := s.huntRepo.UpdateStats(ctx, hunt.ID, stats); err != nil {
		return err
	}

	// Первый сыгранный слот переводит хант из to_be_played в ongoing
	if hunt.Status == model.HuntStatusToBePlayed && stats.PlayedCount > 0 {
		if err := s.huntRepo.SetStatus(ctx, hunt.ID, model.HuntStatusOngoing); err != nil {
			return err
		}
		hunt.Status = model.HuntStatusOngoing
	}

	if !stats.ReadyToComplete() || hunt.Status == model.HuntStatusComplete {
		return nil
	}

	// Все слоты сыграны: фиксируем итоговый баланс и завершаем хант
	ending := huntTarget(stats)
	if err := s.huntRepo.Complete(ctx, hunt.ID, ending); err != nil {
		return err
	}
	hunt.Status = model.HuntStatusComplete

	// Автоматический расчет победителя. Проигранная гонка с параллельным
	// расчетом или уже записанный победитель - штатный no-op
	_, err = s.settle(ctx, hunt, ending)
	if err != nil && !errors.Is(err, model.ErrWinnerAlreadyDetermined) {
		return err
	}

	return nil
}
