package hunt

import (
	"bonushunt_backend/internal/model"
	"context"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ndec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

// nopTxManager выполняет функцию без реальной транзакции
type nopTxManager struct{}

func (nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (nopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeHuntRepo struct {
	hunts map[uuid.UUID]*model.Hunt
}

func newFakeHuntRepo(hunts ...*model.Hunt) *fakeHuntRepo {
	r := &fakeHuntRepo{hunts: make(map[uuid.UUID]*model.Hunt)}
	for _, h := range hunts {
		r.hunts[h.ID] = h
	}
	return r
}

func (r *fakeHuntRepo) Create(_ context.Context, hunt *model.Hunt) error {
	r.hunts[hunt.ID] = hunt
	return nil
}

func (r *fakeHuntRepo) Update(_ context.Context, hunt *model.Hunt) error {
	if _, ok := r.hunts[hunt.ID]; !ok {
		return model.ErrHuntNotFound
	}
	r.hunts[hunt.ID] = hunt
	return nil
}

func (r *fakeHuntRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.hunts[id]; !ok {
		return model.ErrHuntNotFound
	}
	delete(r.hunts, id)
	return nil
}

func (r *fakeHuntRepo) Get(_ context.Context, id uuid.UUID) (*model.Hunt, error) {
	hunt, ok := r.hunts[id]
	if !ok {
		return nil, model.ErrHuntNotFound
	}
	copied := *hunt
	return &copied, nil
}

func (r *fakeHuntRepo) List(_ context.Context, status *model.HuntStatus) ([]model.Hunt, error) {
	var result []model.Hunt
	for _, hunt := range r.hunts {
		if status == nil || hunt.Status == *status {
			result = append(result, *hunt)
		}
	}
	return result, nil
}

func (r *fakeHuntRepo) ListUnfinished(_ context.Context) ([]model.Hunt, error) {
	var result []model.Hunt
	for _, hunt := range r.hunts {
		if hunt.Status != model.HuntStatusComplete {
			result = append(result, *hunt)
		}
	}
	return result, nil
}

func (r *fakeHuntRepo) UpdateStats(_ context.Context, id uuid.UUID, stats model.HuntStats) error {
	hunt, ok := r.hunts[id]
	if !ok {
		return model.ErrHuntNotFound
	}
	hunt.AverageBet = stats.AverageBet
	hunt.HighestWin = stats.HighestWin
	hunt.HighestMultiplier = stats.HighestMultiplier
	return nil
}

func (r *fakeHuntRepo) SetStatus(_ context.Context, id uuid.UUID, status model.HuntStatus) error {
	hunt, ok := r.hunts[id]
	if !ok {
		return model.ErrHuntNotFound
	}
	hunt.Status = status
	return nil
}

func (r *fakeHuntRepo) Complete(_ context.Context, id uuid.UUID, endingBalance decimal.Decimal) error {
	hunt, ok := r.hunts[id]
	if !ok {
		return model.ErrHuntNotFound
	}
	hunt.Status = model.HuntStatusComplete
	hunt.EndingBalance = decimal.NullDecimal{Decimal: endingBalance, Valid: true}
	return nil
}

// SetWinner повторяет условную запись из БД: только если победителя еще нет
func (r *fakeHuntRepo) SetWinner(_ context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	hunt, ok := r.hunts[id]
	if !ok {
		return false, model.ErrHuntNotFound
	}
	if hunt.WinnerUserID.Valid {
		return false, nil
	}
	hunt.WinnerUserID = uuid.NullUUID{UUID: userID, Valid: true}
	return true, nil
}

type fakeSlotRepo struct {
	slots map[uuid.UUID]*model.Slot
}

func newFakeSlotRepo(slots ...*model.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[uuid.UUID]*model.Slot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *model.Slot) error {
	r.slots[slot.ID] = slot
	return nil
}

func (r *fakeSlotRepo) Update(_ context.Context, slot *model.Slot) error {
	if _, ok := r.slots[slot.ID]; !ok {
		return model.ErrSlotNotFound
	}
	r.slots[slot.ID] = slot
	return nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.slots[id]; !ok {
		return model.ErrSlotNotFound
	}
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) Get(_ context.Context, id uuid.UUID) (*model.Slot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, model.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepo) ListByHunt(_ context.Context, huntID uuid.UUID) ([]model.Slot, error) {
	var result []model.Slot
	for _, slot := range r.slots {
		if slot.HuntID == huntID {
			result = append(result, *slot)
		}
	}
	return result, nil
}

func (r *fakeSlotRepo) MaxSortOrder(_ context.Context, huntID uuid.UUID) (int, error) {
	max := 0
	for _, slot := range r.slots {
		if slot.HuntID == huntID && slot.SortOrder > max {
			max = slot.SortOrder
		}
	}
	return max, nil
}

func (r *fakeSlotRepo) UpdateSortOrder(_ context.Context, id uuid.UUID, sortOrder int) error {
	slot, ok := r.slots[id]
	if !ok {
		return model.ErrSlotNotFound
	}
	slot.SortOrder = sortOrder
	return nil
}

type fakeGuessRepo struct {
	guesses map[uuid.UUID]*model.Guess
}

func newFakeGuessRepo(guesses ...*model.Guess) *fakeGuessRepo {
	r := &fakeGuessRepo{guesses: make(map[uuid.UUID]*model.Guess)}
	for _, g := range guesses {
		r.guesses[g.ID] = g
	}
	return r
}

func (r *fakeGuessRepo) Create(_ context.Context, guess *model.Guess) error {
	for _, existing := range r.guesses {
		if existing.HuntID == guess.HuntID && existing.UserID == guess.UserID {
			return model.ErrGuessExists
		}
	}
	guess.CreatedAt = time.Now()
	r.guesses[guess.ID] = guess
	return nil
}

func (r *fakeGuessRepo) ListByHunt(_ context.Context, huntID uuid.UUID) ([]model.Guess, error) {
	var result []model.Guess
	for _, guess := range r.guesses {
		if guess.HuntID == huntID {
			result = append(result, *guess)
		}
	}
	return result, nil
}

func (r *fakeGuessRepo) SetPointsEarned(_ context.Context, id uuid.UUID, points int64) error {
	guess, ok := r.guesses[id]
	if !ok {
		return model.ErrHuntNotFound
	}
	guess.PointsEarned.Int64 = points
	guess.PointsEarned.Valid = true
	return nil
}

type fakeProfileRepo struct {
	points       map[uuid.UUID]int64
	addPointsCnt int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{points: make(map[uuid.UUID]int64)}
}

func (r *fakeProfileRepo) Get(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	return &model.Profile{ID: id, Points: r.points[id]}, nil
}

func (r *fakeProfileRepo) AddPoints(_ context.Context, id uuid.UUID, amount int64) error {
	r.points[id] += amount
	r.addPointsCnt++
	return nil
}

func (r *fakeProfileRepo) Top(_ context.Context, _ int) ([]model.Profile, error) {
	return nil, nil
}

type fakeNotifier struct {
	sent []model.Notification
}

func (n *fakeNotifier) Send(_ context.Context, notification model.Notification) {
	n.sent = append(n.sent, notification)
}

type fakeHuntCfg struct{}

func (fakeHuntCfg) DefaultWinnerPoints() int64 { return 1000 }

func (fakeHuntCfg) LeaderboardSize() int { return 10 }

func (fakeHuntCfg) SettleSweepSpec() string { return "@every 1m" }

func (fakeHuntCfg) NotificationChannel() string { return "notifications" }

type fixture struct {
	serv     *serv
	hunts    *fakeHuntRepo
	slots    *fakeSlotRepo
	guesses  *fakeGuessRepo
	profiles *fakeProfileRepo
	notifier *fakeNotifier
}

func newFixture(hunts *fakeHuntRepo, slots *fakeSlotRepo, guesses *fakeGuessRepo) *fixture {
	profiles := newFakeProfileRepo()
	notif := &fakeNotifier{}
	s := NewHuntService(hunts, slots, guesses, profiles, notif, fakeHuntCfg{}, nopTxManager{}).(*serv)
	return &fixture{
		serv:     s,
		hunts:    hunts,
		slots:    slots,
		guesses:  guesses,
		profiles: profiles,
		notifier: notif,
	}
}
