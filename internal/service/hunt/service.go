package hunt

import (
	"bonushunt_backend/internal/config"
	"bonushunt_backend/internal/repository"
	"bonushunt_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	huntRepo    repository.HuntRepository
	slotRepo    repository.SlotRepository
	guessRepo   repository.GuessRepository
	profileRepo repository.ProfileRepository
	notifier    service.Notifier
	cfg         config.HuntConfig
	txManager   trm.Manager
}

// NewHuntService - сервис хантов: CRUD, пересчет статистики,
// автозавершение и определение победителя
func NewHuntService(
	huntRepo repository.HuntRepository,
	slotRepo repository.SlotRepository,
	guessRepo repository.GuessRepository,
	profileRepo repository.ProfileRepository,
	notifier service.Notifier,
	cfg config.HuntConfig,
	txManager trm.Manager,
) service.HuntService {
	return &serv{
		huntRepo:    huntRepo,
		slotRepo:    slotRepo,
		guessRepo:   guessRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		cfg:         cfg,
		txManager:   txManager,
	}
}
