package scheduler

import (
	"bonushunt_backend/internal/service"
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler - фоновая sweep-джоба: добивает ханты, у которых все слоты
// сыграны, но автозавершение не отработало. Благодаря условной записи
// победителя пересечение с расчетом в обработчике запроса безопасно
type Scheduler struct {
	cron     *cron.Cron
	huntServ service.HuntService
	spec     string
}

func New(spec string, huntServ service.HuntService) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		huntServ: huntServ,
		spec:     spec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.huntServ.SettleDueHunts(context.Background()); err != nil {
			log.Printf("settle sweep finished with error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule settle sweep: %w", err)
	}

	s.cron.Start()
	log.Printf("settle sweep scheduled: %s", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
