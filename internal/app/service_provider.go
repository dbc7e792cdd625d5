package app

import (
	guessAPI "bonushunt_backend/internal/api/guess"
	huntAPI "bonushunt_backend/internal/api/hunt"
	leaderboardAPI "bonushunt_backend/internal/api/leaderboard"
	notificationAPI "bonushunt_backend/internal/api/notification"
	"bonushunt_backend/internal/config"
	"bonushunt_backend/internal/config/env"
	"bonushunt_backend/internal/middleware"
	"bonushunt_backend/internal/notifier"
	"bonushunt_backend/internal/repository"
	"bonushunt_backend/internal/repository/guess_repo"
	"bonushunt_backend/internal/repository/hunt_repo"
	"bonushunt_backend/internal/repository/notification_repo"
	"bonushunt_backend/internal/repository/profile_repo"
	"bonushunt_backend/internal/repository/slot_repo"
	"bonushunt_backend/internal/scheduler"
	"bonushunt_backend/internal/service"
	"bonushunt_backend/internal/service/guess"
	"bonushunt_backend/internal/service/hunt"
	"bonushunt_backend/internal/service/leaderboard"
	"bonushunt_backend/internal/service/notification"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Hunt bits
	huntCfg  config.HuntConfig
	huntRepo repository.HuntRepository
	slotRepo repository.SlotRepository
	huntServ service.HuntService
	huntHand *huntAPI.Handler

	// Guess bits
	guessRepo repository.GuessRepository
	guessServ service.GuessService
	guessHand *guessAPI.Handler

	// Profile / leaderboard bits
	profileRepo     repository.ProfileRepository
	leaderboardServ service.LeaderboardService
	leaderboardHand *leaderboardAPI.Handler

	// Notification bits
	notificationRepo repository.NotificationRepository
	notifierServ     service.Notifier
	notificationServ service.NotificationService
	notificationHand *notificationAPI.Handler

	// Фоновая sweep-джоба
	sched *scheduler.Scheduler

	// Router and HTTP config
	jwtCfg  config.JWTConfig
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient() *redis.Client {
	if sp.redisClient == nil {
		sp.redisClient = redis.NewClient(&redis.Options{
			Addr: sp.RedisConfig().Addr(),
		})
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) HuntCfg() config.HuntConfig {
	if sp.huntCfg == nil {
		cfg, err := env.NewHuntConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get hunt config: " + err.Error())
		}

		sp.huntCfg = cfg
	}
	return sp.huntCfg
}

func (sp *ServiceProvider) HuntRepository(ctx context.Context) repository.HuntRepository {
	if sp.huntRepo == nil {
		sp.huntRepo = hunt_repo.NewHuntRepository(sp.DBClient(ctx))
	}
	return sp.huntRepo
}

func (sp *ServiceProvider) SlotRepository(ctx context.Context) repository.SlotRepository {
	if sp.slotRepo == nil {
		sp.slotRepo = slot_repo.NewSlotRepository(sp.DBClient(ctx))
	}
	return sp.slotRepo
}

func (sp *ServiceProvider) GuessRepository(ctx context.Context) repository.GuessRepository {
	if sp.guessRepo == nil {
		sp.guessRepo = guess_repo.NewGuessRepository(sp.DBClient(ctx))
	}
	return sp.guessRepo
}

func (sp *ServiceProvider) ProfileRepository(ctx context.Context) repository.ProfileRepository {
	if sp.profileRepo == nil {
		sp.profileRepo = profile_repo.NewProfileRepository(sp.DBClient(ctx))
	}
	return sp.profileRepo
}

func (sp *ServiceProvider) NotificationRepository(ctx context.Context) repository.NotificationRepository {
	if sp.notificationRepo == nil {
		sp.notificationRepo = notification_repo.NewNotificationRepository(sp.DBClient(ctx))
	}
	return sp.notificationRepo
}

func (sp *ServiceProvider) Notifier(ctx context.Context) service.Notifier {
	if sp.notifierServ == nil {
		sp.notifierServ = notifier.NewNotifier(
			sp.NotificationRepository(ctx),
			sp.RedisClient(),
			sp.HuntCfg().NotificationChannel(),
		)
	}
	return sp.notifierServ
}

func (sp *ServiceProvider) HuntService(ctx context.Context) service.HuntService {
	if sp.huntServ == nil {
		sp.huntServ = hunt.NewHuntService(
			sp.HuntRepository(ctx),
			sp.SlotRepository(ctx),
			sp.GuessRepository(ctx),
			sp.ProfileRepository(ctx),
			sp.Notifier(ctx),
			sp.HuntCfg(),
			sp.TXManager(ctx),
		)
	}
	return sp.huntServ
}

func (sp *ServiceProvider) HuntHandler(ctx context.Context) *huntAPI.Handler {
	if sp.huntHand == nil {
		sp.huntHand = huntAPI.NewHandler(huntAPI.HandlerDeps{
			Serv: sp.HuntService(ctx),
		})
	}
	return sp.huntHand
}

func (sp *ServiceProvider) GuessService(ctx context.Context) service.GuessService {
	if sp.guessServ == nil {
		sp.guessServ = guess.NewGuessService(sp.GuessRepository(ctx), sp.HuntRepository(ctx))
	}
	return sp.guessServ
}

func (sp *ServiceProvider) GuessHandler(ctx context.Context) *guessAPI.Handler {
	if sp.guessHand == nil {
		sp.guessHand = guessAPI.NewHandler(guessAPI.HandlerDeps{Serv: sp.GuessService(ctx)})
	}
	return sp.guessHand
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(sp.ProfileRepository(ctx), sp.HuntCfg())
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.leaderboardHand == nil {
		sp.leaderboardHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{Serv: sp.LeaderboardService(ctx)})
	}
	return sp.leaderboardHand
}

func (sp *ServiceProvider) NotificationService(ctx context.Context) service.NotificationService {
	if sp.notificationServ == nil {
		sp.notificationServ = notification.NewNotificationService(sp.NotificationRepository(ctx))
	}
	return sp.notificationServ
}

func (sp *ServiceProvider) NotificationHandler(ctx context.Context) *notificationAPI.Handler {
	if sp.notificationHand == nil {
		sp.notificationHand = notificationAPI.NewHandler(notificationAPI.HandlerDeps{Serv: sp.NotificationService(ctx)})
	}
	return sp.notificationHand
}

func (sp *ServiceProvider) Scheduler(ctx context.Context) *scheduler.Scheduler {
	if sp.sched == nil {
		sp.sched = scheduler.New(sp.HuntCfg().SettleSweepSpec(), sp.HuntService(ctx))
	}
	return sp.sched
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}

		sp.jwtCfg = cfg
	}

	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}

		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authMW := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Публичные страницы
		huntHandler := sp.HuntHandler(ctx)
		guessHandler := sp.GuessHandler(ctx)
		r.Route("/hunts", func(rr chi.Router) {
			rr.Get("/", huntHandler.List)
			rr.Get("/{huntID}", huntHandler.Get)
			rr.Get("/{huntID}/guesses", guessHandler.List)

			// Прогноз подается от имени пользователя
			rr.With(authMW).Post("/{huntID}/guesses", guessHandler.Submit)
		})

		r.Get("/leaderboard", sp.LeaderboardHandler(ctx).Top)
		r.With(authMW).Get("/notifications", sp.NotificationHandler(ctx).List)

		// Админка
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Use(middleware.RequireAdmin)

			rr.Post("/hunts", huntHandler.Create)
			rr.Put("/hunts/{huntID}", huntHandler.Update)
			rr.Delete("/hunts/{huntID}", huntHandler.Delete)

			rr.Post("/hunts/{huntID}/slots", huntHandler.AddSlot)
			rr.Post("/hunts/{huntID}/slots/bulk", huntHandler.QuickAddSlots)
			rr.Put("/hunts/{huntID}/slots/order", huntHandler.ReorderSlots)
			rr.Put("/slots/{slotID}", huntHandler.UpdateSlot)
			rr.Delete("/slots/{slotID}", huntHandler.DeleteSlot)

			rr.Post("/hunts/{huntID}/winner", huntHandler.PickWinner)
		})

		sp.router = r
	}

	return sp.router
}
