package app

import (
	"context"
	"net/http"

	gameAPI "slot_game/internal/api/game"
	slotAPI "slot_game/internal/api/slot"
	userAPI "slot_game/internal/api/user"
	webhookAPI "slot_game/internal/api/webhook"
	"slot_game/internal/config"
	"slot_game/internal/config/env"
	"slot_game/internal/line"
	"slot_game/internal/metrics"
	"slot_game/internal/middleware"
	"slot_game/internal/repository"
	"slot_game/internal/repository/config_repo"
	"slot_game/internal/repository/user_repo"
	"slot_game/internal/repository/win_repo"
	"slot_game/internal/service"
	"slot_game/internal/service/bot"
	"slot_game/internal/service/game"
	"slot_game/internal/service/slot"
	"slot_game/internal/service/user"
	"slot_game/pkg/logger"
	"slot_game/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const slotConfigPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient redis.UniversalClient

	// Game config store
	storeConfig config.StoreConfig
	configStore repository.ConfigStore

	slotCfg config.SlotConfig

	// Local game bits
	gameServ service.GameService
	gameHand *gameAPI.Handler

	// Networked slot bits
	userRepo repository.UserRepository
	winRepo  repository.WinRecordRepository
	userServ service.UserService
	slotServ service.SlotService
	userHand *userAPI.Handler
	slotHand *slotAPI.Handler

	// LINE bits
	lineCfg     config.LineBotConfig
	botServ     service.BotService
	webhookHand *webhookAPI.Handler

	// Admin token
	adminCfg config.AdminTokenConfig

	// Spin rate limit
	rateLimitCfg config.RateLimitConfig
	rateLimiter  *middleware.RateLimiter

	// Router and HTTP config
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

// NetworkedEnabled - сетевой вариант (пользователи, спин, LINE) поднимается только
// при заданном подключении к Postgres; локальной игре с memory/redis база не нужна.
func (sp *ServiceProvider) NetworkedEnabled() bool {
	if sp.pgConfig != nil {
		return true
	}
	cfg, err := env.NewPGConfig()
	if err != nil {
		logger.Warn("postgres is not configured, networked routes are disabled", zap.Error(err))
		return false
	}
	sp.pgConfig = cfg
	return true
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db dsn: " + err.Error())
		}
		if n := sp.PgConfig().MaxConns(); n > 0 {
			poolCfg.MaxConns = n
		}
		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
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

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil {
		cfg := sp.RedisConfig()
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Addr()},
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
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

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML(slotConfigPath)
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) StoreConfig() config.StoreConfig {
	if sp.storeConfig == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeConfig = cfg
	}
	return sp.storeConfig
}

// ConfigStore выбирает хранилище состояния игроков по CONFIG_STORE
func (sp *ServiceProvider) ConfigStore(ctx context.Context) repository.ConfigStore {
	if sp.configStore == nil {
		defaults := sp.SlotCfg().DefaultProbabilities()
		switch sp.StoreConfig().Backend() {
		case config.StoreRedis:
			sp.configStore = config_repo.NewRedisStore(sp.RedisClient(ctx), defaults)
		case config.StorePostgres:
			sp.configStore = config_repo.NewPostgresStore(sp.DBClient(ctx), defaults)
		default:
			sp.configStore = config_repo.NewMemoryStore(defaults)
		}
		logger.Info("game config store", zap.String("backend", sp.StoreConfig().Backend()))
	}
	return sp.configStore
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.ConfigStore(ctx))
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) WinRecordRepo(ctx context.Context) repository.WinRecordRepository {
	if sp.winRepo == nil {
		sp.winRepo = win_repo.NewWinRecordRepository(sp.DBClient(ctx))
	}
	return sp.winRepo
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewUserService(sp.SlotCfg(), sp.UserRepo(ctx))
	}
	return sp.userServ
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.SlotCfg(), sp.UserRepo(ctx), sp.WinRecordRepo(ctx), sp.TXManager(ctx))
	}
	return sp.slotServ
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.UserService(ctx)})
	}
	return sp.userHand
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) LineCfg() config.LineBotConfig {
	if sp.lineCfg == nil {
		sp.lineCfg = env.NewLineBotConfig()
	}
	return sp.lineCfg
}

func (sp *ServiceProvider) BotService(ctx context.Context) service.BotService {
	if sp.botServ == nil {
		sp.botServ = bot.NewBotService(sp.SlotService(ctx), sp.LineCfg().PublicBaseURL())
	}
	return sp.botServ
}

func (sp *ServiceProvider) WebhookHandler(ctx context.Context) *webhookAPI.Handler {
	if sp.webhookHand == nil {
		sp.webhookHand = webhookAPI.NewHandler(webhookAPI.HandlerDeps{
			Bot:     sp.BotService(ctx),
			Replier: line.NewClient(sp.LineCfg().ChannelAccessToken()),
			Secret:  sp.LineCfg().ChannelSecret(),
		})
	}
	return sp.webhookHand
}

func (sp *ServiceProvider) AdminTokenCfg() config.AdminTokenConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminTokenConfig()
		if err != nil {
			panic("failed to get admin token config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) RateLimitCfg() config.RateLimitConfig {
	if sp.rateLimitCfg == nil {
		cfg, err := env.NewRateLimitConfig()
		if err != nil {
			panic("failed to get rate limit config: " + err.Error())
		}
		sp.rateLimitCfg = cfg
	}
	return sp.rateLimitCfg
}

func (sp *ServiceProvider) RateLimiter() *middleware.RateLimiter {
	if sp.rateLimiter == nil {
		cfg := sp.RateLimitCfg()
		sp.rateLimiter = middleware.NewRateLimiter(cfg.RequestsPerSecond(), cfg.Burst())
	}
	return sp.rateLimiter
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

		r.Use(middleware.RequestID)
		r.Use(middleware.AccessLog)
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Line-Signature", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", metrics.Handler())

		limiter := sp.RateLimiter()
		admin := middleware.AdminOnly(sp.AdminTokenCfg().SecretKey())

		gameHandler := sp.GameHandler(ctx)

		r.Route("/api", func(rr chi.Router) {
			// Local game endpoints
			rr.Route("/game/{player_id}", func(gr chi.Router) {
				gr.Get("/symbols", gameHandler.Symbols)
				gr.With(limiter.Handler).Post("/spin", gameHandler.Spin)
				gr.Post("/check", gameHandler.Check)
				gr.Post("/verify", gameHandler.Verify)
				gr.Get("/probabilities", gameHandler.Probabilities)
				gr.With(admin).Put("/probabilities", gameHandler.UpdateProbabilities)
				gr.Get("/stats", gameHandler.Stats)
				gr.With(admin).Post("/stats/reset", gameHandler.ResetStats)
				gr.Get("/history", gameHandler.History)
			})

			if !sp.NetworkedEnabled() {
				return
			}

			userHandler := sp.UserHandler(ctx)
			slotHandler := sp.SlotHandler(ctx)

			// Networked slot endpoints
			rr.Post("/users", userHandler.Create)
			rr.Get("/users", userHandler.List)
			rr.Get("/users/{user_id}", userHandler.Get)
			rr.Put("/users/{user_id}", userHandler.Update)
			rr.Delete("/users/{user_id}", userHandler.Delete)

			rr.With(limiter.Handler).Post("/spin", slotHandler.Spin)
			rr.Post("/verify_code", slotHandler.VerifyCode)
			rr.Get("/stats", slotHandler.Stats)
			rr.Get("/win_history", slotHandler.WinHistory)

			// LINE
			rr.Post("/webhook", sp.WebhookHandler(ctx).Webhook)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения, созданные провайдером
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			logger.Warn("redis close", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
