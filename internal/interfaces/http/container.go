// Package http wires the console API together: infrastructure,
// repositories, use cases, handlers, and routes.
package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	lookupUsecases "sanad/internal/application/lookup/usecases"
	supervisorUsecases "sanad/internal/application/supervisor/usecases"
	ticketUsecases "sanad/internal/application/ticket/usecases"
	"sanad/internal/infrastructure/cache"
	"sanad/internal/infrastructure/config"
	"sanad/internal/infrastructure/repository"
	lookupHandlers "sanad/internal/interfaces/http/handlers/lookup"
	supervisorHandlers "sanad/internal/interfaces/http/handlers/supervisor"
	ticketHandlers "sanad/internal/interfaces/http/handlers/ticket"
	"sanad/internal/interfaces/http/middleware"
	"sanad/internal/interfaces/http/routes"
	"sanad/internal/shared/db"
	"sanad/internal/shared/logger"
)

// Container holds the wired application graph and owns the connections
// it opens.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
}

func NewContainer(cfg *config.Config, gdb *gorm.DB, log logger.Interface) *Container {
	c := &Container{cfg: cfg, log: log}

	c.redis = initRedis(cfg, log)

	txMgr := db.NewTransactionManager(gdb)

	ticketRepo := repository.NewTicketRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	reactionRepo := repository.NewReactionRepository(gdb)
	supervisorRepo := repository.NewSupervisorRepository(gdb)
	lookupRepo := repository.NewLookupRepository(gdb)

	var lookupCache *cache.LookupCache
	if c.redis != nil {
		ttl := time.Duration(cfg.Lookup.CacheTTLMinutes) * time.Minute
		lookupCache = cache.NewLookupCache(c.redis, ttl)
	}

	ticketHandler := ticketHandlers.NewHandler(
		ticketUsecases.NewListTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, log),
		ticketUsecases.NewUpdateStatusUseCase(ticketRepo, txMgr, log),
		ticketUsecases.NewAddCommentUseCase(ticketRepo, commentRepo, txMgr, log),
		ticketUsecases.NewToggleReactionUseCase(commentRepo, reactionRepo, log),
	)

	supervisorHandler := supervisorHandlers.NewHandler(
		supervisorUsecases.NewUpsertSupervisorUseCase(supervisorRepo, txMgr, log),
		supervisorUsecases.NewUpdateSupervisorStatusUseCase(supervisorRepo, log),
		supervisorUsecases.NewGetSupervisorUseCase(supervisorRepo, log),
		supervisorUsecases.NewListSupervisorsUseCase(supervisorRepo, log),
	)

	var queryCache lookupUsecases.Cache
	var invalidator lookupUsecases.CacheInvalidator
	if lookupCache != nil {
		queryCache = lookupCache
		invalidator = lookupCache
	}
	lookupHandler := lookupHandlers.NewHandler(
		lookupUsecases.NewQueryLookupUseCase(lookupRepo, queryCache, log),
		lookupUsecases.NewUpsertLookupUseCase(lookupRepo, invalidator, log),
	)

	c.engine = buildEngine(cfg, log, &routes.ConsoleRouteConfig{
		TicketHandler:     ticketHandler,
		SupervisorHandler: supervisorHandler,
		LookupHandler:     lookupHandler,
	})

	return c
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections the container opened.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

// initRedis connects to Redis; the lookup cache is optional, so a
// failed connection degrades to direct database reads.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, lookup caching disabled", "error", err)
		_ = client.Close()
		return nil
	}

	log.Infow("redis connection established")
	return client
}

func buildEngine(cfg *config.Config, log logger.Interface, routeCfg *routes.ConsoleRouteConfig) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupConsoleRoutes(engine, cfg.Server.BasePath, routeCfg)

	return engine
}
