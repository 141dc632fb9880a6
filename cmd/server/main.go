package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tourism-reservation/config"
	"tourism-reservation/internal/cache"
	"tourism-reservation/internal/database"
	"tourism-reservation/internal/handler"
	"tourism-reservation/internal/middleware"
	"tourism-reservation/internal/notify"
	"tourism-reservation/internal/queue"
	"tourism-reservation/internal/repository"
	"tourism-reservation/internal/service"
	"tourism-reservation/internal/worker"
	"tourism-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("server")

	cfg := config.LoadConfig()
	if cfg.Auth.JWTSecret == "" && !cfg.Auth.DevMode {
		log.Fatal("JWT_SECRET must be set unless AUTH_DEV_MODE is enabled")
	}
	if cfg.Auth.DevMode {
		log.Warn("AUTH_DEV_MODE is enabled: unauthenticated requests run as the dev identity",
			zap.Int("dev_user_id", cfg.Auth.DevUserID),
			zap.String("dev_role", cfg.Auth.DevRole),
		)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Queue.Backend != "memory" || cfg.RateLimit.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ratingQueue, err := newRatingQueue(ctx, cfg.Queue, rdb)
	if err != nil {
		log.Fatal("Failed to initialize rating queue", zap.Error(err))
	}

	publisher := notify.NewNoopPublisher()
	if cfg.Broker.URL != "" {
		publisher = notify.NewAMQPPublisher(cfg.Broker)
	}
	defer publisher.Close()

	userRepo := repository.NewUserRepository(pool)
	placeRepo := repository.NewPlaceRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	promotionRepo := repository.NewPromotionRepository(pool)

	placeService := service.NewPlaceService(placeRepo, reviewRepo, eventRepo)
	eventService := service.NewEventService(eventRepo, placeRepo)
	reviewService := service.NewReviewService(reviewRepo, placeRepo, ratingQueue)
	userService := service.NewUserService(userRepo)
	promotionService := service.NewPromotionService(promotionRepo, placeRepo)
	reservationService := service.NewReservationService(pool, reservationRepo, eventRepo, placeRepo, publisher)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone, err := worker.NewRatingWorker(placeService, ratingQueue).Start(workerCtx)
	if err != nil {
		log.Fatal("Failed to start rating worker", zap.Error(err))
	}

	var limiter cache.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = cache.NewRedisRateLimiter(rdb, cfg.RateLimit)
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	redisPing := handler.PingFunc(func(ctx context.Context) error {
		if rdb == nil {
			return nil
		}
		return rdb.Ping(ctx).Err()
	})
	handler.NewHealthHandler(map[string]handler.Pinger{
		"postgres": pool,
		"redis":    redisPing,
	}).RegisterRoutes(&router.RouterGroup)

	auth := middleware.Authenticate(cfg.Auth)
	api := router.Group("/api/v1", middleware.RateLimit(limiter))
	handler.NewReservationHandler(reservationService).RegisterRoutes(api, auth)
	handler.NewPlaceHandler(placeService).RegisterRoutes(api, auth)
	handler.NewEventHandler(eventService).RegisterRoutes(api, auth)
	handler.NewReviewHandler(reviewService).RegisterRoutes(api, auth)
	handler.NewUserHandler(userService).RegisterRoutes(api, auth)
	handler.NewPromotionHandler(promotionService).RegisterRoutes(api, auth)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	stopWorker()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Rating worker did not stop in time")
	}
}

func newRatingQueue(ctx context.Context, cfg config.QueueConfig, rdb *redis.Client) (queue.RatingQueue, error) {
	if cfg.Backend == "memory" {
		return queue.NewMemoryRatingQueue(cfg.BufferSize, &queue.MemoryRetryConfig{
			RetryDelay:    cfg.RetryDelay,
			MaxRetryCount: cfg.MaxRetryCount,
		}), nil
	}
	return queue.NewRedisStreamRatingQueue(ctx, rdb, cfg.ConsumerID, nil)
}
