package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/config"
	dbpkg "github.com/miamente/miamente-sub002/internal/db"
	"github.com/miamente/miamente-sub002/internal/logger"
	"github.com/miamente/miamente-sub002/internal/middleware"
	"github.com/miamente/miamente-sub002/internal/notify"
	"github.com/miamente/miamente-sub002/internal/routes"
	"github.com/miamente/miamente-sub002/internal/sweeper"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	var publisher notify.Publisher
	if cfg.KafkaBroker != "" {
		publisher = notify.NewKafkaPublisher(cfg.KafkaBroker, cfg.EmailIntentTopic)
	} else {
		publisher = notify.NewLogPublisher(log)
	}
	notifier := notify.NewDispatcher(publisher, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cleanupUC := routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Log:      log,
		Redis:    redisClient,
		Notifier: notifier,
	})

	sw := sweeper.New(cleanupUC, log, cfg.SweepCronSpec, cfg.SweepBatchSize)
	if err := sw.Start(); err != nil {
		log.Fatal("failed to start sweeper", zap.Error(err))
	}
	defer sw.Stop()

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
