package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/centrominero/gil/internal/cache"
	"github.com/centrominero/gil/internal/config"
	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/kafka"
	"github.com/centrominero/gil/internal/logger"
	"github.com/centrominero/gil/internal/repository/postgresql"
	"github.com/centrominero/gil/internal/server"
	"github.com/centrominero/gil/internal/workflow"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	db.InitAdmin(database)

	equipmentRepo := postgresql.NewEquipmentRepo(database)
	loanRepo := postgresql.NewLoanRepo(database)
	maintRepo := postgresql.NewMaintenanceRepo(database)
	alertRepo := postgresql.NewAlertRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	equipmentCache := cache.NewEquipmentCache(equipmentRepo, log)
	if err := equipmentCache.LoadInitialData(ctx); err != nil {
		log.Fatal("equipment cache load failed", zap.Error(err))
	}

	engine := workflow.NewEngine(
		database,
		equipmentRepo,
		loanRepo,
		maintRepo,
		alertRepo,
		outboxRepo,
		workflow.SystemClock(),
		workflow.Config{
			LeadWindowDays: cfg.LeadWindowDays,
			RetryAttempts:  cfg.RetryAttempts,
			RetryBackoff:   cfg.RetryBackoff,
			AlertTopic:     cfg.AlertTopic,
		},
		log,
	).WithCache(equipmentCache)

	producer := kafka.NewWriterProducer(cfg.KafkaBrokers, log)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.OutboxPoll,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, log)

	srv := server.New(engine, userRepo, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})

	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SchedulerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := engine.RunPass(gctx); err != nil {
					log.Warn("scheduler pass failed", zap.Error(err))
				}
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("service stopped with error", zap.Error(err))
	}
	log.Info("service stopped")
}
