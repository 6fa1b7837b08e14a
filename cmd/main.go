package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/postomat-service/docs"
	"github.com/SergeyBogomolovv/postomat-service/internal/app"
	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/config"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/internal/handler"
	"github.com/SergeyBogomolovv/postomat-service/internal/jobs"
	"github.com/SergeyBogomolovv/postomat-service/internal/notify"
	"github.com/SergeyBogomolovv/postomat-service/internal/postgres"
	"github.com/SergeyBogomolovv/postomat-service/internal/repo"
	"github.com/SergeyBogomolovv/postomat-service/internal/service"
	"github.com/SergeyBogomolovv/postomat-service/pkg/cache"
	"github.com/SergeyBogomolovv/postomat-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Postomat Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	store := repo.NewPostgresRepo(db)
	// Гонки за ячейки закрываются блокировками FOR UPDATE, хватает READ COMMITTED
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	lockerCache := cache.NewLRUCache[int64, entities.Locker](conf.Cache.Capacity, conf.Cache.TTL)
	clk := clock.NewSystem()
	// Доставка уведомлений не должна задерживать ответ курьеру или клиенту
	notifier := notify.NewDispatcher(logger, newNotifier(logger, conf), conf.Notifications)

	handoffService := service.NewHandoffService(logger, txManager, store, store, notifier, clk)
	slotService := service.NewSlotService(logger, txManager, store, lockerCache, clk)
	purchaseService := service.NewPurchaseService(logger, store, notifier, clk)
	sweeperService := service.NewSweeperService(logger, store, notifier, clk, conf.Jobs.ReminderAfter)

	jobManager := jobs.NewJobManager(sweeperService, conf.Jobs, logger)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, purchaseService)
	httpHandler := handler.NewHTTPHandler(logger, handoffService, slotService, purchaseService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(lockerCache, jobManager, notifier)
	app.SetClosers(jobManager, notifier)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Без Kafka уведомления только пишутся в лог
func newNotifier(logger *slog.Logger, conf config.Config) notify.Sender {
	if conf.Notifications.Enabled {
		return notify.NewKafkaNotifier(logger, conf.Kafka)
	}
	return notify.NewNoop(logger)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
