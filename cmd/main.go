package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/mercadopago/internal/api"
	"github.com/samandr77/microservices/mercadopago/internal/api/events"
	"github.com/samandr77/microservices/mercadopago/internal/clients/mercadopago"
	"github.com/samandr77/microservices/mercadopago/internal/credentials"
	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/repository"
	"github.com/samandr77/microservices/mercadopago/internal/service"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
	"github.com/samandr77/microservices/mercadopago/pkg/broker"
	"github.com/samandr77/microservices/mercadopago/pkg/config"
	"github.com/samandr77/microservices/mercadopago/pkg/job"
	"github.com/samandr77/microservices/mercadopago/pkg/logger"
	"github.com/samandr77/microservices/mercadopago/pkg/postgres"
)

const (
	ReadTimeout     = 3 * time.Second
	WriteTimeout    = 15 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(ctx, cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	store := settings.Layered{repo, defaultSettings(cfg)}

	factory := mercadopago.NewFactory(cfg.MercadoPago)
	resolver := credentials.NewResolver(store)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.OrderUpdatedTopic, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	s := service.New(
		repo,
		store,
		credentials.NewGateway(resolver, factory),
		credentials.NewValidator(factory),
		resolver,
		producer,
		cfg.Kafka.SupportEmail,
	)

	jobs := job.NewService().
		RegisterJob("check mercadopago credentials", cfg.Jobs.CredentialsCheckInterval, s.CheckCredentials)
	jobs.Start(ctx)

	eventHandler := events.NewEventHandler(s)

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PaymentsTopic).
		Handle(cfg.Kafka.PaymentsTopic, eventHandler.OnPaymentUpdated).
		Consume(ctx)

	router := api.NewRouter(api.NewHandler(s), api.NewMiddleware(cfg.HTTP.AdminToken))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		consumer.Close()
		jobs.Stop()
	}()

	wg.Wait()
}

// defaultSettings exposes the environment configuration as the default scope of the store settings.
func defaultSettings(cfg config.Config) *settings.Static {
	mp := cfg.MercadoPago
	st := cfg.OrderStatus
	scope := entity.DefaultScope

	return settings.NewStatic().
		Set(settings.PathAccessToken, scope, mp.AccessToken).
		Set(settings.PathPublicKey, scope, mp.PublicKey).
		Set(settings.PathClientID, scope, mp.ClientID).
		Set(settings.PathClientSecret, scope, mp.ClientSecret).
		Set(settings.PathSandboxMode, scope, mp.SandboxMode).
		Set(settings.PathOrderStatusApproved, scope, st.Approved).
		Set(settings.PathOrderStatusRefunded, scope, st.Refunded).
		Set(settings.PathOrderStatusInMediation, scope, st.InMediation).
		Set(settings.PathOrderStatusCancelled, scope, st.Cancelled).
		Set(settings.PathOrderStatusRejected, scope, st.Rejected).
		Set(settings.PathOrderStatusChargeback, scope, st.Chargeback).
		Set(settings.PathOrderStatusInProcess, scope, st.InProcess)
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
