package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/client/centrifugo"
	"github.com/s21platform/dialog-service/internal/client/realtime"
	"github.com/s21platform/dialog-service/internal/client/storage"
	"github.com/s21platform/dialog-service/internal/client/user"
	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/databus/notification"
	api "github.com/s21platform/dialog-service/internal/generated"
	"github.com/s21platform/dialog-service/internal/infra"
	"github.com/s21platform/dialog-service/internal/pkg/jwt"
	"github.com/s21platform/dialog-service/internal/pkg/tx"
	"github.com/s21platform/dialog-service/internal/pkg/validator"
	db "github.com/s21platform/dialog-service/internal/repository/postgres"
	"github.com/s21platform/dialog-service/internal/rest"
	"github.com/s21platform/dialog-service/internal/service/session"
)

// eventSource adapts the realtime client to the session layer contract.
type eventSource struct {
	client *realtime.Client
}

func (e eventSource) Subscribe(channel string) (session.Subscription, error) {
	return e.client.Subscribe(channel)
}

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	realtimeClient := realtime.New(cfg, logger)
	storageClient := storage.New(cfg)
	userClient := user.New(cfg)

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	producerConfig := kafkalib.DefaultProducerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.NotificationTopic)
	notifier := notification.New(kafkalib.NewProducer(producerConfig))

	registry := session.NewRegistry(session.Deps{
		Store:        dbRepo,
		Events:       eventSource{client: realtimeClient},
		Attachments:  session.NewAttachmentPipeline(storageClient, cfg.Storage.Bucket),
		Publisher:    centrifugeClient,
		Notifier:     notifier,
		Users:        userClient,
		Logger:       logger,
		QuotaLimit:   cfg.Dialog.DailyLimit,
		QuotaWindow:  cfg.Dialog.QuotaWindow,
		TypingTTL:    cfg.Dialog.TypingTTL,
		ExpiryWindow: cfg.Dialog.ExpiryWindow,
	})
	defer registry.CloseAll()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.AuthInterceptorGRPC,
			infra.LoggerGRPC(logger),
			tx.TxMiddlewareGRPC(dbRepo),
		),
	)
	grpc_health_v1.RegisterHealthServer(grpcServer, health.NewServer())

	handler := rest.New(registry, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
