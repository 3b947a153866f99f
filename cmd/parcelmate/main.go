package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "charm.land/log/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nakamauwu/parcelmate/auth"
	"github.com/nakamauwu/parcelmate/cockroach"
	"github.com/nakamauwu/parcelmate/cockroach/migrator"
	"github.com/nakamauwu/parcelmate/config"
	"github.com/nakamauwu/parcelmate/mailing"
	parcelmateminio "github.com/nakamauwu/parcelmate/minio"
	"github.com/nakamauwu/parcelmate/pubsub"
	"github.com/nakamauwu/parcelmate/realtime"
	"github.com/nakamauwu/parcelmate/service"
	transporthttp "github.com/nakamauwu/parcelmate/transport/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := pgxpool.New(ctx, cfg.CockroachURL)
	if err != nil {
		return fmt.Errorf("open cockroach connection pool: %w", err)
	}

	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping cockroach: %w", err)
	}

	migrationStart := time.Now()
	infoLogger.Info("starting cockroach migrations")

	if err := migrator.Migrate(ctx, dbPool, cockroach.MigrationsFS); err != nil {
		return fmt.Errorf("migrate cockroach schema: %w", err)
	}

	infoLogger.Info("finished cockroach migrations", "took", time.Since(migrationStart))

	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return fmt.Errorf("create minio client: %w", err)
	}

	minioPublicURL, err := url.Parse(cfg.MinioPublicURL)
	if err != nil {
		return fmt.Errorf("parse minio public url: %w", err)
	}

	images := parcelmateminio.New(context.Background(), minioClient, minioPublicURL, cfg.CleanupTimeout)
	go func() {
		for err := range images.Errs() {
			errLogger.Error("minio error", "error", err)
		}
	}()

	bucketsStart := time.Now()
	infoLogger.Info("creating minio buckets")

	if err := images.CreateReadOnlyBucket(ctx, service.PostImagesBucket); err != nil {
		return fmt.Errorf("create minio bucket: %w", err)
	}

	infoLogger.Info("finished creating minio buckets", "took", time.Since(bucketsStart))

	var ps pubsub.PubSub = &pubsub.Local{}
	if cfg.NATSURL != "" {
		natsPubSub, err := pubsub.NewNATS(cfg.NATSURL)
		if err != nil {
			return err
		}

		defer func() {
			if err := natsPubSub.Close(); err != nil {
				errLogger.Error("could not close nats", "error", err)
			}
		}()

		ps = natsPubSub
	} else {
		infoLogger.Warn("no nats url, realtime messages stay inside this instance")
	}

	var mailer mailing.Sender = &mailing.Log{Logger: infoLogger}
	if cfg.ResendAPIKey != "" {
		mailer = mailing.NewResend(cfg.MailFrom, cfg.ResendAPIKey)
	}

	tokens, err := auth.NewCodec(cfg.TokenKey, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("create token codec: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := service.New(&service.Config{
		Store:             cockroach.New(dbPool),
		Images:            images,
		PubSub:            ps,
		Mailer:            mailer,
		Logger:            errLogger,
		Metrics:           service.NewMetrics(reg),
		BaseCtx:           context.Background(),
		BackgroundTimeout: cfg.BackgroundTimeout,
	})

	go func() {
		for err := range svc.Errs() {
			errLogger.Error("service error", "error", err)
		}
	}()

	hub := realtime.NewHub(ctx, svc, errLogger)
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "parcelmate",
		Name:      "realtime_clients",
		Help:      "Number of connected realtime clients.",
	}, func() float64 {
		return float64(hub.Len())
	}))

	handler := &transporthttp.Handler{
		Service:  svc,
		Tokens:   tokens,
		Hub:      hub,
		Logger:   errLogger,
		Gatherer: reg,
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	srvErrs := make(chan error, 1)
	go func() {
		infoLogger.Info("starting parcelmate server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
		srvErrs <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErrs:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start parcelmate server: %w", err)
		}
	case <-ctx.Done():
		infoLogger.Info("shutting down parcelmate server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			errLogger.Error("could not shutdown server", "error", err)
		}
	}

	return svc.Close()
}
