package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/casekeeper-server/internal/api/grpc/context"
	"github.com/dtroode/casekeeper-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/casekeeper-server/internal/api/grpc/server"
	"github.com/dtroode/casekeeper-server/internal/config"
	"github.com/dtroode/casekeeper-server/internal/directory"
	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/notification"
	"github.com/dtroode/casekeeper-server/internal/repository/postgres"
	"github.com/dtroode/casekeeper-server/internal/server"
	"github.com/dtroode/casekeeper-server/internal/service"
	storage "github.com/dtroode/casekeeper-server/internal/storage/minio"
	"github.com/dtroode/casekeeper-server/internal/telemetry"
	"github.com/dtroode/casekeeper-server/internal/token"
	"github.com/dtroode/casekeeper-server/internal/worker"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logAppVersion()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel.Enabled, cfg.OTel.Endpoint, cfg.OTel.ServiceName)
	if err != nil {
		logger.Fatal("failed to initialize tracing", "error", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}()

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	redisClient := notification.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis is not reachable yet, notifications will be retried", "error", err)
	}

	users := directory.NewCachedUsers(postgres.NewUserRepository(db), cfg.Directory.CacheTTL)
	lawyers := directory.NewCachedLawyers(postgres.NewLawyerRepository(db), cfg.Directory.CacheTTL)

	caseService := service.NewCase(
		postgres.NewCaseRepository(db),
		users,
		lawyers,
		storageClient,
		service.Config{
			InviteTTL:        cfg.Workflow.InviteTTL,
			MaxWriteAttempts: cfg.Workflow.MaxWriteAttempts,
			SnapshotURLTTL:   cfg.Storage.PresignTTL,
		},
		logger,
	)
	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret), logger)

	relay := worker.NewRelay(
		postgres.NewOutboxRepository(db),
		notification.NewRenderer(users, lawyers),
		notification.NewRedisNotifier(redisClient, cfg.Redis.Channel),
		storageClient,
		worker.Config{
			PollInterval:  cfg.Relay.PollInterval,
			BatchSize:     cfg.Relay.BatchSize,
			LeaseTTL:      cfg.Relay.LeaseTTL,
			MaxAttempts:   cfg.Relay.MaxAttempts,
			RetryBackoff:  cfg.Relay.RetryBackoff,
			RetryMaxDelay: cfg.Relay.RetryMaxDelay,
		},
		logger,
	)

	r := router.New(caseService, tokenService, grpcctx.NewManager(), logger)
	s := r.Register()
	reflection.Register(s)
	srv := grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server on", "address", srv.Address())
		return srv.Start(sl)
	})
	g.Go(func() error {
		return relay.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", srv.Address())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
