// Command ak-server starts the authkeeper gRPC server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/authkeeper/gen/go/authkeeper/v1"
	"github.com/and161185/authkeeper/internal/config"
	pkgcrypto "github.com/and161185/authkeeper/internal/crypto"
	"github.com/and161185/authkeeper/internal/limiter"
	"github.com/and161185/authkeeper/internal/logger"
	"github.com/and161185/authkeeper/internal/migrate"
	"github.com/and161185/authkeeper/internal/repository/postgres"
	grpcserver "github.com/and161185/authkeeper/internal/server/grpc"
	"github.com/and161185/authkeeper/internal/service"
	"github.com/and161185/authkeeper/internal/store"
	"github.com/and161185/authkeeper/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the AuthKeeper and AuthorizationBackend services.
func main() {
	configPath := flag.String("config", "", "YAML config file (optional, AUTHKEEPER_* env overrides)")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Server.Addr),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func run(cfg *config.Config, log *zap.Logger) error {
	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Postgres.DSN, log.Named("migrate")); err != nil {
		return err
	}

	db, err := postgres.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	signKey, err := pkgcrypto.DeriveSigningKey(cfg.Auth.SigningSecret)
	if err != nil {
		return err
	}
	tokens, err := token.NewManager(signKey, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	lim := limiter.NewPG(db.Pool, limiter.Policy{
		Window:      cfg.Limiter.Window,
		MaxFailures: cfg.Limiter.MaxFailures,
		BlockFor:    cfg.Limiter.BlockFor,
	})

	// Services
	authSvc := service.NewAuthService(
		postgres.NewUserRepo(db),
		postgres.NewSessionRepo(db),
		pkgcrypto.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens,
		lim,
		log.Named("auth"),
	)

	opts := []grpc.ServerOption{grpcserver.Chain(log.Named("grpc"), authSvc, cfg.Backend.APIKey)}
	if cfg.Server.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLSCert, cfg.Server.TLSKey)
		if err != nil {
			return fmt.Errorf("load TLS cert/key: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		log.Warn("TLS disabled: serving plaintext")
	}
	s := grpc.NewServer(opts...)

	pb.RegisterAuthKeeperServer(s, grpcserver.New(authSvc))

	if cfg.Backend.APIKey != "" {
		storeLog := log.Named("store")
		clients := store.NewClientStore(postgres.NewClientRepo(db), storeLog)
		consents := store.NewConsentStore(postgres.NewConsentRepo(db), clients, storeLog)
		authorizations := store.NewAuthorizationStore(postgres.NewAuthorizationRepo(db), clients, storeLog)
		pb.RegisterAuthorizationBackendServer(s, grpcserver.NewBackend(clients, consents, authorizations, authSvc))
	} else {
		log.Info("authorization backend disabled (backend.apiKey is empty)")
	}

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Server.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", cfg.Server.TLSCert != ""))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
		return nil
	case err := <-errCh:
		return err
	}
}
