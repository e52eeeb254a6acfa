package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/benefit-ledger/internal/adapters/events/kafka"
	"github.com/ogurasousui/benefit-ledger/internal/adapters/repository/memory"
	"github.com/ogurasousui/benefit-ledger/internal/adapters/repository/postgres"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/ledger"
	"github.com/ogurasousui/benefit-ledger/internal/jobs"
	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"github.com/ogurasousui/benefit-ledger/internal/platform/config"
	pg "github.com/ogurasousui/benefit-ledger/internal/platform/db/postgres"
	"github.com/ogurasousui/benefit-ledger/internal/platform/httpserver"
	"github.com/ogurasousui/benefit-ledger/internal/platform/logger"
	"github.com/ogurasousui/benefit-ledger/internal/platform/server"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// backend は選択したドライバーに応じたストア一式です。
type backend struct {
	repos       ledger.Repositories
	tx          ledger.TransactionManager
	credentials auth.CredentialStore
	deposits    jobs.DepositFinder
	pinger      httpserver.Pinger
	close       func()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr := logger.Initialize(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	if err := run(ctx, cfg, logr); err != nil {
		logr.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logr *slog.Logger) error {
	store, err := openBackend(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.close()

	var events deposit.EventPublisher
	if cfg.Events.Enabled() {
		publisher := kafka.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		defer func() {
			if err := publisher.Close(); err != nil {
				logr.Warn("failed to close event publisher", "error", err)
			}
		}()
		events = publisher
	}

	hasher := auth.BcryptHasher{Cost: bcrypt.DefaultCost}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authenticator := auth.NewAuthenticator(store.credentials, hasher, tokens)
	svc := ledger.NewService(store.repos, hasher, nil, store.tx, events)

	g, gctx := errgroup.WithContext(ctx)

	if events != nil {
		scheduler := jobs.NewScheduler(logr)
		notifier := jobs.NewExpiryNotifier(store.deposits, events, logr)
		if err := scheduler.RegisterExpiry(gctx, cfg.Jobs.ExpirySchedule, notifier); err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		logr.Info("event brokers not configured; deposit expiry notifications disabled")
	}

	grpcServer := server.New(cfg.Server.ListenAddr, svc, authenticator, tokens, logr)
	g.Go(func() error {
		logr.Info("gRPC server listening", "address", cfg.Server.ListenAddr, "driver", cfg.Database.Driver)
		return grpcServer.Run(gctx)
	})

	if cfg.Server.HTTPAddr != "" {
		probes := httpserver.New(cfg.Server.HTTPAddr, store.pinger, logr)
		g.Go(func() error {
			return probes.Run(gctx)
		})
	}

	return g.Wait()
}

func openBackend(ctx context.Context, cfg config.DatabaseConfig) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		store := memory.New()
		return &backend{
			repos: ledger.Repositories{
				Companies: store.Companies(),
				Employees: store.Employees(),
				Deposits:  store.Deposits(),
			},
			tx:          store.TransactionManager(),
			credentials: store.Companies(),
			deposits:    store.Deposits(),
			pinger:      store,
			close:       func() {},
		}, nil
	case config.DriverPostgres:
		pool, err := pg.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initialize database pool: %w", err)
		}
		companies := postgres.NewCompanyRepository(pool)
		deposits := postgres.NewDepositRepository(pool)
		return &backend{
			repos: ledger.Repositories{
				Companies: companies,
				Employees: postgres.NewEmployeeRepository(pool),
				Deposits:  deposits,
			},
			tx:          pg.NewTransactionManager(pool),
			credentials: companies,
			deposits:    deposits,
			pinger:      pool,
			close:       pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
