package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/benefit-ledger/internal/adapters/repository/postgres"
	"github.com/ogurasousui/benefit-ledger/internal/core/ledger"
	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"github.com/ogurasousui/benefit-ledger/internal/platform/config"
	pg "github.com/ogurasousui/benefit-ledger/internal/platform/db/postgres"
	"github.com/ogurasousui/benefit-ledger/internal/platform/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedCompany struct {
	Name     string
	Email    string
	Password string
	Balance  decimal.Decimal
	Employee string
}

var defaultSeeds = []seedCompany{
	{Name: "Tesla", Email: "tesla@wedoostore.com", Password: "John", Balance: decimal.NewFromInt(100), Employee: "John Doe"},
	{Name: "Addidas", Email: "addidas@wedoostore.com", Password: "James", Balance: decimal.NewFromInt(150), Employee: "James Smith"},
	{Name: "Nike", Email: "nike@wedoostore.com", Password: "Peter", Balance: decimal.NewFromInt(10), Employee: "Peter Parker"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("seeding requires the %q driver, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	logr := logger.Initialize(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer pool.Close()

	svc := ledger.NewService(ledger.Repositories{
		Companies: postgres.NewCompanyRepository(pool),
		Employees: postgres.NewEmployeeRepository(pool),
		Deposits:  postgres.NewDepositRepository(pool),
	}, auth.BcryptHasher{Cost: bcrypt.DefaultCost}, nil, pg.NewTransactionManager(pool), nil)

	created, err := seed(ctx, svc, defaultSeeds, logr)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logr.Info("seed completed", "created", created)
}

// seed は会社と社員を登録し、新規に登録した会社数を返します。登録済みの会社はスキップします。
func seed(ctx context.Context, svc ledger.UseCase, seeds []seedCompany, logr *slog.Logger) (int, error) {
	created := 0
	for _, s := range seeds {
		c, err := svc.RegisterCompany(ctx, ledger.RegisterCompanyInput{
			Name:           s.Name,
			Email:          s.Email,
			Password:       s.Password,
			InitialBalance: s.Balance,
		})
		if errors.Is(err, ledger.ErrDuplicateCompany) {
			logr.Info("company already seeded", "email", s.Email)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("register %s: %w", s.Name, err)
		}

		if s.Employee != "" {
			if _, err := svc.EnrollEmployee(ctx, ledger.EnrollEmployeeInput{CompanyEmail: c.Email, Name: s.Employee}); err != nil {
				return created, fmt.Errorf("enroll %s at %s: %w", s.Employee, s.Name, err)
			}
		}

		logr.Info("company seeded", "name", c.Name, "balance", c.Balance.String())
		created++
	}
	return created, nil
}
