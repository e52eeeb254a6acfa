//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/benefit-ledger/internal/adapters/repository/postgres"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/ledger"
	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"github.com/ogurasousui/benefit-ledger/internal/platform/config"
	pg "github.com/ogurasousui/benefit-ledger/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const migrationsDir = "../assets/migrations"

func TestLedgerIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		t.Skipf("integration suite requires the postgres driver, got %q", cfg.Database.Driver)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	companies := repo.NewCompanyRepository(pool)
	svc := ledger.NewService(ledger.Repositories{
		Companies: companies,
		Employees: repo.NewEmployeeRepository(pool),
		Deposits:  repo.NewDepositRepository(pool),
	}, auth.BcryptHasher{Cost: bcrypt.MinCost}, stubClock{now: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)}, pg.NewTransactionManager(pool), nil)

	created, err := svc.RegisterCompany(ctx, ledger.RegisterCompanyInput{
		Name:           "Tesla",
		Email:          "tesla@example.com",
		Password:       "s3cret",
		InitialBalance: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("RegisterCompany error: %v", err)
	}

	if _, err := svc.RegisterCompany(ctx, ledger.RegisterCompanyInput{
		Name:     "Tesla",
		Email:    "tesla@example.com",
		Password: "s3cret",
	}); !errors.Is(err, ledger.ErrDuplicateCompany) {
		t.Fatalf("expected ErrDuplicateCompany, got %v", err)
	}

	authenticator := auth.NewAuthenticator(companies, auth.BcryptHasher{Cost: bcrypt.MinCost}, auth.NewTokenManager("secret", "benefit-ledger", time.Hour))
	if _, err := authenticator.Authenticate(ctx, created.Email, "s3cret"); err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}

	emp, err := svc.EnrollEmployee(ctx, ledger.EnrollEmployeeInput{CompanyEmail: created.Email, Name: "Elon"})
	if err != nil {
		t.Fatalf("EnrollEmployee error: %v", err)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.FundEmployee(ctx, ledger.FundEmployeeInput{
				CompanyEmail: created.Email,
				EmployeeID:   emp.ID,
				Amount:       decimal.NewFromInt(10),
				Type:         deposit.TypeGift,
				Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ledger.ErrInsufficientFunds) {
				t.Errorf("unexpected FundEmployee error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 10 {
		t.Fatalf("expected exactly 10 successful deposits, got %d", succeeded)
	}

	company, err := svc.GetCompany(ctx, ledger.GetCompanyInput{CompanyEmail: created.Email})
	if err != nil {
		t.Fatalf("GetCompany error: %v", err)
	}
	if !company.Balance.IsZero() {
		t.Fatalf("expected company balance 0, got %s", company.Balance)
	}

	balance, err := svc.GetActiveBalance(ctx, ledger.GetActiveBalanceInput{CompanyEmail: created.Email, EmployeeID: emp.ID})
	if err != nil {
		t.Fatalf("GetActiveBalance error: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected active balance 100, got %s", balance.Amount)
	}

	later := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	balance, err = svc.GetActiveBalance(ctx, ledger.GetActiveBalanceInput{CompanyEmail: created.Email, EmployeeID: emp.ID, ReferenceDate: &later})
	if err != nil {
		t.Fatalf("GetActiveBalance error: %v", err)
	}
	if !balance.Amount.IsZero() {
		t.Fatalf("expected lapsed balance 0, got %s", balance.Amount)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
