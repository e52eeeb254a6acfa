package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

var companyRowColumns = []string{"id", "name", "email", "balance", "created_at", "updated_at"}

func TestScanCompany_Success(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()
	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 6 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "company-1"
		*(dest[1].(*string)) = "Tesla"
		*(dest[2].(*string)) = "tesla@example.com"
		*(dest[3].(*string)) = "99.5000"
		*(dest[4].(*time.Time)) = createdAt
		*(dest[5].(*time.Time)) = createdAt
		return nil
	}}

	c, err := scanCompany(row)
	if err != nil {
		t.Fatalf("scanCompany returned error: %v", err)
	}
	if !c.Balance.Equal(decimal.RequireFromString("99.5")) {
		t.Fatalf("unexpected balance: %s", c.Balance)
	}
}

func TestScanCompany_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanCompany(row)
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestTranslateCompanyPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translateCompanyPgError(pgErr), company.ErrEmailAlreadyExists) {
		t.Fatalf("expected email already exists error mapping")
	}

	otherErr := errors.New("random")
	if translateCompanyPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestCompanyRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies (name, email, password_hash, balance, created_at, updated_at)`)).
		WithArgs("Tesla", "tesla@example.com", "hash", pgxmock.AnyArg(), now, now).
		WillReturnRows(pgxmock.NewRows(companyRowColumns).
			AddRow("company-1", "Tesla", "tesla@example.com", "100.0000", now, now))

	created, err := repo.Create(context.Background(), &company.Company{
		Name:      "Tesla",
		Email:     "tesla@example.com",
		Balance:   decimal.NewFromInt(100),
		CreatedAt: now,
		UpdatedAt: now,
	}, "hash")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "company-1" || !created.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected company: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies`)).
		WithArgs("Tesla", "tesla@example.com", "hash", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = repo.Create(context.Background(), &company.Company{Name: "Tesla", Email: "tesla@example.com"}, "hash")
	if !errors.Is(err, company.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_FindByEmailForUpdate_LocksRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)FROM companies\s+WHERE email = \$1\s+FOR UPDATE`).
		WithArgs("tesla@example.com").
		WillReturnRows(pgxmock.NewRows(companyRowColumns).
			AddRow("company-1", "Tesla", "tesla@example.com", "10.0000", now, now))

	found, err := repo.FindByEmailForUpdate(context.Background(), "tesla@example.com")
	if err != nil {
		t.Fatalf("FindByEmailForUpdate returned error: %v", err)
	}
	if !found.Balance.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected balance: %s", found.Balance)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_FindByEmail_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs("missing@example.com").
		WillReturnRows(pgxmock.NewRows(companyRowColumns))

	_, err = repo.FindByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyRepository_UpdateBalance(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE companies`)).
		WithArgs(pgxmock.AnyArg(), now, "company-1").
		WillReturnRows(pgxmock.NewRows(companyRowColumns).
			AddRow("company-1", "Tesla", "tesla@example.com", "50.0000", now, now))

	updated, err := repo.UpdateBalance(context.Background(), "company-1", decimal.NewFromInt(50), now)
	if err != nil {
		t.Fatalf("UpdateBalance returned error: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected balance: %s", updated.Balance)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_List_WithNextToken(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(companyRowColumns).
		AddRow("company-1", "Tesla", "tesla@example.com", "100.0000", now, now).
		AddRow("company-2", "Addidas", "addidas@example.com", "150.0000", now, now).
		AddRow("company-3", "Nike", "nike@example.com", "10.0000", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at, id`)).
		WithArgs(3, 0).
		WillReturnRows(rows)

	companies, nextToken, err := repo.List(context.Background(), company.ListCompaniesFilter{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}

	if nextToken != "2" {
		t.Fatalf("expected next token '2', got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_FindCredential(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT password_hash FROM companies WHERE email = $1`)).
		WithArgs("tesla@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"password_hash"}).AddRow("$2a$10$hash"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT password_hash FROM companies WHERE email = $1`)).
		WithArgs("missing@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"password_hash"}))

	hash, err := repo.FindCredential(context.Background(), "tesla@example.com")
	if err != nil {
		t.Fatalf("FindCredential returned error: %v", err)
	}
	if hash != "$2a$10$hash" {
		t.Fatalf("unexpected hash: %s", hash)
	}

	if _, err := repo.FindCredential(context.Background(), "missing@example.com"); !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
