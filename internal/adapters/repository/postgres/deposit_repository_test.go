package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

var depositRowColumns = []string{"id", "employee_id", "amount", "deposit_type", "deposit_date", "created_at"}

func TestDepositRepository_Append(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDepositRepository(mock)
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deposits (employee_id, amount, deposit_type, deposit_date, created_at)`)).
		WithArgs("emp-1", pgxmock.AnyArg(), "MEAL", day, now).
		WillReturnRows(pgxmock.NewRows(depositRowColumns).AddRow("dep-1", "emp-1", "12.5000", "MEAL", day, now))

	created, err := repo.Append(context.Background(), &deposit.Deposit{
		EmployeeID: "emp-1",
		Amount:     decimal.RequireFromString("12.5"),
		Type:       deposit.TypeMeal,
		Date:       now,
		CreatedAt:  now,
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if created.ID != "dep-1" || !created.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected deposit: %+v", created)
	}
	if !created.Date.Equal(day) {
		t.Fatalf("expected deposit date %s, got %s", day, created.Date)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDepositRepository_Append_UnknownEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDepositRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deposits`)).
		WithArgs("emp-x", pgxmock.AnyArg(), "GIFT", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	_, err = repo.Append(context.Background(), &deposit.Deposit{
		EmployeeID: "emp-x",
		Amount:     decimal.NewFromInt(1),
		Type:       deposit.TypeGift,
		Date:       time.Now().UTC(),
	})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDepositRepository_ListByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDepositRepository(mock)
	now := time.Now().UTC()
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE employee_id = $1`)).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows(depositRowColumns).
			AddRow("dep-1", "emp-1", "10.0000", "GIFT", day, now).
			AddRow("dep-2", "emp-1", "0.0001", "MEAL", day, now))

	deposits, err := repo.ListByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}
	if len(deposits) != 2 {
		t.Fatalf("expected 2 deposits, got %d", len(deposits))
	}
	if deposits[1].Type != deposit.TypeMeal || deposits[1].Amount.String() != "0.0001" {
		t.Fatalf("unexpected deposit: %+v", deposits[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDepositRepository_ListByTypeAndDateRange(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDepositRepository(mock)
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`AND deposit_date BETWEEN $2 AND $3`)).
		WithArgs("MEAL", from, to).
		WillReturnRows(pgxmock.NewRows(depositRowColumns))

	deposits, err := repo.ListByTypeAndDateRange(context.Background(), deposit.TypeMeal, from.Add(5*time.Hour), to)
	if err != nil {
		t.Fatalf("ListByTypeAndDateRange returned error: %v", err)
	}
	if len(deposits) != 0 {
		t.Fatalf("expected no deposits, got %d", len(deposits))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
