package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	pgdb "github.com/ogurasousui/benefit-ledger/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const depositColumns = `id, employee_id, amount::text, deposit_type, deposit_date, created_at`

// DepositRepository は PostgreSQL を利用した預入レコードの実装です。
type DepositRepository struct {
	pool pgdb.Queryer
}

// NewDepositRepository は DepositRepository を生成します。
func NewDepositRepository(pool pgdb.Queryer) *DepositRepository {
	return &DepositRepository{pool: pool}
}

// Append は預入を追記します。
func (r *DepositRepository) Append(ctx context.Context, d *deposit.Deposit) (*deposit.Deposit, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO deposits (employee_id, amount, deposit_type, deposit_date, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+depositColumns+`
    `, d.EmployeeID, d.Amount, string(d.Type), deposit.Day(d.Date), d.CreatedAt)

	created, err := scanDeposit(row)
	if err != nil {
		return nil, translateDepositPgError(err)
	}
	return created, nil
}

// ListByEmployee は社員の預入を預入日順に取得します。
func (r *DepositRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*deposit.Deposit, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+depositColumns+`
          FROM deposits
         WHERE employee_id = $1
         ORDER BY deposit_date, created_at, id
    `, employeeID)
	if err != nil {
		return nil, translateDepositPgError(err)
	}
	return collectDeposits(rows)
}

// ListByTypeAndDateRange は種別と預入日の範囲 (両端を含む) で預入を取得します。
func (r *DepositRepository) ListByTypeAndDateRange(ctx context.Context, t deposit.Type, from, to time.Time) ([]*deposit.Deposit, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+depositColumns+`
          FROM deposits
         WHERE deposit_type = $1
           AND deposit_date BETWEEN $2 AND $3
         ORDER BY deposit_date, created_at, id
    `, string(t), deposit.Day(from), deposit.Day(to))
	if err != nil {
		return nil, translateDepositPgError(err)
	}
	return collectDeposits(rows)
}

func collectDeposits(rows pgx.Rows) ([]*deposit.Deposit, error) {
	defer rows.Close()

	var deposits []*deposit.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, translateDepositPgError(err)
		}
		deposits = append(deposits, d)
	}

	if err := rows.Err(); err != nil {
		return nil, translateDepositPgError(err)
	}
	return deposits, nil
}

func scanDeposit(row pgx.Row) (*deposit.Deposit, error) {
	var (
		id, employeeID string
		amount         string
		depositType    string
		depositDate    time.Time
		createdAt      time.Time
	)

	if err := row.Scan(&id, &employeeID, &amount, &depositType, &depositDate, &createdAt); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}

	return &deposit.Deposit{
		ID:         id,
		EmployeeID: employeeID,
		Amount:     value,
		Type:       deposit.Type(depositType),
		Date:       deposit.Day(depositDate),
		CreatedAt:  createdAt,
	}, nil
}

func translateDepositPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode, invalidTextCode:
			return employee.ErrEmployeeNotFound
		}
	}
	return err
}
