package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	pgdb "github.com/ogurasousui/benefit-ledger/internal/platform/db/postgres"
)

const employeeColumns = `id, company_id, name, created_at, updated_at`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (company_id, name, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING `+employeeColumns+`
    `, e.CompanyID, e.Name, e.CreatedAt, e.UpdatedAt)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// FindByIDAndCompany は会社に所属する社員を取得します。
func (r *EmployeeRepository) FindByIDAndCompany(ctx context.Context, id, companyID string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1 AND company_id = $2
         LIMIT 1
    `, id, companyID)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// ListByCompany は会社の社員一覧を登録順に取得します。
func (r *EmployeeRepository) ListByCompany(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	limitWithBuffer := filter.Limit + 1

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE company_id = $1
         ORDER BY created_at, id
         LIMIT $2
        OFFSET $3
    `, filter.CompanyID, limitWithBuffer, filter.Offset)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0, filter.Limit)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, "", translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateEmployeePgError(err)
	}

	var nextToken string
	if len(employees) == limitWithBuffer {
		employees = employees[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return employees, nextToken, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id, companyID, name  string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &companyID, &name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:        id,
		CompanyID: companyID,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return company.ErrCompanyNotFound
		case invalidTextCode:
			return employee.ErrEmployeeNotFound
		}
	}

	return err
}
