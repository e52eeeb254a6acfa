package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	pgdb "github.com/ogurasousui/benefit-ledger/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	invalidTextCode         = "22P02"
)

const companyColumns = `id, name, email, balance::text, created_at, updated_at`

// CompanyRepository は PostgreSQL を利用した会社永続化の実装です。
type CompanyRepository struct {
	pool pgdb.Queryer
}

// NewCompanyRepository は CompanyRepository を生成します。
func NewCompanyRepository(pool pgdb.Queryer) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Create は会社を新規作成します。
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company, passwordHash string) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO companies (name, email, password_hash, balance, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+companyColumns+`
    `, c.Name, c.Email, passwordHash, c.Balance, c.CreatedAt, c.UpdatedAt)

	created, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return created, nil
}

// FindByEmail はメールアドレスで会社を取得します。
func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+companyColumns+`
          FROM companies
         WHERE email = $1
         LIMIT 1
    `, email)

	found, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return found, nil
}

// FindByEmailForUpdate は会社行を FOR UPDATE でロックして取得します。トランザクション内で呼び出します。
func (r *CompanyRepository) FindByEmailForUpdate(ctx context.Context, email string) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+companyColumns+`
          FROM companies
         WHERE email = $1
         FOR UPDATE
    `, email)

	found, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return found, nil
}

// UpdateBalance は会社の拠出残高を更新します。
func (r *CompanyRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE companies
           SET balance = $1,
               updated_at = $2
         WHERE id = $3
        RETURNING `+companyColumns+`
    `, balance, updatedAt, id)

	updated, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return updated, nil
}

// List は会社の一覧を登録順に取得します。
func (r *CompanyRepository) List(ctx context.Context, filter company.ListCompaniesFilter) ([]*company.Company, string, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+companyColumns+`
          FROM companies
         ORDER BY created_at, id
         LIMIT $1
        OFFSET $2
    `, filter.Limit+1, filter.Offset)
	if err != nil {
		return nil, "", translateCompanyPgError(err)
	}
	defer rows.Close()

	var companies []*company.Company
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, "", translateCompanyPgError(err)
		}
		companies = append(companies, found)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateCompanyPgError(err)
	}

	var nextToken string
	if len(companies) > filter.Limit {
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
		companies = companies[:filter.Limit]
	}

	return companies, nextToken, nil
}

// FindCredential はメールアドレスに対応するパスワードハッシュを取得します。
func (r *CompanyRepository) FindCredential(ctx context.Context, email string) (string, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	var hash string
	if err := exec.QueryRow(ctx, `SELECT password_hash FROM companies WHERE email = $1`, email).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", company.ErrCompanyNotFound
		}
		return "", err
	}
	return hash, nil
}

func scanCompany(row pgx.Row) (*company.Company, error) {
	var (
		id, name, email      string
		balance              string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &email, &balance, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}

	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}

	return &company.Company{
		ID:        id,
		Name:      name,
		Email:     email,
		Balance:   amount,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func translateCompanyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return company.ErrEmailAlreadyExists
		case invalidTextCode:
			return company.ErrCompanyNotFound
		}
	}
	return err
}
