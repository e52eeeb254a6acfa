package memory

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	"github.com/shopspring/decimal"
)

// CompanyRepository はメモリ上の会社リポジトリです。
type CompanyRepository struct {
	store *Store
}

// Create は会社を保存します。
func (r *CompanyRepository) Create(_ context.Context, c *company.Company, passwordHash string) (*company.Company, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.companyEmails[c.Email]; exists {
		return nil, company.ErrEmailAlreadyExists
	}

	clone := *c
	clone.ID = uuid.NewString()
	r.store.data.companies[clone.ID] = &clone
	r.store.data.credentials[clone.ID] = passwordHash
	r.store.data.companyEmails[clone.Email] = clone.ID
	r.store.data.companyOrder = append(r.store.data.companyOrder, clone.ID)

	out := clone
	return &out, nil
}

// FindByEmail はメールアドレスで会社を取得します。
func (r *CompanyRepository) FindByEmail(_ context.Context, email string) (*company.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.data.companyEmails[email]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	out := *r.store.data.companies[id]
	return &out, nil
}

// FindByEmailForUpdate は FindByEmail と同じです。書き込みの排他は TransactionManager が担います。
func (r *CompanyRepository) FindByEmailForUpdate(ctx context.Context, email string) (*company.Company, error) {
	return r.FindByEmail(ctx, email)
}

// UpdateBalance は会社の拠出残高を更新します。
func (r *CompanyRepository) UpdateBalance(_ context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (*company.Company, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.data.companies[id]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	updated := *existing
	updated.Balance = balance
	updated.UpdatedAt = updatedAt
	r.store.data.companies[id] = &updated

	out := updated
	return &out, nil
}

// List は登録順に会社を返します。
func (r *CompanyRepository) List(_ context.Context, filter company.ListCompaniesFilter) ([]*company.Company, string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids, next := page(r.store.data.companyOrder, filter.Limit, filter.Offset)
	companies := make([]*company.Company, 0, len(ids))
	for _, id := range ids {
		c := *r.store.data.companies[id]
		companies = append(companies, &c)
	}
	return companies, nextToken(next), nil
}

// FindCredential はメールアドレスに対応するパスワードハッシュを返します。
func (r *CompanyRepository) FindCredential(_ context.Context, email string) (string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.data.companyEmails[email]
	if !ok {
		return "", company.ErrCompanyNotFound
	}
	return r.store.data.credentials[id], nil
}

// EmployeeRepository はメモリ上の社員リポジトリです。
type EmployeeRepository struct {
	store *Store
}

// Create は社員を保存します。所属会社が存在しない場合は company.ErrCompanyNotFound です。
func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.data.companies[e.CompanyID]; !ok {
		return nil, company.ErrCompanyNotFound
	}

	clone := *e
	clone.ID = uuid.NewString()
	r.store.data.employees[clone.ID] = &clone
	r.store.data.employeesByOwner[clone.CompanyID] = append(r.store.data.employeesByOwner[clone.CompanyID], clone.ID)

	out := clone
	return &out, nil
}

// FindByIDAndCompany は会社に所属する社員を取得します。
func (r *EmployeeRepository) FindByIDAndCompany(_ context.Context, id, companyID string) (*employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.data.employees[id]
	if !ok || e.CompanyID != companyID {
		return nil, employee.ErrEmployeeNotFound
	}
	out := *e
	return &out, nil
}

// ListByCompany は会社の社員を登録順に返します。
func (r *EmployeeRepository) ListByCompany(_ context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids, next := page(r.store.data.employeesByOwner[filter.CompanyID], filter.Limit, filter.Offset)
	employees := make([]*employee.Employee, 0, len(ids))
	for _, id := range ids {
		e := *r.store.data.employees[id]
		employees = append(employees, &e)
	}
	return employees, nextToken(next), nil
}

// DepositRepository はメモリ上の預入リポジトリです。
type DepositRepository struct {
	store *Store
}

// Append は預入を追記します。社員が存在しない場合は employee.ErrEmployeeNotFound です。
func (r *DepositRepository) Append(_ context.Context, d *deposit.Deposit) (*deposit.Deposit, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.data.employees[d.EmployeeID]; !ok {
		return nil, employee.ErrEmployeeNotFound
	}

	clone := *d
	clone.ID = uuid.NewString()
	clone.Date = deposit.Day(clone.Date)
	r.store.data.deposits[clone.ID] = &clone
	r.store.data.depositsByEmployee[clone.EmployeeID] = append(r.store.data.depositsByEmployee[clone.EmployeeID], clone.ID)

	out := clone
	return &out, nil
}

// ListByEmployee は社員の預入を預入日順に返します。
func (r *DepositRepository) ListByEmployee(_ context.Context, employeeID string) ([]*deposit.Deposit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := r.store.data.depositsByEmployee[employeeID]
	deposits := make([]*deposit.Deposit, 0, len(ids))
	for _, id := range ids {
		d := *r.store.data.deposits[id]
		deposits = append(deposits, &d)
	}
	sortDeposits(deposits)
	return deposits, nil
}

// ListByTypeAndDateRange は種別と預入日の範囲 (両端を含む) で預入を返します。
func (r *DepositRepository) ListByTypeAndDateRange(_ context.Context, t deposit.Type, from, to time.Time) ([]*deposit.Deposit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from, to = deposit.Day(from), deposit.Day(to)
	var deposits []*deposit.Deposit
	for _, d := range r.store.data.deposits {
		if d.Type != t || d.Date.Before(from) || d.Date.After(to) {
			continue
		}
		clone := *d
		deposits = append(deposits, &clone)
	}
	sortDeposits(deposits)
	return deposits, nil
}

func sortDeposits(deposits []*deposit.Deposit) {
	sort.SliceStable(deposits, func(i, j int) bool {
		if !deposits[i].Date.Equal(deposits[j].Date) {
			return deposits[i].Date.Before(deposits[j].Date)
		}
		return deposits[i].CreatedAt.Before(deposits[j].CreatedAt)
	})
}

func nextToken(next int) string {
	if next < 0 {
		return ""
	}
	return strconv.Itoa(next)
}
