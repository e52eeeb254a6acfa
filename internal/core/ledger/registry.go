package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
)

// RegisterCompany は新しい会社を登録します。パスワードはハッシュ化して保存します。
func (s *Service) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (*company.Company, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Password) == "" {
		return nil, ErrInvalidPassword
	}

	balance, err := normalizeInitialBalance(in.InitialBalance)
	if err != nil {
		return nil, err
	}

	if s.hasher == nil {
		return nil, errHasherNotConfigured
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	var created *company.Company
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.companies.FindByEmail(txCtx, email)
		if err != nil && !errors.Is(err, company.ErrCompanyNotFound) {
			return err
		}
		if existing != nil {
			return ErrDuplicateCompany
		}

		now := s.clock.Now()
		result, err := s.companies.Create(txCtx, &company.Company{
			Name:      name,
			Email:     email,
			Balance:   balance,
			CreatedAt: now,
			UpdatedAt: now,
		}, hash)
		if err != nil {
			if errors.Is(err, company.ErrEmailAlreadyExists) {
				return ErrDuplicateCompany
			}
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company registered", "company_id", created.ID)
	return created, nil
}

// GetCompany はログインキーで会社を取得します。
func (s *Service) GetCompany(ctx context.Context, in GetCompanyInput) (*company.Company, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	var result *company.Company
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.companies.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListCompanies は会社の一覧を取得します。
func (s *Service) ListCompanies(ctx context.Context, in ListCompaniesInput) (*ListCompaniesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		companies []*company.Company
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, token, err := s.companies.List(txCtx, company.ListCompaniesFilter{Limit: limit, Offset: offset})
		if err != nil {
			return err
		}
		companies = found
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListCompaniesResult{Companies: companies, NextPageToken: nextToken}, nil
}

// EnrollEmployee は会社に社員を登録します。
func (s *Service) EnrollEmployee(ctx context.Context, in EnrollEmployeeInput) (*employee.Employee, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	var created *employee.Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		c, err := s.companies.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.employees.Create(txCtx, &employee.Employee{
			CompanyID: c.ID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetEmployee は会社に所属する社員を現在の有効残高とともに取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*EmployeeBalance, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	employeeID, err := normalizeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	today := s.today()

	var result *EmployeeBalance
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		emp, err := s.resolveEmployee(txCtx, email, employeeID)
		if err != nil {
			return err
		}

		balance, err := s.activeBalance(txCtx, emp.ID, today)
		if err != nil {
			return err
		}

		result = &EmployeeBalance{Employee: emp, ActiveBalance: balance}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は会社の社員一覧を現在の有効残高とともに取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	today := s.today()

	var (
		employees []*EmployeeBalance
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		c, err := s.companies.FindByEmail(txCtx, email)
		if err != nil {
			return err
		}

		found, token, err := s.employees.ListByCompany(txCtx, employee.ListEmployeesFilter{
			CompanyID: c.ID,
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			return err
		}

		employees = make([]*EmployeeBalance, 0, len(found))
		for _, emp := range found {
			balance, err := s.activeBalance(txCtx, emp.ID, today)
			if err != nil {
				return err
			}
			employees = append(employees, &EmployeeBalance{Employee: emp, ActiveBalance: balance})
		}
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: employees, NextPageToken: nextToken}, nil
}
