package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	"github.com/shopspring/decimal"
)

// FundEmployee は会社の拠出残高から社員へ預入を行います。
// 残高確認、預入の追記、会社残高の減算は一つの読み書きトランザクション内で行われ、
// 残高不足の場合は何も書き込みません。
func (s *Service) FundEmployee(ctx context.Context, in FundEmployeeInput) (*deposit.Deposit, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	employeeID, err := normalizeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	amount, err := normalizeAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	if !in.Type.Valid() {
		return nil, deposit.ErrInvalidType
	}

	if in.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	depositDate := deposit.Day(in.Date)

	var (
		recorded  *deposit.Deposit
		companyID string
	)
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		c, err := s.companies.FindByEmailForUpdate(txCtx, email)
		if err != nil {
			return err
		}

		emp, err := s.employees.FindByIDAndCompany(txCtx, employeeID, c.ID)
		if err != nil {
			return err
		}

		if c.Balance.LessThan(amount) {
			return fmt.Errorf("%w: available %s, requested %s", ErrInsufficientFunds, c.Balance.String(), amount.String())
		}

		now := s.clock.Now()
		appended, err := s.deposits.Append(txCtx, &deposit.Deposit{
			EmployeeID: emp.ID,
			Amount:     amount,
			Type:       in.Type,
			Date:       depositDate,
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}

		if _, err := s.companies.UpdateBalance(txCtx, c.ID, c.Balance.Sub(amount), now); err != nil {
			return err
		}

		recorded = appended
		companyID = c.ID
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.events.Publish(ctx, deposit.NewRecordedEvent(recorded, companyID)); err != nil {
		s.log.WarnContext(ctx, "failed to publish deposit event", "deposit_id", recorded.ID, "error", err)
	}

	return recorded, nil
}

// GetActiveBalance は基準日時点で失効していない預入の合計を返します。
func (s *Service) GetActiveBalance(ctx context.Context, in GetActiveBalanceInput) (*Balance, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	employeeID, err := normalizeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	asOf := s.today()
	if in.ReferenceDate != nil {
		if in.ReferenceDate.IsZero() {
			return nil, ErrInvalidDate
		}
		asOf = deposit.Day(*in.ReferenceDate)
	}

	var total decimal.Decimal
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		emp, err := s.resolveEmployee(txCtx, email, employeeID)
		if err != nil {
			return err
		}

		sum, err := s.activeBalance(txCtx, emp.ID, asOf)
		if err != nil {
			return err
		}
		total = sum
		return nil
	}); err != nil {
		return nil, err
	}

	return &Balance{EmployeeID: employeeID, Amount: total, AsOf: asOf}, nil
}

// ListDeposits は社員の預入履歴を現在日時点の有効状態とともに返します。
func (s *Service) ListDeposits(ctx context.Context, in ListDepositsInput) ([]*DepositStatus, error) {
	email, err := normalizeEmail(in.CompanyEmail)
	if err != nil {
		return nil, err
	}

	employeeID, err := normalizeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	today := s.today()

	var result []*DepositStatus
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		emp, err := s.resolveEmployee(txCtx, email, employeeID)
		if err != nil {
			return err
		}

		deposits, err := s.deposits.ListByEmployee(txCtx, emp.ID)
		if err != nil {
			return err
		}

		result = make([]*DepositStatus, 0, len(deposits))
		for _, d := range deposits {
			last, _ := deposit.LastActiveDay(d.Type, d.Date)
			result = append(result, &DepositStatus{
				Deposit:       d,
				Active:        deposit.IsActive(d.Type, d.Date, today),
				LastActiveDay: last,
			})
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) resolveEmployee(ctx context.Context, email, employeeID string) (*employee.Employee, error) {
	c, err := s.companies.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.employees.FindByIDAndCompany(ctx, employeeID, c.ID)
}

func (s *Service) activeBalance(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
	deposits, err := s.deposits.ListByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, d := range deposits {
		if deposit.IsActive(d.Type, d.Date, asOf) {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

func (s *Service) today() time.Time {
	return deposit.Day(s.clock.Now().UTC())
}
