package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	"github.com/shopspring/decimal"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
// WithinReadWrite は同一会社に対する並行した残高更新を直列化できなければなりません。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// PasswordHasher は認証情報の一方向ハッシュを生成します。
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, deposit.Event) error { return nil }

var errHasherNotConfigured = errors.New("ledger: password hasher is not configured")

// Repositories は台帳が利用するストアの集合です。
type Repositories struct {
	Companies company.Repository
	Employees employee.Repository
	Deposits  deposit.Repository
}

// Service は福利厚生残高台帳のユースケースをまとめます。
type Service struct {
	companies company.Repository
	employees employee.Repository
	deposits  deposit.Repository
	hasher    PasswordHasher
	clock     Clock
	tx        TransactionManager
	events    deposit.EventPublisher
	log       *slog.Logger
}

// UseCase は台帳ユースケースの公開インターフェースです。
type UseCase interface {
	RegisterCompany(ctx context.Context, in RegisterCompanyInput) (*company.Company, error)
	GetCompany(ctx context.Context, in GetCompanyInput) (*company.Company, error)
	ListCompanies(ctx context.Context, in ListCompaniesInput) (*ListCompaniesResult, error)
	EnrollEmployee(ctx context.Context, in EnrollEmployeeInput) (*employee.Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*EmployeeBalance, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	FundEmployee(ctx context.Context, in FundEmployeeInput) (*deposit.Deposit, error)
	GetActiveBalance(ctx context.Context, in GetActiveBalanceInput) (*Balance, error)
	ListDeposits(ctx context.Context, in ListDepositsInput) ([]*DepositStatus, error)
}

// NewService は Service を生成します。clock, tx, events が nil の場合は既定実装を使用します。
func NewService(repos Repositories, hasher PasswordHasher, clock Clock, tx TransactionManager, events deposit.EventPublisher) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if events == nil {
		events = noopPublisher{}
	}
	return &Service{
		companies: repos.Companies,
		employees: repos.Employees,
		deposits:  repos.Deposits,
		hasher:    hasher,
		clock:     clock,
		tx:        tx,
		events:    events,
		log:       slog.Default().With("component", "ledger"),
	}
}

// RegisterCompanyInput は会社登録時の入力です。
type RegisterCompanyInput struct {
	Name           string
	Email          string
	Password       string
	InitialBalance decimal.Decimal
}

// GetCompanyInput は会社取得時の入力です。
type GetCompanyInput struct {
	CompanyEmail string
}

// ListCompaniesInput は会社一覧取得時の入力です。
type ListCompaniesInput struct {
	PageSize  int
	PageToken string
}

// ListCompaniesResult は会社一覧取得結果を表します。
type ListCompaniesResult struct {
	Companies     []*company.Company
	NextPageToken string
}

// EnrollEmployeeInput は社員登録時の入力です。
type EnrollEmployeeInput struct {
	CompanyEmail string
	Name         string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	CompanyEmail string
	EmployeeID   string
}

// ListEmployeesInput は社員一覧取得時の入力です。
type ListEmployeesInput struct {
	CompanyEmail string
	PageSize     int
	PageToken    string
}

// EmployeeBalance は社員と現在の有効残高の組です。
type EmployeeBalance struct {
	Employee      *employee.Employee
	ActiveBalance decimal.Decimal
}

// ListEmployeesResult は社員一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*EmployeeBalance
	NextPageToken string
}

// FundEmployeeInput は社員への預入時の入力です。
type FundEmployeeInput struct {
	CompanyEmail string
	EmployeeID   string
	Amount       decimal.Decimal
	Type         deposit.Type
	Date         time.Time
}

// GetActiveBalanceInput は有効残高取得時の入力です。ReferenceDate が nil の場合は現在日を使用します。
type GetActiveBalanceInput struct {
	CompanyEmail  string
	EmployeeID    string
	ReferenceDate *time.Time
}

// Balance は基準日時点の有効残高です。
type Balance struct {
	EmployeeID string
	Amount     decimal.Decimal
	AsOf       time.Time
}

// ListDepositsInput は預入履歴取得時の入力です。
type ListDepositsInput struct {
	CompanyEmail string
	EmployeeID   string
}

// DepositStatus は預入と現在日時点での有効状態です。
type DepositStatus struct {
	Deposit       *deposit.Deposit
	Active        bool
	LastActiveDay time.Time
}
