package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	benefitv1 "github.com/ogurasousui/benefit-ledger/internal/adapters/grpc/gen/benefit/v1"
	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/ledger"
	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const dateLayout = "2006-01-02"

// Authenticator はパスワード認証とトークン発行を行います。
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*auth.Token, error)
}

// LedgerGrpcHandler は LedgerService の gRPC 実装です。
// 認証が必要なメソッドでは、インターセプタが格納した会社メールアドレスを会社キーとして使用します。
type LedgerGrpcHandler struct {
	svc  ledger.UseCase
	auth Authenticator
	benefitv1.UnimplementedLedgerServiceServer
}

// NewLedgerGrpcHandler は LedgerGrpcHandler を生成します。
func NewLedgerGrpcHandler(svc ledger.UseCase, authenticator Authenticator) *LedgerGrpcHandler {
	return &LedgerGrpcHandler{svc: svc, auth: authenticator}
}

// RegisterCompany は会社を登録し、そのままアクセストークンを発行します。
func (h *LedgerGrpcHandler) RegisterCompany(ctx context.Context, req *benefitv1.RegisterCompanyRequest) (*benefitv1.RegisterCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	balance := decimal.Zero
	if strings.TrimSpace(req.InitialBalance) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(req.InitialBalance))
		if err != nil {
			return nil, toStatusError(fmt.Errorf("%w: %s", ledger.ErrInvalidBalance, req.InitialBalance))
		}
		balance = parsed
	}

	created, err := h.svc.RegisterCompany(ctx, ledger.RegisterCompanyInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		InitialBalance: balance,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	token, err := h.auth.Authenticate(ctx, created.Email, req.Password)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &benefitv1.RegisterCompanyResponse{
		Company:     toProtoCompany(created),
		AccessToken: token.Value,
		ExpiresAt:   timestamppb.New(token.ExpiresAt),
	}, nil
}

// Authenticate はメールアドレスとパスワードからアクセストークンを発行します。
func (h *LedgerGrpcHandler) Authenticate(ctx context.Context, req *benefitv1.AuthenticateRequest) (*benefitv1.AuthenticateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	token, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &benefitv1.AuthenticateResponse{
		AccessToken: token.Value,
		ExpiresAt:   timestamppb.New(token.ExpiresAt),
	}, nil
}

// GetCompany は認証済みの会社を取得します。
func (h *LedgerGrpcHandler) GetCompany(ctx context.Context, _ *benefitv1.GetCompanyRequest) (*benefitv1.GetCompanyResponse, error) {
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetCompany(ctx, ledger.GetCompanyInput{CompanyEmail: email})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &benefitv1.GetCompanyResponse{Company: toProtoCompany(found)}, nil
}

// ListCompanies は会社の一覧を取得します。
func (h *LedgerGrpcHandler) ListCompanies(ctx context.Context, req *benefitv1.ListCompaniesRequest) (*benefitv1.ListCompaniesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListCompanies(ctx, ledger.ListCompaniesInput{
		PageSize:  int(req.PageSize),
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	companies := make([]*benefitv1.Company, 0, len(result.Companies))
	for _, c := range result.Companies {
		companies = append(companies, toProtoCompany(c))
	}

	return &benefitv1.ListCompaniesResponse{
		Companies:     companies,
		NextPageToken: result.NextPageToken,
	}, nil
}

// EnrollEmployee は認証済みの会社に社員を登録します。
func (h *LedgerGrpcHandler) EnrollEmployee(ctx context.Context, req *benefitv1.EnrollEmployeeRequest) (*benefitv1.EnrollEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.svc.EnrollEmployee(ctx, ledger.EnrollEmployeeInput{CompanyEmail: email, Name: req.Name})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &benefitv1.EnrollEmployeeResponse{Employee: toProtoEmployee(&ledger.EmployeeBalance{
		Employee:      created,
		ActiveBalance: decimal.Zero,
	})}, nil
}

// ListEmployees は認証済みの会社の社員一覧を取得します。
func (h *LedgerGrpcHandler) ListEmployees(ctx context.Context, req *benefitv1.ListEmployeesRequest) (*benefitv1.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ListEmployees(ctx, ledger.ListEmployeesInput{
		CompanyEmail: email,
		PageSize:     int(req.PageSize),
		PageToken:    req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	employees := make([]*benefitv1.Employee, 0, len(result.Employees))
	for _, e := range result.Employees {
		employees = append(employees, toProtoEmployee(e))
	}

	return &benefitv1.ListEmployeesResponse{
		Employees:     employees,
		NextPageToken: result.NextPageToken,
	}, nil
}

// GetEmployee は認証済みの会社に所属する社員を取得します。
func (h *LedgerGrpcHandler) GetEmployee(ctx context.Context, req *benefitv1.GetEmployeeRequest) (*benefitv1.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetEmployee(ctx, ledger.GetEmployeeInput{CompanyEmail: email, EmployeeID: req.EmployeeId})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &benefitv1.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// FundEmployee は社員へ預入を行います。
func (h *LedgerGrpcHandler) FundEmployee(ctx context.Context, req *benefitv1.FundEmployeeRequest) (*benefitv1.FundEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return nil, toStatusError(fmt.Errorf("%w: %s", ledger.ErrInvalidAmount, req.Amount))
	}

	depositType, err := deposit.ParseType(req.DepositType)
	if err != nil {
		return nil, toStatusError(err)
	}

	depositDate, err := parseDate(req.DepositDate)
	if err != nil {
		return nil, toStatusError(err)
	}

	recorded, err := h.svc.FundEmployee(ctx, ledger.FundEmployeeInput{
		CompanyEmail: email,
		EmployeeID:   req.EmployeeId,
		Amount:       amount,
		Type:         depositType,
		Date:         depositDate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	last, _ := deposit.LastActiveDay(recorded.Type, recorded.Date)
	return &benefitv1.FundEmployeeResponse{Deposit: toProtoDeposit(&ledger.DepositStatus{
		Deposit:       recorded,
		Active:        deposit.IsActive(recorded.Type, recorded.Date, recorded.CreatedAt),
		LastActiveDay: last,
	})}, nil
}

// GetEmployeeBalance は社員の有効残高を取得します。
func (h *LedgerGrpcHandler) GetEmployeeBalance(ctx context.Context, req *benefitv1.GetEmployeeBalanceRequest) (*benefitv1.GetEmployeeBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	var reference *time.Time
	if strings.TrimSpace(req.ReferenceDate) != "" {
		parsed, err := parseDate(req.ReferenceDate)
		if err != nil {
			return nil, toStatusError(err)
		}
		reference = &parsed
	}

	balance, err := h.svc.GetActiveBalance(ctx, ledger.GetActiveBalanceInput{
		CompanyEmail:  email,
		EmployeeID:    req.EmployeeId,
		ReferenceDate: reference,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &benefitv1.GetEmployeeBalanceResponse{
		EmployeeId:    balance.EmployeeID,
		ActiveBalance: balance.Amount.String(),
		AsOf:          balance.AsOf.Format(dateLayout),
	}, nil
}

// ListDeposits は社員の預入履歴を取得します。
func (h *LedgerGrpcHandler) ListDeposits(ctx context.Context, req *benefitv1.ListDepositsRequest) (*benefitv1.ListDepositsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	email, err := companyEmail(ctx)
	if err != nil {
		return nil, err
	}

	history, err := h.svc.ListDeposits(ctx, ledger.ListDepositsInput{CompanyEmail: email, EmployeeID: req.EmployeeId})
	if err != nil {
		return nil, toStatusError(err)
	}

	deposits := make([]*benefitv1.Deposit, 0, len(history))
	for _, d := range history {
		deposits = append(deposits, toProtoDeposit(d))
	}

	return &benefitv1.ListDepositsResponse{Deposits: deposits}, nil
}

func companyEmail(ctx context.Context) (string, error) {
	email, ok := auth.CompanyEmailFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "authentication is required")
	}
	return email, nil
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ledger.ErrInvalidDate, raw)
	}
	return parsed, nil
}

func toProtoCompany(c *company.Company) *benefitv1.Company {
	if c == nil {
		return nil
	}

	return &benefitv1.Company{
		Id:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Balance:   c.Balance.String(),
		CreatedAt: timestamppb.New(c.CreatedAt),
		UpdatedAt: timestamppb.New(c.UpdatedAt),
	}
}

func toProtoEmployee(e *ledger.EmployeeBalance) *benefitv1.Employee {
	if e == nil || e.Employee == nil {
		return nil
	}

	return &benefitv1.Employee{
		Id:            e.Employee.ID,
		CompanyId:     e.Employee.CompanyID,
		Name:          e.Employee.Name,
		ActiveBalance: e.ActiveBalance.String(),
		CreatedAt:     timestamppb.New(e.Employee.CreatedAt),
	}
}

func toProtoDeposit(s *ledger.DepositStatus) *benefitv1.Deposit {
	if s == nil || s.Deposit == nil {
		return nil
	}

	d := s.Deposit
	out := &benefitv1.Deposit{
		Id:          d.ID,
		EmployeeId:  d.EmployeeID,
		Amount:      d.Amount.String(),
		DepositType: string(d.Type),
		DepositDate: d.Date.Format(dateLayout),
		Active:      s.Active,
		CreatedAt:   timestamppb.New(d.CreatedAt),
	}
	if !s.LastActiveDay.IsZero() {
		out.LastActiveDay = s.LastActiveDay.Format(dateLayout)
	}
	return out
}
