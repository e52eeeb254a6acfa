package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	// FindByIDAndCompany は会社に所属する社員を取得します。他社の社員は ErrEmployeeNotFound です。
	FindByIDAndCompany(ctx context.Context, id, companyID string) (*Employee, error)
	ListByCompany(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, string, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	CompanyID string
	Limit     int
	Offset    int
}
