package company

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository は会社エンティティの永続化を行うインターフェースです。
type Repository interface {
	// Create は会社をパスワードハッシュとともに保存します。
	Create(ctx context.Context, company *Company, passwordHash string) (*Company, error)
	FindByEmail(ctx context.Context, email string) (*Company, error)
	// FindByEmailForUpdate はトランザクション内で会社行をロックして取得します。
	FindByEmailForUpdate(ctx context.Context, email string) (*Company, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (*Company, error)
	List(ctx context.Context, filter ListCompaniesFilter) ([]*Company, string, error)
}

// ListCompaniesFilter は一覧取得時の検索条件を表します。
type ListCompaniesFilter struct {
	Limit  int
	Offset int
}
