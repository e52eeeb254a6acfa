package company

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company は福利厚生残高を拠出する会社エンティティです。
// Email はログインキーを兼ね、認証情報そのものは保持しません。
type Company struct {
	ID        string
	Name      string
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
