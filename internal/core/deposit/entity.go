package deposit

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type は預入の種別を表します。種別の集合は閉じており、追加時は policy.go の rules も更新します。
type Type string

const (
	TypeGift Type = "GIFT"
	TypeMeal Type = "MEAL"
)

// Types は定義済みの全種別を返します。
func Types() []Type {
	return []Type{TypeGift, TypeMeal}
}

// Valid は定義済みの種別かどうかを返します。
func (t Type) Valid() bool {
	switch t {
	case TypeGift, TypeMeal:
		return true
	default:
		return false
	}
}

// ParseType は文字列から種別を解釈します。大文字小文字と複数形 (GIFTS / MEALS) を許容します。
func ParseType(raw string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "GIFT", "GIFTS":
		return TypeGift, nil
	case "MEAL", "MEALS":
		return TypeMeal, nil
	default:
		return "", ErrInvalidType
	}
}

// Deposit は社員に紐づく不変の預入レコードです。
type Deposit struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Type       Type
	Date       time.Time
	CreatedAt  time.Time
}

// Day は時刻をその暦日の UTC 0 時に切り詰めます。
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
