package deposit

import (
	"context"
	"time"
)

// Repository は預入レコードの永続化を行うインターフェースです。レコードは追記のみです。
type Repository interface {
	Append(ctx context.Context, deposit *Deposit) (*Deposit, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Deposit, error)
	ListByTypeAndDateRange(ctx context.Context, t Type, from, to time.Time) ([]*Deposit, error)
}
