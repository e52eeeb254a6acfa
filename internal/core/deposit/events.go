package deposit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventRecorded = "deposit.recorded"
	EventLapsed   = "deposit.lapsed"

	dateLayout = "2006-01-02"
)

// Event は外部へ通知するドメインイベントです。
type Event interface {
	// Name はイベント種別名を返します。
	Name() string
	// Key はパーティショニングに用いるキーを返します。
	Key() string
}

// EventPublisher はドメインイベントの送信先です。
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RecordedEvent は預入が記録されたことを表します。
type RecordedEvent struct {
	DepositID   string          `json:"deposit_id"`
	CompanyID   string          `json:"company_id"`
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"deposit_type"`
	DepositDate string          `json:"deposit_date"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func (RecordedEvent) Name() string { return EventRecorded }

func (e RecordedEvent) Key() string { return e.EmployeeID }

// NewRecordedEvent は記録済みの預入から RecordedEvent を生成します。
func NewRecordedEvent(d *Deposit, companyID string) RecordedEvent {
	return RecordedEvent{
		DepositID:   d.ID,
		CompanyID:   companyID,
		EmployeeID:  d.EmployeeID,
		Amount:      d.Amount,
		Type:        d.Type,
		DepositDate: d.Date.Format(dateLayout),
		OccurredAt:  d.CreatedAt,
	}
}

// LapsedEvent は預入が有効期限を迎え残高から外れたことを表します。
type LapsedEvent struct {
	DepositID     string          `json:"deposit_id"`
	EmployeeID    string          `json:"employee_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          Type            `json:"deposit_type"`
	DepositDate   string          `json:"deposit_date"`
	LastActiveDay string          `json:"last_active_day"`
	LapsedOn      string          `json:"lapsed_on"`
}

func (LapsedEvent) Name() string { return EventLapsed }

func (e LapsedEvent) Key() string { return e.EmployeeID }

// NewLapsedEvent は day に失効した預入から LapsedEvent を生成します。
func NewLapsedEvent(d *Deposit, day time.Time) LapsedEvent {
	last, _ := LastActiveDay(d.Type, d.Date)
	return LapsedEvent{
		DepositID:     d.ID,
		EmployeeID:    d.EmployeeID,
		Amount:        d.Amount,
		Type:          d.Type,
		DepositDate:   d.Date.Format(dateLayout),
		LastActiveDay: last.Format(dateLayout),
		LapsedOn:      Day(day).Format(dateLayout),
	}
}
