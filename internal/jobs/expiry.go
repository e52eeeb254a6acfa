// Package jobs は台帳の定期ジョブを提供します。
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
)

// DepositFinder は種別と預入日の範囲で預入を検索します。
type DepositFinder interface {
	ListByTypeAndDateRange(ctx context.Context, t deposit.Type, from, to time.Time) ([]*deposit.Deposit, error)
}

// ExpiryNotifier はその日に失効した預入ごとに deposit.lapsed イベントを送信します。
// 残高は参照時に算出されるため、このジョブは台帳の状態を変更しません。
type ExpiryNotifier struct {
	deposits DepositFinder
	events   deposit.EventPublisher
	log      *slog.Logger
}

// NewExpiryNotifier は ExpiryNotifier を生成します。
func NewExpiryNotifier(deposits DepositFinder, events deposit.EventPublisher, log *slog.Logger) *ExpiryNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &ExpiryNotifier{
		deposits: deposits,
		events:   events,
		log:      log.With("job", "deposit-expiry"),
	}
}

// Run は day に失効した預入を通知し、送信できた件数を返します。
// 送信に失敗した預入があっても残りの通知は続行し、失敗はまとめて返します。
func (n *ExpiryNotifier) Run(ctx context.Context, day time.Time) (int, error) {
	day = deposit.Day(day)

	var (
		sent int
		errs []error
	)
	for _, t := range deposit.Types() {
		from, to, ok := deposit.LapsedOn(t, day)
		if !ok {
			continue
		}

		lapsed, err := n.deposits.ListByTypeAndDateRange(ctx, t, from, to)
		if err != nil {
			return sent, fmt.Errorf("list lapsed %s deposits: %w", t, err)
		}

		for _, d := range lapsed {
			if err := n.events.Publish(ctx, deposit.NewLapsedEvent(d, day)); err != nil {
				errs = append(errs, fmt.Errorf("deposit %s: %w", d.ID, err))
				continue
			}
			sent++
		}
	}

	n.log.InfoContext(ctx, "lapsed deposits notified", "day", day.Format(time.DateOnly), "sent", sent, "failed", len(errs))
	return sent, errors.Join(errs...)
}
