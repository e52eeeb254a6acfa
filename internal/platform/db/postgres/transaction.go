package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"

	defaultMaxAttempts = 3
	defaultRetryDelay  = 20 * time.Millisecond
)

var (
	readOnlyOptions  = pgx.TxOptions{AccessMode: pgx.ReadOnly}
	readWriteOptions = pgx.TxOptions{AccessMode: pgx.ReadWrite, IsoLevel: pgx.ReadCommitted}
)

// txStarter は pgxpool.Pool と pgxmock が満たすトランザクション開始インターフェースです。
type txStarter interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TransactionManager は台帳の操作を 1 つの pgx トランザクションにまとめます。
// 読み書きトランザクションは直列化失敗とデッドロックで中断された場合に限り再実行されます。
type TransactionManager struct {
	pool        txStarter
	maxAttempts int
	retryDelay  time.Duration
}

// NewTransactionManager は TransactionManager を生成します。
func NewTransactionManager(pool txStarter) *TransactionManager {
	if pool == nil {
		return nil
	}
	return &TransactionManager{
		pool:        pool,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// WithinReadOnly は読み取り専用トランザクションで fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}
	return m.runOnce(ctx, readOnlyOptions, fn)
}

// WithinReadWrite は READ COMMITTED の読み書きトランザクションで fn を実行します。
// 残高更新の直列化は fn 内で取得する行ロック (SELECT ... FOR UPDATE) に依存します。
// 既にトランザクション内であればそれを引き継ぎ、再実行は最も外側でのみ行います。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err = m.runOnce(ctx, readWriteOptions, fn)
		if !isRetryable(err) || attempt == m.maxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * m.retryDelay):
		}
	}
	return err
}

func (m *TransactionManager) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("postgres: transaction function is required")
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		return rollback(ctx, tx, err)
	}

	// Commit が失敗した場合、pgx はトランザクションを閉じた状態にします。
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, cause error) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Join(cause, fmt.Errorf("postgres: rollback: %w", err))
	}
	return cause
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode
}
