package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer はリポジトリが使うクエリ実行インターフェースです。pgx.Tx と pgxpool.Pool の両方が満たします。
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type txContextKey struct{}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}

// QueryerFromContext は WithinReadOnly や WithinReadWrite の中であればそのトランザクションを返し、
// そうでなければ pool を返します。
func QueryerFromContext(ctx context.Context, pool Queryer) Queryer {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return pool
}
