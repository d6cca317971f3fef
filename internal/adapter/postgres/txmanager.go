package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager scopes a unit of work to one transaction carried in the context.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including
// when fn panics. Called inside another RunInTx, the inner unit runs under a
// savepoint of the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	run := func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, activeTx{}, tx))
	}
	if outer, ok := txFrom(ctx); ok {
		return pgx.BeginFunc(ctx, outer, run)
	}
	return pgx.BeginTxFunc(ctx, m.pool, m.opts, run)
}
