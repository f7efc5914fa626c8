package trm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx возвращает транзакцию из контекста или nil,
// если вызов идёт вне транзакции.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{db: db}
}

// NewManagerWithOptions позволяет задать уровень изоляции для всех
// транзакций менеджера.
func NewManagerWithOptions(db *sqlx.DB, opts *sql.TxOptions) Manager {
	return &txManager{db: db, opts: opts}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	// Вложенные транзакции не поддерживаются: вызов внутри активной
	// транзакции продолжает её же.
	if tx := ExtractTx(ctx); tx != nil {
		return ctx, nopTransaction{}, nil
	}

	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// nopTransaction возвращается для вложенных вызовов: управление
// фиксацией остаётся за внешней транзакцией.
type nopTransaction struct{}

func (nopTransaction) Commit() error   { return nil }
func (nopTransaction) Rollback() error { return nil }
