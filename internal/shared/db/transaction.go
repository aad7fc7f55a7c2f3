// Package db provides database utilities including transaction management.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing the active transaction.
type txKey struct{}

// TransactionManager manages database transactions.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a database transaction. If fn returns
// an error the transaction is rolled back, otherwise it is committed.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the transaction from context if one is active,
// otherwise the default DB bound to the context.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
