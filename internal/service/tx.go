package service

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"

	"gorm.io/gorm"
)

// runTx opens a transaction on db and runs fn inside it. When fn fails the
// transaction is rolled back and a rollback failure is reported alongside the
// original error. A nil db runs fn directly, which is how services are
// exercised against in-memory repositories in tests.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return &apierror.RollbackError{Original: err, Rollback: rbErr}
		}
		return err
	}

	return tx.Commit().Error
}
