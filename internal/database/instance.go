package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	recipientRepo contract.RecipientRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:            db,
		recipientRepo: newRecipientRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances bound to a transaction
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		recipientRepo: newRecipientRepo(db),
	}
}

// Recipient returns the recipient settings repository
func (i *instance) Recipient() contract.RecipientRepo {
	return i.recipientRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
