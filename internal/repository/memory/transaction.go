// Package memory holds map-backed repositories for running the forum
// without a database.
package memory

import (
	"context"
	"sync"

	"forum/internal/domain/repositories"
)

// participant is a repository whose state a failed transaction restores.
type participant interface {
	// snapshot captures the current state and returns a function that puts it back
	snapshot() (restore func())
}

// TransactionManager serializes transactional blocks. When fn fails, every
// participating repository is restored to its state before the block.
type TransactionManager struct {
	mu           sync.Mutex
	participants []participant
}

// NewTransactionManager creates a transaction manager over the given repositories.
func NewTransactionManager(repos ...participant) repositories.TransactionManager {
	return &TransactionManager{participants: repos}
}

func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	restores := make([]func(), len(tm.participants))
	for i, p := range tm.participants {
		restores[i] = p.snapshot()
	}

	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}
