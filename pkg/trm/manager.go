package trm

import (
	"context"
	"errors"
	"sync"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

// Tx collects undo steps for the writes made inside a unit of work.
type Tx struct {
	mu      sync.Mutex
	touched map[string]struct{}
	undo    []func() error
	done    bool
}

type txKey struct{}

func withTx(ctx context.Context, tx *Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *Tx {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	if !ok {
		return nil
	}
	return tx
}

// Track calls snapshot the first time key is written in this unit of work
// and keeps the returned restore step for Rollback.
func (tx *Tx) Track(key string, snapshot func() (restore func() error, err error)) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	if _, ok := tx.touched[key]; ok {
		return nil
	}
	restore, err := snapshot()
	if err != nil {
		return err
	}
	tx.touched[key] = struct{}{}
	tx.undo = append(tx.undo, restore)
	return nil
}

func (tx *Tx) Commit() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.done = true
	tx.undo = nil
	return nil
}

// Rollback runs the undo steps newest first. It is a no-op after Commit.
func (tx *Tx) Rollback() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return nil
	}
	tx.done = true

	var errs []error
	for i := len(tx.undo) - 1; i >= 0; i-- {
		if err := tx.undo[i](); err != nil {
			errs = append(errs, err)
		}
	}
	tx.undo = nil
	return errors.Join(errs...)
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

// txManager runs one unit of work at a time within the process.
type txManager struct {
	mu sync.Mutex
}

func NewManager() Manager {
	return &txManager{}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	tx := &Tx{touched: make(map[string]struct{})}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	// Nested units join the outer one.
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := callback(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
