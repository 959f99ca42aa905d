// Package dbtest provides in-memory stand-ins for the connection pool so
// repositories can be exercised against a mocked Querier.
package dbtest

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/matt-dz/recipecenter/internal/database"
)

// Tx records whether it was committed or rolled back. Every other pgx.Tx
// method panics.
type Tx struct {
	pgx.Tx

	CommitErr error

	mu         sync.Mutex
	committed  bool
	rolledBack bool
}

func (t *Tx) Commit(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.committed = true
	return nil
}

func (t *Tx) Rollback(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func (t *Tx) Committed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.committed
}

func (t *Tx) RolledBack() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rolledBack
}

// Pool hands out Tx values and records statements passed to Exec.
type Pool struct {
	BeginErr  error
	CommitErr error
	ExecErr   error

	mu   sync.Mutex
	txs  []*Tx
	exec []string
}

func (p *Pool) Begin(context.Context) (pgx.Tx, error) {
	if p.BeginErr != nil {
		return nil, p.BeginErr
	}
	tx := &Tx{CommitErr: p.CommitErr}
	p.mu.Lock()
	p.txs = append(p.txs, tx)
	p.mu.Unlock()
	return tx, nil
}

func (p *Pool) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if p.ExecErr != nil {
		return pgconn.CommandTag{}, p.ExecErr
	}
	p.mu.Lock()
	p.exec = append(p.exec, sql)
	p.mu.Unlock()
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

// Txs returns every transaction begun so far.
func (p *Pool) Txs() []*Tx {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Tx(nil), p.txs...)
}

// Executed returns the statements passed to Exec.
func (p *Pool) Executed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.exec...)
}

// New returns a Database whose pooled and transactional queries both go
// to q.
func New(q database.Querier) (*database.Database, *Pool) {
	pool := &Pool{}
	return &database.Database{
		Querier:   q,
		Pool:      pool,
		TxQuerier: func(pgx.Tx) database.Querier { return q },
	}, pool
}
