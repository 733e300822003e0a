// Package pgsql is the persistence gateway: the sole point of contact with
// the relational store. Every operation maps to exactly one named
// server-side procedure; no ad-hoc query composition happens here or
// anywhere else.
package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/fallback"
)

// DBTX is the subset of pgxpool.Pool the gateway uses. Connections are
// acquired per call and released before the call returns.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ DBTX = (*pgxpool.Pool)(nil)

// Gateway owns the store connection pool, the fallback snapshot served to
// reads under failure, and the retained last-error diagnostic. The
// diagnostic is best-effort, last-writer-wins state for operator surfaces;
// every read result also carries its own diagnostic explicitly.
type Gateway struct {
	db       DBTX
	logger   *slog.Logger
	snapshot *fallback.Snapshot
	lastErr  atomic.Pointer[apperrors.Diagnostic]
}

func NewGateway(db DBTX, logger *slog.Logger, snapshot *fallback.Snapshot) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{db: db, logger: logger, snapshot: snapshot}
}

// LastError returns the diagnostic retained by the most recent failed read,
// or nil after a subsequent successful round-trip cleared it.
func (g *Gateway) LastError() *apperrors.Diagnostic {
	return g.lastErr.Load()
}

func (g *Gateway) clearLastError() {
	g.lastErr.Store(nil)
}

// degrade classifies a read failure, retains the diagnostic and logs it.
// The caller then answers from the fallback snapshot.
func (g *Gateway) degrade(op string, err error) *apperrors.Diagnostic {
	diag := apperrors.Classify(op, err)
	g.lastErr.Store(&diag)
	g.logger.Error("procedure call failed, serving fallback snapshot",
		slog.String("proc", op),
		slog.String("kind", string(diag.Kind)),
		slog.String("error", err.Error()),
	)
	return &diag
}

// callScalar invokes a procedure that returns a single integer: a newly
// assigned id for creates, an affected-row count for everything else.
// Write failures are wrapped and propagated, never satisfied from the
// snapshot, since fabricating a write outcome would be unsafe.
func (g *Gateway) callScalar(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := g.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	g.clearLastError()
	return n, nil
}

// readList runs a set-returning procedure. On any failure the classified
// diagnostic is retained and the fallback subset is returned instead, so
// the read path degrades to stale-but-present rather than hard failure.
func readList[T any](ctx context.Context, g *Gateway, op, query string, args []any, scan func(pgx.Rows) (T, error), fb func(*fallback.Snapshot) []T) portsrepo.ReadResult[[]T] {
	rows, err := g.db.Query(ctx, query, args...)
	if err != nil {
		return portsrepo.Fallback(fb(g.snapshot), g.degrade(op, err))
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return portsrepo.Fallback(fb(g.snapshot), g.degrade(op, err))
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return portsrepo.Fallback(fb(g.snapshot), g.degrade(op, err))
	}

	g.clearLastError()
	return portsrepo.Live(items)
}

// readOne runs a by-id procedure. An empty result set is an explicit
// absent value on the live path, not an error.
func readOne[T any](ctx context.Context, g *Gateway, op, query string, args []any, scan func(pgx.Rows) (T, error), fb func(*fallback.Snapshot) *T) portsrepo.ReadResult[*T] {
	rows, err := g.db.Query(ctx, query, args...)
	if err != nil {
		return portsrepo.Fallback(fb(g.snapshot), g.degrade(op, err))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return portsrepo.Fallback(fb(g.snapshot), g.degrade(op, err))
		}
		g.clearLastError()
		return portsrepo.Live[*T](nil)
	}
	item, err := scan(rows)
	if err != nil {
		return portsrepo.Fallback(fb(g.snapshot), g.degrade(op, err))
	}

	g.clearLastError()
	return portsrepo.Live(&item)
}
