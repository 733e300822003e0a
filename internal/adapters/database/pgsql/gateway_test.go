package pgsql_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimstack/expense_claims_app/internal/adapters/database/pgsql"
	"github.com/claimstack/expense_claims_app/internal/apperrors"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/fallback"
)

// fakeRows is an in-memory pgx.Rows over pre-built value rows.
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	rowsErr error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.rowsErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.data[r.idx-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		default:
			return fmt.Errorf("fakeRows: unsupported dest %T", d)
		}
	}
	return nil
}

type fakeRow struct {
	n   int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.n
	return nil
}

// stubDB satisfies pgsql.DBTX without a running store.
type stubDB struct {
	queryErr error
	rows     *fakeRows
	row      fakeRow
}

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.rows, nil
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.row
}

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func newTestGateway(db *stubDB) (*pgsql.Gateway, *fallback.Snapshot) {
	snap := fallback.New(time.Now())
	return pgsql.NewGateway(db, slog.Default(), snap), snap
}

func TestReadListFallsBackOnQueryError(t *testing.T) {
	db := &stubDB{queryErr: errors.New("Login failed for user 'app'")}
	g, snap := newTestGateway(db)
	repo := pgsql.NewRoleRepository(g)

	res := repo.ListRoles(context.Background())

	assert.True(t, res.Degraded())
	assert.Equal(t, portsrepo.SourceFallback, res.Source)
	assert.Equal(t, snap.Roles(), res.Data)
	require.NotNil(t, res.Diagnostic)
	assert.Equal(t, apperrors.FaultIdentity, res.Diagnostic.Kind)
	assert.Equal(t, "GetRoles", res.Diagnostic.Op)

	last := g.LastError()
	require.NotNil(t, last)
	assert.Equal(t, *res.Diagnostic, *last)
}

func TestReadListFallsBackOnScanError(t *testing.T) {
	db := &stubDB{rows: &fakeRows{
		data:    [][]any{{1, "Employee", ""}},
		scanErr: errors.New("cannot scan NULL into *string"),
	}}
	g, snap := newTestGateway(db)
	repo := pgsql.NewRoleRepository(g)

	res := repo.ListRoles(context.Background())

	assert.True(t, res.Degraded())
	assert.Equal(t, snap.Roles(), res.Data)
	require.NotNil(t, res.Diagnostic)
	assert.Equal(t, apperrors.FaultGeneric, res.Diagnostic.Kind)
}

func TestReadListLiveSuccessClearsLastError(t *testing.T) {
	db := &stubDB{queryErr: errors.New("connection refused")}
	g, _ := newTestGateway(db)
	repo := pgsql.NewRoleRepository(g)

	res := repo.ListRoles(context.Background())
	assert.True(t, res.Degraded())
	require.NotNil(t, g.LastError())

	db.queryErr = nil
	db.rows = &fakeRows{data: [][]any{{1, "Employee", "Regular employee"}}}

	res = repo.ListRoles(context.Background())
	assert.False(t, res.Degraded())
	assert.Equal(t, portsrepo.SourceLive, res.Source)
	assert.Nil(t, res.Diagnostic)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Employee", res.Data[0].RoleName)

	assert.Nil(t, g.LastError(), "successful round-trip must clear the retained diagnostic")
}

func TestReadOneAbsentIsLiveNil(t *testing.T) {
	db := &stubDB{rows: &fakeRows{}}
	g, _ := newTestGateway(db)
	repo := pgsql.NewRoleRepository(g)

	res := repo.FindRoleByID(context.Background(), 42)

	assert.False(t, res.Degraded())
	assert.Nil(t, res.Data)
	assert.Nil(t, res.Diagnostic)
	assert.Nil(t, g.LastError())
}

func TestReadOneFallsBackToSnapshotRecord(t *testing.T) {
	db := &stubDB{queryErr: errors.New("connection refused")}
	g, snap := newTestGateway(db)
	repo := pgsql.NewRoleRepository(g)

	res := repo.FindRoleByID(context.Background(), 1)

	assert.True(t, res.Degraded())
	require.NotNil(t, res.Data)
	assert.Equal(t, snap.RoleByID(1), res.Data)

	// An id the snapshot doesn't know stays absent even under fallback.
	res = repo.FindRoleByID(context.Background(), 999)
	assert.True(t, res.Degraded())
	assert.Nil(t, res.Data)
}

func TestCallScalarPropagatesWriteFailure(t *testing.T) {
	db := &stubDB{row: fakeRow{err: errors.New("deadlock detected")}}
	g, _ := newTestGateway(db)
	repo := pgsql.NewUserRepository(g)

	rows, err := repo.DeleteUser(context.Background(), 7)

	require.Error(t, err)
	assert.Zero(t, rows)
	assert.Contains(t, err.Error(), "DeleteUser")
	assert.Nil(t, g.LastError(), "write failures must not degrade the read path")
}

func TestCallScalarReturnsRowCount(t *testing.T) {
	db := &stubDB{row: fakeRow{n: 1}}
	g, _ := newTestGateway(db)
	repo := pgsql.NewExpenseRepository(g)

	rows, err := repo.SubmitExpense(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// A losing racer or a wrong-status claim reports zero rows.
	db.row = fakeRow{n: 0}
	rows, err = repo.SubmitExpense(context.Background(), 3)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestCallScalarSuccessClearsLastError(t *testing.T) {
	db := &stubDB{queryErr: errors.New("connection refused"), row: fakeRow{n: 5}}
	g, _ := newTestGateway(db)
	roleRepo := pgsql.NewRoleRepository(g)
	userRepo := pgsql.NewUserRepository(g)

	roleRepo.ListRoles(context.Background())
	require.NotNil(t, g.LastError())

	_, err := userRepo.DeleteUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, g.LastError())
}
