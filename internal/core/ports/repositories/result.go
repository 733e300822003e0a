package repositories

import "github.com/claimstack/expense_claims_app/internal/apperrors"

// Source tags which data source answered a read: the live store or the
// in-memory fallback snapshot.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// ReadResult is the envelope every read operation returns. Data is always
// present (possibly empty); Diagnostic is advisory and set only when the
// read was satisfied by the fallback snapshot.
type ReadResult[T any] struct {
	Data       T
	Source     Source
	Diagnostic *apperrors.Diagnostic
}

// Degraded reports whether the result came from the fallback snapshot.
func (r ReadResult[T]) Degraded() bool {
	return r.Source == SourceFallback
}

// Live wraps data answered by the live store.
func Live[T any](data T) ReadResult[T] {
	return ReadResult[T]{Data: data, Source: SourceLive}
}

// Fallback wraps snapshot data together with the diagnostic explaining why
// the live store could not answer.
func Fallback[T any](data T, diag *apperrors.Diagnostic) ReadResult[T] {
	return ReadResult[T]{Data: data, Source: SourceFallback, Diagnostic: diag}
}
