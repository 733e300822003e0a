package dto

import (
	"github.com/claimstack/expense_claims_app/internal/apperrors"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
)

// ReadEnvelope is the wire form of a read result: the data is always
// present, the source tag says which store answered, and the diagnostic is
// attached only when the fallback snapshot did.
type ReadEnvelope[T any] struct {
	Data       T                     `json:"data"`
	Source     string                `json:"source"`
	Diagnostic *apperrors.Diagnostic `json:"diagnostic,omitempty"`
}

// ToReadEnvelope maps a repository read result onto its wire form.
func ToReadEnvelope[T any](r portsrepo.ReadResult[T]) ReadEnvelope[T] {
	return ReadEnvelope[T]{
		Data:       r.Data,
		Source:     string(r.Source),
		Diagnostic: r.Diagnostic,
	}
}
