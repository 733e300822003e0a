package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// FaultKind is the diagnostic category of a classified store failure.
type FaultKind string

const (
	FaultIdentity FaultKind = "identity"
	FaultGeneric  FaultKind = "generic"
)

// Diagnostic is the classified form of a low-level store failure. It is
// attached to read results and to the gateway's last-error state; it is
// never the primary error surfaced for a failed write.
type Diagnostic struct {
	Kind    FaultKind `json:"kind"`
	Op      string    `json:"op"`
	Message string    `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Op, d.Message)
}

const identityHint = "Database authentication failed. " +
	"Check that the database identity is configured: verify the credentials in PGSQL_URL " +
	"and that the role has been granted access to the database."

// SQLSTATE class 28 covers authorization failures (28000 invalid
// authorization specification, 28P01 invalid password).
var identitySQLStates = map[string]bool{
	"28000": true,
	"28P01": true,
}

var identityKeywords = []string{"login", "principal", "token", "authentication"}

// Classify inspects a store failure and produces a stable diagnostic:
// identity failures carry a remediation hint pointing at credential
// configuration, everything else carries the fault's type and message.
func Classify(op string, err error) Diagnostic {
	if isIdentityFailure(err) {
		return Diagnostic{Kind: FaultIdentity, Op: op, Message: identityHint}
	}
	return Diagnostic{Kind: FaultGeneric, Op: op, Message: fmt.Sprintf("%T: %v", unwrapped(err), err)}
}

func isIdentityFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && identitySQLStates[pgErr.Code] {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, kw := range identityKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func unwrapped(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}
