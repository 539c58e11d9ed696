// Package flag defines the contract for sibling-exclusive booleans: flags for
// which at most one row within a scope may be true (Loan.IsActive per project,
// Participation.IsLead per project or loan).
package flag

import (
	"context"
	"errors"
)

// ErrInvariantViolation means more than one row in a scope was already flagged
// before the mutation started. That is prior data corruption; callers must
// abort rather than repair silently.
var ErrInvariantViolation = errors.New("more than one row flagged in scope")

type Kind string

const (
	LoanActive        Kind = "LoanActive"
	ParticipationLead Kind = "ParticipationLead"
)

// ScopeField names the grouping column the exclusivity is evaluated under.
type ScopeField string

const (
	ByProject ScopeField = "project_id"
	ByLoan    ScopeField = "loan_id"
)

// Scope is the grouping key: all rows sharing Field = ID are siblings.
type Scope struct {
	Field ScopeField
	ID    uint64
}

// Store is implemented by repositories that own an exclusive flag column.
// All three methods must run on the caller's transaction.
type Store interface {
	// FlaggedIDsForUpdate returns the ids currently flagged in scope,
	// locking the scope's rows so concurrent enforcers serialize.
	FlaggedIDsForUpdate(ctx context.Context, s Scope) ([]uint64, error)
	// ClearSiblings unflags every row in scope except keepID (set-based,
	// single statement).
	ClearSiblings(ctx context.Context, s Scope, keepID uint64) error
	// SetFlag flags or unflags a single row by id.
	SetFlag(ctx context.Context, id uint64, on bool) error
}
