// Package flags enforces "exactly one true flag per scope" for
// Loan.IsActive (by project) and Participation.IsLead (by project or loan).
package flags

import (
	"context"
	"errors"

	"lendingdash-backend/internal/domain/flag"
	"lendingdash-backend/internal/domain/loan"
	"lendingdash-backend/internal/domain/participation"
	"lendingdash-backend/internal/domain/uow"
)

var (
	ErrBadScope    = errors.New("flag scope not valid for entity kind")
	ErrUnknownKind = errors.New("unknown exclusive flag kind")
)

// SetExclusiveFlag is the generic primitive: within the caller's transaction,
// flag targetID and unflag every sibling in scope. The flagged-id read locks
// the scope so two concurrent calls serialize; finding more than one row
// already flagged aborts with flag.ErrInvariantViolation. Returns the ids
// whose flag value changed (siblings demoted, target if newly promoted).
func SetExclusiveFlag(ctx context.Context, store flag.Store, scope flag.Scope, targetID uint64) ([]uint64, error) {
	flagged, err := store.FlaggedIDsForUpdate(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(flagged) > 1 {
		return nil, flag.ErrInvariantViolation
	}

	var changed []uint64
	alreadySet := false
	for _, id := range flagged {
		if id == targetID {
			alreadySet = true
			continue
		}
		changed = append(changed, id)
	}
	if !alreadySet {
		changed = append(changed, targetID)
	}

	if err := store.ClearSiblings(ctx, scope, targetID); err != nil {
		return nil, err
	}
	if err := store.SetFlag(ctx, targetID, true); err != nil {
		return nil, err
	}
	return changed, nil
}

// Usecase wraps the primitive with the endpoint-shaped flows that open the
// transaction and resolve public ids.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// OnSetExclusiveFlag runs the primitive in its own transaction, dispatching
// on entity kind. Loan activity is only ever scoped by project.
func (u *Usecase) OnSetExclusiveFlag(ctx context.Context, kind flag.Kind, scope flag.Scope, targetID uint64) ([]uint64, error) {
	var changed []uint64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var store flag.Store
		switch kind {
		case flag.LoanActive:
			if scope.Field != flag.ByProject {
				return ErrBadScope
			}
			store = r.Loans
		case flag.ParticipationLead:
			store = r.Participations
		default:
			return ErrUnknownKind
		}
		var err error
		changed, err = SetExclusiveFlag(ctx, store, scope, targetID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// SetLoanActive makes the loan the single active one in its project.
// Setting a loan active does not resync covenants; only date edits do.
func (u *Usecase) SetLoanActive(ctx context.Context, loanID string) ([]uint64, error) {
	var changed []uint64
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		var err error
		changed, err = SetExclusiveFlag(ctx, r.Loans, flag.Scope{Field: flag.ByProject, ID: l.ProjectID}, l.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// SetParticipationLead makes the participation the single lead in its scope.
// The scope column is an explicit parameter: the source data is ambiguous on
// whether lead exclusivity is per-project or per-loan, so both are supported.
func (u *Usecase) SetParticipationLead(ctx context.Context, participationID string, field flag.ScopeField) ([]uint64, error) {
	var changed []uint64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Participations.GetByParticipationIDForUpdate(ctx, participationID)
		if err != nil {
			return participation.ErrNotFound
		}
		scope := flag.Scope{Field: field}
		switch field {
		case flag.ByProject:
			scope.ID = p.ProjectID
		case flag.ByLoan:
			if p.LoanID == nil {
				return ErrBadScope
			}
			scope.ID = *p.LoanID
		default:
			return ErrBadScope
		}
		changed, err = SetExclusiveFlag(ctx, r.Participations, scope, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}
