// Package loandelete decides whether a loan may be deleted and runs the
// cascade when it may.
package loandelete

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lendingdash-backend/internal/domain/loan"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/usecase/exposure"
)

// ErrHasAssociations is the sentinel callers match with errors.Is; the
// concrete error is always an *AssociationsError carrying the breakdown.
var ErrHasAssociations = errors.New("loan has blocking associations")

// Blockers counts the user-owned rows that reference the loan. Any nonzero
// count blocks deletion; the user must remove those rows first.
type Blockers struct {
	ManualCovenants   int64 `json:"manual_covenants"`
	Guarantees        int64 `json:"guarantees"`
	EquityCommitments int64 `json:"equity_commitments"`
}

func (b Blockers) Any() bool {
	return b.ManualCovenants > 0 || b.Guarantees > 0 || b.EquityCommitments > 0
}

// Kinds names the blocking kinds for user-facing messaging.
func (b Blockers) Kinds() []string {
	var out []string
	if b.ManualCovenants > 0 {
		out = append(out, "manual covenants")
	}
	if b.Guarantees > 0 {
		out = append(out, "guarantees")
	}
	if b.EquityCommitments > 0 {
		out = append(out, "equity commitments")
	}
	return out
}

type AssociationsError struct{ Blockers Blockers }

func (e *AssociationsError) Error() string {
	return fmt.Sprintf("loan has blocking associations: %s", strings.Join(e.Blockers.Kinds(), ", "))
}

func (e *AssociationsError) Is(target error) bool { return target == ErrHasAssociations }

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// DeleteLoan deletes the loan and its machine-owned dependents, or refuses
// with an *AssociationsError. All inside one transaction: either the full
// cascade commits or nothing changes.
func (u *Usecase) DeleteLoan(ctx context.Context, loanID string) error {
	return u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		var b Blockers
		var err error
		if b.ManualCovenants, err = r.Covenants.CountManualByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if b.Guarantees, err = r.Witnesses.CountGuaranteesByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if b.EquityCommitments, err = r.Witnesses.CountEquityCommitmentsByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if b.Any() {
			return &AssociationsError{Blockers: b}
		}

		// Auto-covenants are machine-owned: no guard needed.
		if err := r.Covenants.DeleteAutoByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if _, err := r.Participations.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if err := r.Loans.Delete(ctx, l.ID); err != nil {
			return err
		}

		// The surviving project group lost members; keep its cached
		// percentages correct within the same transaction.
		rows, err := r.Participations.ListByProjectIDForUpdate(ctx, l.ProjectID)
		if err != nil {
			return err
		}
		return exposure.Refresh(ctx, r.Participations, rows)
	})
}
