// Package covenantsync mirrors a loan's four maturity dates into
// machine-owned covenant rows.
package covenantsync

import (
	"context"
	"time"

	"lendingdash-backend/internal/domain/covenant"
	"lendingdash-backend/internal/domain/loan"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/pkg/id"
)

type SyncResult struct {
	Created []covenant.Covenant `json:"created"`
	Updated []covenant.Covenant `json:"updated"`
	// Numeric ids of deleted rows.
	Deleted []uint64 `json:"deleted"`
}

func (r *SyncResult) empty() bool {
	return len(r.Created) == 0 && len(r.Updated) == 0 && len(r.Deleted) == 0
}

// pairs binds each loan date field to the auto type it feeds.
func pairs(l *loan.Loan) []struct {
	date *time.Time
	typ  covenant.Type
} {
	return []struct {
		date *time.Time
		typ  covenant.Type
	}{
		{l.IOMaturityDate, covenant.TypeIOMaturity},
		{l.MaturityDate, covenant.TypeLoanMaturity},
		{l.MiniPermMaturity, covenant.TypeMiniPermMaturity},
		{l.PermPhaseMaturity, covenant.TypePermPhaseMaturity},
	}
}

// Sync upserts the loan's auto-covenants against its current date fields,
// inside the caller's transaction. For each (date, type) pair: non-null date
// with no row inserts one; non-null date with a row updates only the date;
// null date deletes the row. IsCompleted and Notes are never reset.
//
// Legacy PermanentLoanMaturity rows are collapsed: adopted into
// PermPhaseMaturity when no canonical row exists, deleted when one does. The
// alias is never created. Running Sync twice on unchanged input is a no-op.
func Sync(ctx context.Context, r uow.Repos, l *loan.Loan) (*SyncResult, error) {
	existing, err := r.Covenants.ListAutoByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{}
	byType := make(map[covenant.Type]*covenant.Covenant, len(existing))
	for i := range existing {
		row := &existing[i]
		key := row.CovenantType.Canonical()
		prior, ok := byType[key]
		if !ok {
			byType[key] = row
			continue
		}
		// Two rows collapse to one key. Only the legacy alias makes that
		// legitimate; prefer the canonical row and drop the alias.
		loser := row
		if prior.CovenantType == covenant.TypePermanentLoanMaturity && row.CovenantType != covenant.TypePermanentLoanMaturity {
			byType[key] = row
			loser = prior
		}
		if loser.CovenantType != covenant.TypePermanentLoanMaturity {
			return nil, covenant.ErrInvariantViolation
		}
		if err := r.Covenants.Delete(ctx, loser.ID); err != nil {
			return nil, err
		}
		res.Deleted = append(res.Deleted, loser.ID)
	}

	for _, p := range pairs(l) {
		row := byType[p.typ]
		switch {
		case p.date != nil && row == nil:
			c := &covenant.Covenant{
				CovenantID:   id.NewID32(),
				ProjectID:    l.ProjectID,
				LoanID:       &l.ID,
				CovenantType: p.typ,
				CovenantDate: p.date,
				IsCompleted:  false,
			}
			if err := r.Covenants.Create(ctx, c); err != nil {
				return nil, err
			}
			res.Created = append(res.Created, *c)

		case p.date != nil && row != nil:
			if row.CovenantType == p.typ && row.CovenantDate != nil && row.CovenantDate.Equal(*p.date) {
				continue // unchanged
			}
			row.CovenantType = p.typ // adopts a legacy alias row
			row.CovenantDate = p.date
			if err := r.Covenants.Save(ctx, row); err != nil {
				return nil, err
			}
			res.Updated = append(res.Updated, *row)

		case p.date == nil && row != nil:
			if err := r.Covenants.Delete(ctx, row.ID); err != nil {
				return nil, err
			}
			res.Deleted = append(res.Deleted, row.ID)
		}
	}
	return res, nil
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// OnLoanDateFieldsChanged runs Sync in its own loan-locked transaction.
func (u *Usecase) OnLoanDateFieldsChanged(ctx context.Context, loanID string) (*SyncResult, error) {
	var res *SyncResult
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		var err error
		res, err = Sync(ctx, r, l)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
