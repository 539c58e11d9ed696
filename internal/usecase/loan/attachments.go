package loan

import (
	"context"
	"errors"
	"time"

	"lendingdash-backend/internal/domain/covenant"
	domainLoan "lendingdash-backend/internal/domain/loan"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/domain/witness"
	"lendingdash-backend/pkg/id"
)

// ErrAutoTypeReserved rejects manual creation of machine-managed covenant
// types: those rows only ever exist as mirrors of the loan's date fields.
var ErrAutoTypeReserved = errors.New("covenant type is machine-managed")

// AddGuarantee attaches a guarantee to the loan. Its existence blocks
// deletion of the loan from then on.
func (u *Usecase) AddGuarantee(ctx context.Context, loanID, guarantorName string, amount float64) (*witness.Guarantee, error) {
	var out *witness.Guarantee
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		g := &witness.Guarantee{
			GuaranteeID:   id.NewID32(),
			LoanID:        l.ID,
			GuarantorName: guarantorName,
			Amount:        amount,
		}
		if err := r.Witnesses.CreateGuarantee(ctx, g); err != nil {
			return err
		}
		out = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddEquityCommitment attaches an equity commitment to the loan.
func (u *Usecase) AddEquityCommitment(ctx context.Context, loanID, investorName string, amount float64) (*witness.EquityCommitment, error) {
	var out *witness.EquityCommitment
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		e := &witness.EquityCommitment{
			CommitmentID: id.NewID32(),
			LoanID:       l.ID,
			InvestorName: investorName,
			Amount:       amount,
		}
		if err := r.Witnesses.CreateEquityCommitment(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddManualCovenant creates a user-owned covenant on the loan. Auto types are
// refused; the synchronizer is the only writer of those.
func (u *Usecase) AddManualCovenant(ctx context.Context, loanID string, covType covenant.Type, date *time.Time, notes *string) (*covenant.Covenant, error) {
	if covType.IsAuto() {
		return nil, ErrAutoTypeReserved
	}
	var out *covenant.Covenant
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		c := &covenant.Covenant{
			CovenantID:   id.NewID32(),
			ProjectID:    l.ProjectID,
			LoanID:       &l.ID,
			CovenantType: covType,
			CovenantDate: date,
			Notes:        notes,
		}
		if err := r.Covenants.Create(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
