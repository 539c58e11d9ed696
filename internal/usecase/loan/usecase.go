package loan

import (
	"context"

	domainLoan "lendingdash-backend/internal/domain/loan"
	"lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/usecase/covenantsync"
	"lendingdash-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create inserts the loan and mirrors its date fields into covenants in the
// same transaction, so a loan is never visible without its auto-covenants.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectID(ctx, in.ProjectID)
		if err != nil {
			return project.ErrNotFound
		}

		l := &domainLoan.Loan{
			LoanID:            id.NewID32(),
			ProjectID:         p.ID,
			Phase:             in.Phase,
			IOMaturityDate:    in.IOMaturityDate,
			MaturityDate:      in.MaturityDate,
			MiniPermMaturity:  in.MiniPermMaturity,
			PermPhaseMaturity: in.PermPhaseMaturity,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		res, err := covenantsync.Sync(ctx, r, l)
		if err != nil {
			return err
		}
		dto = toDTO(l, in.ProjectID, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// UpdateDates rewrites the four maturity fields and resyncs covenants, all on
// the locked loan row.
func (u *Usecase) UpdateDates(ctx context.Context, loanID string, in UpdateDatesInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		l.IOMaturityDate = in.IOMaturityDate
		l.MaturityDate = in.MaturityDate
		l.MiniPermMaturity = in.MiniPermMaturity
		l.PermPhaseMaturity = in.PermPhaseMaturity
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		res, err := covenantsync.Sync(ctx, r, l)
		if err != nil {
			return err
		}
		dto = toDTO(l, "", res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		dto = toDTO(l, "", nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(l *domainLoan.Loan, projectID string, res *covenantsync.SyncResult) *LoanDTO {
	return &LoanDTO{
		LoanID:            l.LoanID,
		ProjectID:         projectID,
		Phase:             l.Phase,
		IsActive:          l.IsActive,
		IOMaturityDate:    l.IOMaturityDate,
		MaturityDate:      l.MaturityDate,
		MiniPermMaturity:  l.MiniPermMaturity,
		PermPhaseMaturity: l.PermPhaseMaturity,
		CreatedAt:         l.CreatedAt,
		Sync:              res,
	}
}
