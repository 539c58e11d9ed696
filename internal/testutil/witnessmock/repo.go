package witnessmock

import (
	"context"

	domain "lendingdash-backend/internal/domain/witness"
)

// Repo is a function-backed mock that satisfies witness.Repository.
type Repo struct {
	CreateGuaranteeFn               func(ctx context.Context, g *domain.Guarantee) error
	CreateEquityCommitmentFn        func(ctx context.Context, e *domain.EquityCommitment) error
	CountGuaranteesByLoanIDFn       func(ctx context.Context, loanID uint64) (int64, error)
	CountEquityCommitmentsByLoanIDFn func(ctx context.Context, loanID uint64) (int64, error)
}

func (m *Repo) CreateGuarantee(ctx context.Context, g *domain.Guarantee) error {
	if m.CreateGuaranteeFn != nil {
		return m.CreateGuaranteeFn(ctx, g)
	}
	return nil
}

func (m *Repo) CreateEquityCommitment(ctx context.Context, e *domain.EquityCommitment) error {
	if m.CreateEquityCommitmentFn != nil {
		return m.CreateEquityCommitmentFn(ctx, e)
	}
	return nil
}

func (m *Repo) CountGuaranteesByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountGuaranteesByLoanIDFn != nil {
		return m.CountGuaranteesByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) CountEquityCommitmentsByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountEquityCommitmentsByLoanIDFn != nil {
		return m.CountEquityCommitmentsByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}
