package loanmock

import (
	"context"

	"lendingdash-backend/internal/domain/flag"
	domain "lendingdash-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository, the
// flag.Store methods included.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByProjectIDFn      func(ctx context.Context, projectID uint64) ([]domain.Loan, error)
	DeleteFn               func(ctx context.Context, id uint64) error

	FlaggedIDsForUpdateFn func(ctx context.Context, s flag.Scope) ([]uint64, error)
	ClearSiblingsFn       func(ctx context.Context, s flag.Scope, keepID uint64) error
	SetFlagFn             func(ctx context.Context, id uint64, on bool) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByProjectID(ctx context.Context, projectID uint64) ([]domain.Loan, error) {
	if m.ListByProjectIDFn != nil {
		return m.ListByProjectIDFn(ctx, projectID)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) FlaggedIDsForUpdate(ctx context.Context, s flag.Scope) ([]uint64, error) {
	if m.FlaggedIDsForUpdateFn != nil {
		return m.FlaggedIDsForUpdateFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ClearSiblings(ctx context.Context, s flag.Scope, keepID uint64) error {
	if m.ClearSiblingsFn != nil {
		return m.ClearSiblingsFn(ctx, s, keepID)
	}
	return nil
}

func (m *Repo) SetFlag(ctx context.Context, id uint64, on bool) error {
	if m.SetFlagFn != nil {
		return m.SetFlagFn(ctx, id, on)
	}
	return nil
}
