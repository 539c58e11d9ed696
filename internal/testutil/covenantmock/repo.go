package covenantmock

import (
	"context"

	domain "lendingdash-backend/internal/domain/covenant"
)

// Repo is a function-backed mock that satisfies covenant.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, c *domain.Covenant) error
	SaveFn               func(ctx context.Context, c *domain.Covenant) error
	DeleteFn             func(ctx context.Context, id uint64) error
	ListAutoByLoanIDFn   func(ctx context.Context, loanID uint64) ([]domain.Covenant, error)
	CountManualByLoanIDFn func(ctx context.Context, loanID uint64) (int64, error)
	DeleteAutoByLoanIDFn func(ctx context.Context, loanID uint64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Covenant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Covenant) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) ListAutoByLoanID(ctx context.Context, loanID uint64) ([]domain.Covenant, error) {
	if m.ListAutoByLoanIDFn != nil {
		return m.ListAutoByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) CountManualByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountManualByLoanIDFn != nil {
		return m.CountManualByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) DeleteAutoByLoanID(ctx context.Context, loanID uint64) error {
	if m.DeleteAutoByLoanIDFn != nil {
		return m.DeleteAutoByLoanIDFn(ctx, loanID)
	}
	return nil
}
