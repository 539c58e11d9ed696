package participationmock

import (
	"context"

	"lendingdash-backend/internal/domain/flag"
	domain "lendingdash-backend/internal/domain/participation"
)

// Repo is a function-backed mock that satisfies participation.Repository.
type Repo struct {
	CreateFn                        func(ctx context.Context, p *domain.Participation) error
	SaveFn                          func(ctx context.Context, p *domain.Participation) error
	GetByParticipationIDFn          func(ctx context.Context, participationID string) (*domain.Participation, error)
	GetByParticipationIDForUpdateFn func(ctx context.Context, participationID string) (*domain.Participation, error)
	ListByProjectIDFn               func(ctx context.Context, projectID uint64) ([]domain.Participation, error)
	ListByProjectIDForUpdateFn      func(ctx context.Context, projectID uint64) ([]domain.Participation, error)
	UpdatePercentFn                 func(ctx context.Context, id uint64, percent *string) error
	MarkAllPaidOffFn                func(ctx context.Context, projectID uint64) (int64, error)
	DeleteByLoanIDFn                func(ctx context.Context, loanID uint64) (int64, error)

	FlaggedIDsForUpdateFn func(ctx context.Context, s flag.Scope) ([]uint64, error)
	ClearSiblingsFn       func(ctx context.Context, s flag.Scope, keepID uint64) error
	SetFlagFn             func(ctx context.Context, id uint64, on bool) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Participation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Participation) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByParticipationID(ctx context.Context, participationID string) (*domain.Participation, error) {
	if m.GetByParticipationIDFn != nil {
		return m.GetByParticipationIDFn(ctx, participationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByParticipationIDForUpdate(ctx context.Context, participationID string) (*domain.Participation, error) {
	if m.GetByParticipationIDForUpdateFn != nil {
		return m.GetByParticipationIDForUpdateFn(ctx, participationID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByProjectID(ctx context.Context, projectID uint64) ([]domain.Participation, error) {
	if m.ListByProjectIDFn != nil {
		return m.ListByProjectIDFn(ctx, projectID)
	}
	return nil, nil
}

func (m *Repo) ListByProjectIDForUpdate(ctx context.Context, projectID uint64) ([]domain.Participation, error) {
	if m.ListByProjectIDForUpdateFn != nil {
		return m.ListByProjectIDForUpdateFn(ctx, projectID)
	}
	return nil, nil
}

func (m *Repo) UpdatePercent(ctx context.Context, id uint64, percent *string) error {
	if m.UpdatePercentFn != nil {
		return m.UpdatePercentFn(ctx, id, percent)
	}
	return nil
}

func (m *Repo) MarkAllPaidOff(ctx context.Context, projectID uint64) (int64, error) {
	if m.MarkAllPaidOffFn != nil {
		return m.MarkAllPaidOffFn(ctx, projectID)
	}
	return 0, nil
}

func (m *Repo) DeleteByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return 0, nil
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
