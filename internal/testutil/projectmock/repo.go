package projectmock

import (
	"context"

	domain "lendingdash-backend/internal/domain/project"
)

// Repo is a function-backed mock that satisfies project.Repository.
// Only set the function fields a test needs; nil getters return
// context.Canceled so forgotten wiring fails loudly.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Project) error
	SaveFn                    func(ctx context.Context, p *domain.Project) error
	GetByIDFn                 func(ctx context.Context, id uint64) (*domain.Project, error)
	GetByProjectIDFn          func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByProjectIDForUpdateFn func(ctx context.Context, projectID string) (*domain.Project, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDForUpdateFn != nil {
		return m.GetByProjectIDForUpdateFn(ctx, projectID)
	}
	return nil, context.Canceled
}
