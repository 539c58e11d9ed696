package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	Save(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint64) (*Project, error)
	GetByProjectID(ctx context.Context, projectID string) (*Project, error)
	// Locks the project row so concurrent stage changes serialize.
	GetByProjectIDForUpdate(ctx context.Context, projectID string) (*Project, error)
}
