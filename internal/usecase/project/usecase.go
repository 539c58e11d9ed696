// Package project owns the create/read flows for projects. Stage changes go
// through the cascade usecase instead, because they carry engine semantics.
package project

import (
	"context"
	"time"

	domain "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/pkg/id"
)

type CreateProjectInput struct {
	Name  string
	Stage string
}

type ProjectDTO struct {
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Create(ctx context.Context, in CreateProjectInput) (*ProjectDTO, error) {
	var dto *ProjectDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p := &domain.Project{
			ProjectID: id.NewID32(),
			Name:      in.Name,
			Stage:     in.Stage,
		}
		if err := r.Projects.Create(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, projectID string) (*ProjectDTO, error) {
	var dto *ProjectDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectID(ctx, projectID)
		if err != nil {
			return domain.ErrNotFound
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(p *domain.Project) *ProjectDTO {
	return &ProjectDTO{
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Stage:     p.Stage,
		CreatedAt: p.CreatedAt,
	}
}
