package mysql

import (
	"context"

	projectDomain "lendingdash-backend/internal/domain/project"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) Save(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := forUpdate(r.db.WithContext(ctx)).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}
