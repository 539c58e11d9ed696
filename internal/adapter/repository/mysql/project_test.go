package mysql

import (
	"context"
	"errors"
	"testing"

	domain "lendingdash-backend/internal/domain/project"
	"lendingdash-backend/pkg/id"

	"gorm.io/gorm"
)

func TestProjectCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{ProjectID: id.NewID32(), Name: "Riverside Tower", Stage: "Construction"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByProjectID(ctx, p.ProjectID)
	if err != nil {
		t.Fatalf("GetByProjectID: %v", err)
	}
	if got.Name != "Riverside Tower" || got.Stage != "Construction" {
		t.Errorf("unexpected project: %+v", got)
	}

	byID, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.ProjectID != p.ProjectID {
		t.Errorf("GetByID returned wrong row: %+v", byID)
	}
}

func TestProjectSaveStage(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{ProjectID: id.NewID32(), Name: "Riverside Tower", Stage: "Construction"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	p.Stage = domain.StageLiquidated
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByProjectIDForUpdate(ctx, p.ProjectID)
	if err != nil {
		t.Fatalf("GetByProjectIDForUpdate: %v", err)
	}
	if got.Stage != domain.StageLiquidated {
		t.Errorf("stage not persisted: %q", got.Stage)
	}
}

func TestProjectGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetByProjectID(context.Background(), "ffffffffffffffffffffffffffffffff")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound, got %v", err)
	}
}
