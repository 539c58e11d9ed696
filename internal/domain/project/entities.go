package project

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("project not found")

// StageLiquidated is the one stage value with engine semantics: entering it
// zeroes every participation under the project (one-way).
const StageLiquidated = "Liquidated"

type Project struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ProjectID string         `gorm:"column:project_id;type:char(32);not null;uniqueIndex:ux_projects_project_id_active" json:"project_id"`
	Name      string         `gorm:"column:name;type:text" json:"name"`
	Stage     string         `gorm:"column:stage;size:64;index" json:"stage"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Project) TableName() string { return "projects" }
