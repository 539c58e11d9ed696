package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("loan not found")

type Loan struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	// FK to projects.id (numeric)
	ProjectID uint64 `gorm:"column:project_id;not null;index:idx_loans_project" json:"-"`
	Phase     string `gorm:"column:phase;size:64" json:"phase"`
	// At most one active loan per project (enforced by the flag usecase,
	// never by ad-hoc writes).
	IsActive bool `gorm:"column:is_active;not null;default:false;index:idx_loans_project_active" json:"is_active"`

	// The four maturity dates mirrored into auto-covenants. Null means the
	// corresponding covenant must not exist.
	IOMaturityDate    *time.Time `gorm:"column:io_maturity_date;type:date" json:"io_maturity_date"`
	MaturityDate      *time.Time `gorm:"column:maturity_date;type:date" json:"maturity_date"`
	MiniPermMaturity  *time.Time `gorm:"column:mini_perm_maturity;type:date" json:"mini_perm_maturity"`
	PermPhaseMaturity *time.Time `gorm:"column:perm_phase_maturity;type:date" json:"perm_phase_maturity"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
