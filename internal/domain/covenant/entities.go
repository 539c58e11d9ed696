package covenant

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("covenant not found")
	// ErrInvariantViolation means two rows exist for the same
	// (loan, auto type) pair. Prior corruption; never repaired silently.
	ErrInvariantViolation = errors.New("duplicate auto-covenant rows for loan")
)

type Type string

// Auto types are machine-managed mirrors of Loan maturity fields; everything
// else is manual and exists only by explicit user action.
const (
	TypeIOMaturity       Type = "IOMaturity"
	TypeLoanMaturity     Type = "LoanMaturity"
	TypeMiniPermMaturity Type = "MiniPermMaturity"
	TypePermPhaseMaturity Type = "PermPhaseMaturity"
	// Legacy alias of PermPhaseMaturity. Read and collapsed, never written.
	TypePermanentLoanMaturity Type = "PermanentLoanMaturity"

	TypeDSCR                 Type = "DSCR"
	TypeOccupancy            Type = "Occupancy"
	TypeLiquidityRequirement Type = "LiquidityRequirement"
	TypeOther                Type = "Other"
)

var autoTypes = map[Type]struct{}{
	TypeIOMaturity:        {},
	TypeLoanMaturity:      {},
	TypeMiniPermMaturity:  {},
	TypePermPhaseMaturity: {},
}

// Canonical maps the legacy alias onto the type the synchronizer maintains.
func (t Type) Canonical() Type {
	if t == TypePermanentLoanMaturity {
		return TypePermPhaseMaturity
	}
	return t
}

// IsAuto is a static classification: no DB read, same answer every call.
func (t Type) IsAuto() bool {
	_, ok := autoTypes[t.Canonical()]
	return ok
}

// AutoTypes returns the canonical auto vocabulary in a stable order.
func AutoTypes() []Type {
	return []Type{TypeIOMaturity, TypeLoanMaturity, TypeMiniPermMaturity, TypePermPhaseMaturity}
}

type Covenant struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	CovenantID string `gorm:"column:covenant_id;type:char(32);not null;uniqueIndex:ux_covenants_covenant_id_active" json:"covenant_id"`
	// FK to projects.id
	ProjectID uint64 `gorm:"column:project_id;not null;index" json:"-"`
	// FK to loans.id; null for project-level manual covenants
	LoanID       *uint64    `gorm:"column:loan_id;index:idx_covenants_loan" json:"-"`
	CovenantType Type       `gorm:"column:covenant_type;size:64;not null;index:idx_covenants_loan" json:"covenant_type"`
	CovenantDate *time.Time `gorm:"column:covenant_date;type:date" json:"covenant_date"`
	// User-owned fields: the synchronizer never touches them on date edits.
	IsCompleted bool    `gorm:"column:is_completed;not null;default:false" json:"is_completed"`
	Notes       *string `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Covenant) TableName() string { return "covenants" }
