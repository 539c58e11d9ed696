package participation

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("participation not found")

type Participation struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ParticipationID string `gorm:"column:participation_id;type:char(32);not null;uniqueIndex:ux_participations_participation_id_active" json:"participation_id"`
	// FK to projects.id
	ProjectID uint64 `gorm:"column:project_id;not null;index:idx_participations_project" json:"-"`
	// FK to loans.id; null when the participation is project-level only
	LoanID *uint64 `gorm:"column:loan_id;index:idx_participations_loan" json:"-"`
	BankID uint64  `gorm:"column:bank_id;not null;index" json:"bank_id"`

	ExposureAmount float64 `gorm:"column:exposure_amount;type:decimal(18,2);not null;default:0" json:"exposure_amount"`
	PaidOff        bool    `gorm:"column:paid_off;not null;default:false" json:"paid_off"`
	// At most one lead per scope (project or loan, per deployment).
	IsLead bool `gorm:"column:is_lead;not null;default:false" json:"is_lead"`
	// Cached rendering of the share percentage. Recomputed on every mutation
	// touching the scope; a display optimization, never authoritative.
	ParticipationPercent *string `gorm:"column:participation_percent;size:32" json:"participation_percent"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Participation) TableName() string { return "participations" }

// ActiveExposure is the aggregation basis: exposure if not paid off, else 0.
func (p Participation) ActiveExposure() float64 {
	if p.PaidOff {
		return 0
	}
	return p.ExposureAmount
}
