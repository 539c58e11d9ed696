package loan

import (
	"time"

	"lendingdash-backend/internal/usecase/covenantsync"
)

type CreateLoanInput struct {
	ProjectID string // public 32-char hex
	Phase     string

	IOMaturityDate    *time.Time
	MaturityDate      *time.Time
	MiniPermMaturity  *time.Time
	PermPhaseMaturity *time.Time
}

// UpdateDatesInput carries the full desired state of the four date fields;
// nil clears the field (and deletes the mirrored covenant).
type UpdateDatesInput struct {
	IOMaturityDate    *time.Time
	MaturityDate      *time.Time
	MiniPermMaturity  *time.Time
	PermPhaseMaturity *time.Time
}

type LoanDTO struct {
	LoanID    string `json:"loan_id"`
	ProjectID string `json:"project_id"`
	Phase     string `json:"phase"`
	IsActive  bool   `json:"is_active"`

	IOMaturityDate    *time.Time `json:"io_maturity_date"`
	MaturityDate      *time.Time `json:"maturity_date"`
	MiniPermMaturity  *time.Time `json:"mini_perm_maturity"`
	PermPhaseMaturity *time.Time `json:"perm_phase_maturity"`

	CreatedAt time.Time                `json:"created_at"`
	Sync      *covenantsync.SyncResult `json:"covenant_sync,omitempty"`
}
