package participation

import (
	"context"

	"lendingdash-backend/internal/domain/flag"
)

type Repository interface {
	// flag.Store: IsLead exclusivity, scoped by project_id or loan_id.
	flag.Store

	Create(ctx context.Context, p *Participation) error
	Save(ctx context.Context, p *Participation) error
	GetByParticipationID(ctx context.Context, participationID string) (*Participation, error)
	GetByParticipationIDForUpdate(ctx context.Context, participationID string) (*Participation, error)

	ListByProjectID(ctx context.Context, projectID uint64) ([]Participation, error)
	// Locked variant for flows that rewrite the group afterwards.
	ListByProjectIDForUpdate(ctx context.Context, projectID uint64) ([]Participation, error)

	// UpdatePercent overwrites only the cached percent column.
	UpdatePercent(ctx context.Context, id uint64, percent *string) error
	// MarkAllPaidOff sets paid_off=true, exposure_amount=0 for every row
	// under the project (set-based). Returns rows affected.
	MarkAllPaidOff(ctx context.Context, projectID uint64) (int64, error)
	DeleteByLoanID(ctx context.Context, loanID uint64) (int64, error)
}
