package loan

import (
	"context"

	"lendingdash-backend/internal/domain/flag"
)

type Repository interface {
	// flag.Store: IsActive exclusivity, scoped by project_id.
	flag.Store

	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Locks the loan row up-front; used by every per-loan mutation.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByProjectID(ctx context.Context, projectID uint64) ([]Loan, error)
	// Delete removes the row; only the deletion guard calls this, after
	// the association checks passed.
	Delete(ctx context.Context, id uint64) error
}
