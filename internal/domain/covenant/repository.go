package covenant

import "context"

type Repository interface {
	Create(ctx context.Context, c *Covenant) error
	Save(ctx context.Context, c *Covenant) error
	Delete(ctx context.Context, id uint64) error

	// ListAutoByLoanID returns every auto-typed row for the loan, legacy
	// alias included, locked for update.
	ListAutoByLoanID(ctx context.Context, loanID uint64) ([]Covenant, error)
	CountManualByLoanID(ctx context.Context, loanID uint64) (int64, error)
	DeleteAutoByLoanID(ctx context.Context, loanID uint64) error
}
