package witness

import "context"

type Repository interface {
	CreateGuarantee(ctx context.Context, g *Guarantee) error
	CreateEquityCommitment(ctx context.Context, e *EquityCommitment) error

	CountGuaranteesByLoanID(ctx context.Context, loanID uint64) (int64, error)
	CountEquityCommitmentsByLoanID(ctx context.Context, loanID uint64) (int64, error)
}
