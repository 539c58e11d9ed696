package uow

import (
	"context"

	"lendingdash-backend/internal/domain/covenant"
	"lendingdash-backend/internal/domain/loan"
	"lendingdash-backend/internal/domain/participation"
	"lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/witness"
)

// Repos bundles every repository bound to one transaction. Engine code only
// ever sees rows through a Repos handed to it by the UnitOfWork, so there is
// no ambient "current transaction" anywhere.
type Repos struct {
	Projects       project.Repository
	Loans          loan.Repository
	Covenants      covenant.Repository
	Participations participation.Repository
	Witnesses      witness.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
