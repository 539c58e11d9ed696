package mysql

import (
	"context"
	"errors"

	"lendingdash-backend/internal/domain/flag"
	loanDomain "lendingdash-backend/internal/domain/loan"

	"gorm.io/gorm"
)

var errLoanScope = errors.New("loans: active flag is scoped by project only")

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := forUpdate(r.db.WithContext(ctx)).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByProjectID(ctx context.Context, projectID uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&loanDomain.Loan{}, id).Error
}

// ---- flag.Store (IsActive, scoped by project) ----

func (r *LoanRepository) FlaggedIDsForUpdate(ctx context.Context, s flag.Scope) ([]uint64, error) {
	if s.Field != flag.ByProject {
		return nil, errLoanScope
	}
	var ids []uint64
	res := forUpdate(r.db.WithContext(ctx).Model(&loanDomain.Loan{})).
		Where("project_id = ? AND is_active = ?", s.ID, true).
		Pluck("id", &ids)
	return ids, res.Error
}

func (r *LoanRepository) ClearSiblings(ctx context.Context, s flag.Scope, keepID uint64) error {
	if s.Field != flag.ByProject {
		return errLoanScope
	}
	return r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("project_id = ? AND id <> ? AND is_active = ?", s.ID, keepID, true).
		Update("is_active", false).Error
}

func (r *LoanRepository) SetFlag(ctx context.Context, id uint64, on bool) error {
	return r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("id = ?", id).
		Update("is_active", on).Error
}
