package mysql

import (
	"context"

	covenantDomain "lendingdash-backend/internal/domain/covenant"

	"gorm.io/gorm"
)

// autoTypeSet is the IN-list for machine-owned rows: the canonical auto
// vocabulary plus the legacy alias still present in old data.
var autoTypeSet = append(covenantDomain.AutoTypes(), covenantDomain.TypePermanentLoanMaturity)

type CovenantRepository struct{ db *gorm.DB }

func NewCovenantRepository(db *gorm.DB) *CovenantRepository { return &CovenantRepository{db: db} }

func (r *CovenantRepository) Create(ctx context.Context, c *covenantDomain.Covenant) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CovenantRepository) Save(ctx context.Context, c *covenantDomain.Covenant) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CovenantRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&covenantDomain.Covenant{}, id).Error
}

func (r *CovenantRepository) ListAutoByLoanID(ctx context.Context, loanID uint64) ([]covenantDomain.Covenant, error) {
	var out []covenantDomain.Covenant
	res := forUpdate(r.db.WithContext(ctx)).
		Where("loan_id = ? AND covenant_type IN ?", loanID, autoTypeSet).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *CovenantRepository) CountManualByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&covenantDomain.Covenant{}).
		Where("loan_id = ? AND covenant_type NOT IN ?", loanID, autoTypeSet).
		Count(&n)
	return n, res.Error
}

func (r *CovenantRepository) DeleteAutoByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ? AND covenant_type IN ?", loanID, autoTypeSet).
		Delete(&covenantDomain.Covenant{}).Error
}
