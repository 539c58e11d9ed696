package mysql

import (
	"context"

	witnessDomain "lendingdash-backend/internal/domain/witness"

	"gorm.io/gorm"
)

type WitnessRepository struct{ db *gorm.DB }

func NewWitnessRepository(db *gorm.DB) *WitnessRepository { return &WitnessRepository{db: db} }

func (r *WitnessRepository) CreateGuarantee(ctx context.Context, g *witnessDomain.Guarantee) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *WitnessRepository) CreateEquityCommitment(ctx context.Context, e *witnessDomain.EquityCommitment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *WitnessRepository) CountGuaranteesByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&witnessDomain.Guarantee{}).
		Where("loan_id = ?", loanID).
		Count(&n)
	return n, res.Error
}

func (r *WitnessRepository) CountEquityCommitmentsByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&witnessDomain.EquityCommitment{}).
		Where("loan_id = ?", loanID).
		Count(&n)
	return n, res.Error
}
