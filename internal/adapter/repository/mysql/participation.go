package mysql

import (
	"context"
	"errors"

	"lendingdash-backend/internal/domain/flag"
	participationDomain "lendingdash-backend/internal/domain/participation"

	"gorm.io/gorm"
)

var errParticipationScope = errors.New("participations: unsupported flag scope")

type ParticipationRepository struct{ db *gorm.DB }

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) Create(ctx context.Context, p *participationDomain.Participation) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ParticipationRepository) Save(ctx context.Context, p *participationDomain.Participation) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ParticipationRepository) GetByParticipationID(ctx context.Context, participationID string) (*participationDomain.Participation, error) {
	var out participationDomain.Participation
	res := r.db.WithContext(ctx).Where("participation_id = ?", participationID).First(&out)
	return &out, res.Error
}

func (r *ParticipationRepository) GetByParticipationIDForUpdate(ctx context.Context, participationID string) (*participationDomain.Participation, error) {
	var out participationDomain.Participation
	res := forUpdate(r.db.WithContext(ctx)).Where("participation_id = ?", participationID).First(&out)
	return &out, res.Error
}

func (r *ParticipationRepository) ListByProjectID(ctx context.Context, projectID uint64) ([]participationDomain.Participation, error) {
	var out []participationDomain.Participation
	res := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ParticipationRepository) ListByProjectIDForUpdate(ctx context.Context, projectID uint64) ([]participationDomain.Participation, error) {
	var out []participationDomain.Participation
	res := forUpdate(r.db.WithContext(ctx)).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ParticipationRepository) UpdatePercent(ctx context.Context, id uint64, percent *string) error {
	return r.db.WithContext(ctx).Model(&participationDomain.Participation{}).
		Where("id = ?", id).
		Update("participation_percent", percent).Error
}

func (r *ParticipationRepository) MarkAllPaidOff(ctx context.Context, projectID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&participationDomain.Participation{}).
		Where("project_id = ? AND (paid_off = ? OR exposure_amount <> 0)", projectID, false).
		Updates(map[string]any{"paid_off": true, "exposure_amount": 0})
	return res.RowsAffected, res.Error
}

func (r *ParticipationRepository) DeleteByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&participationDomain.Participation{})
	return res.RowsAffected, res.Error
}

// ---- flag.Store (IsLead, scoped by project or loan) ----

func scopeColumn(s flag.Scope) (string, error) {
	switch s.Field {
	case flag.ByProject:
		return "project_id", nil
	case flag.ByLoan:
		return "loan_id", nil
	default:
		return "", errParticipationScope
	}
}

func (r *ParticipationRepository) FlaggedIDsForUpdate(ctx context.Context, s flag.Scope) ([]uint64, error) {
	col, err := scopeColumn(s)
	if err != nil {
		return nil, err
	}
	var ids []uint64
	res := forUpdate(r.db.WithContext(ctx).Model(&participationDomain.Participation{})).
		Where(col+" = ? AND is_lead = ?", s.ID, true).
		Pluck("id", &ids)
	return ids, res.Error
}

func (r *ParticipationRepository) ClearSiblings(ctx context.Context, s flag.Scope, keepID uint64) error {
	col, err := scopeColumn(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&participationDomain.Participation{}).
		Where(col+" = ? AND id <> ? AND is_lead = ?", s.ID, keepID, true).
		Update("is_lead", false).Error
}

func (r *ParticipationRepository) SetFlag(ctx context.Context, id uint64, on bool) error {
	return r.db.WithContext(ctx).Model(&participationDomain.Participation{}).
		Where("id = ?", id).
		Update("is_lead", on).Error
}
