// Package participation owns the create/update and listing flows for
// participations. Every mutation re-aggregates its project group so the
// cached percent column always matches what the aggregator would compute.
package participation

import (
	"context"
	"errors"

	domain "lendingdash-backend/internal/domain/participation"
	"lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/usecase/exposure"
	"lendingdash-backend/pkg/id"
)

var (
	ErrInvalidExposure = errors.New("exposure amount must not be negative")
	// Liquidation pays off and zeroes the whole group; accepting writes
	// afterwards would undo that. Participations under a liquidated project
	// are frozen.
	ErrProjectLiquidated = errors.New("project is liquidated, participations are frozen")
)

type SaveInput struct {
	ProjectID      string // public 32-char hex
	LoanID         *string
	BankID         uint64
	ExposureAmount float64
	PaidOff        bool
}

type ParticipationDTO struct {
	ParticipationID      string  `json:"participation_id"`
	BankID               uint64  `json:"bank_id"`
	ExposureAmount       float64 `json:"exposure_amount"`
	PaidOff              bool    `json:"paid_off"`
	IsLead               bool    `json:"is_lead"`
	ParticipationPercent *string `json:"participation_percent"`
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create inserts the participation and refreshes the whole project group's
// cached percentages in the same transaction.
func (u *Usecase) Create(ctx context.Context, in SaveInput) (*ParticipationDTO, error) {
	if in.ExposureAmount < 0 {
		return nil, ErrInvalidExposure
	}
	var dto *ParticipationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectID(ctx, in.ProjectID)
		if err != nil {
			return project.ErrNotFound
		}
		if p.Stage == project.StageLiquidated {
			return ErrProjectLiquidated
		}
		row := &domain.Participation{
			ParticipationID: id.NewID32(),
			ProjectID:       p.ID,
			BankID:          in.BankID,
			ExposureAmount:  in.ExposureAmount,
			PaidOff:         in.PaidOff,
		}
		if in.LoanID != nil {
			l, err := r.Loans.GetByLoanID(ctx, *in.LoanID)
			if err != nil {
				return err
			}
			row.LoanID = &l.ID
		}
		if err := r.Participations.Create(ctx, row); err != nil {
			return err
		}
		if err := u.refreshGroup(ctx, r, p.ID); err != nil {
			return err
		}
		// Re-read for the refreshed percent.
		saved, err := r.Participations.GetByParticipationID(ctx, row.ParticipationID)
		if err != nil {
			return err
		}
		dto = toDTO(saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Update rewrites exposure/paid-off on the locked row, then refreshes the
// group.
func (u *Usecase) Update(ctx context.Context, participationID string, exposureAmount float64, paidOff bool) (*ParticipationDTO, error) {
	if exposureAmount < 0 {
		return nil, ErrInvalidExposure
	}
	var dto *ParticipationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Participations.GetByParticipationIDForUpdate(ctx, participationID)
		if err != nil {
			return domain.ErrNotFound
		}
		p, err := r.Projects.GetByID(ctx, row.ProjectID)
		if err != nil {
			return err
		}
		if p.Stage == project.StageLiquidated {
			return ErrProjectLiquidated
		}
		row.ExposureAmount = exposureAmount
		row.PaidOff = paidOff
		if err := r.Participations.Save(ctx, row); err != nil {
			return err
		}
		if err := u.refreshGroup(ctx, r, row.ProjectID); err != nil {
			return err
		}
		saved, err := r.Participations.GetByParticipationID(ctx, participationID)
		if err != nil {
			return err
		}
		dto = toDTO(saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListByProject assembles the response rows with percentages computed fresh
// from current sibling data, never trusting the cached column.
func (u *Usecase) ListByProject(ctx context.Context, projectID string) ([]ParticipationDTO, error) {
	var out []ParticipationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectID(ctx, projectID)
		if err != nil {
			return project.ErrNotFound
		}
		rows, err := r.Participations.ListByProjectID(ctx, p.ID)
		if err != nil {
			return err
		}
		pcts := exposure.ComputePercentages(rows)
		out = make([]ParticipationDTO, 0, len(rows))
		for i := range rows {
			dto := toDTO(&rows[i])
			dto.ParticipationPercent = pcts[rows[i].ID]
			out = append(out, *dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) refreshGroup(ctx context.Context, r uow.Repos, projectID uint64) error {
	rows, err := r.Participations.ListByProjectIDForUpdate(ctx, projectID)
	if err != nil {
		return err
	}
	return exposure.Refresh(ctx, r.Participations, rows)
}

func toDTO(p *domain.Participation) *ParticipationDTO {
	return &ParticipationDTO{
		ParticipationID:      p.ParticipationID,
		BankID:               p.BankID,
		ExposureAmount:       p.ExposureAmount,
		PaidOff:              p.PaidOff,
		IsLead:               p.IsLead,
		ParticipationPercent: p.ParticipationPercent,
	}
}
