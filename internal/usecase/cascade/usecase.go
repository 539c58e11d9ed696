// Package cascade reacts to project stage transitions. The only stage with
// engine semantics is "Liquidated": entering it pays off and zeroes every
// participation under the project.
package cascade

import (
	"context"

	"lendingdash-backend/internal/domain/project"
	"lendingdash-backend/internal/domain/uow"
	"lendingdash-backend/internal/usecase/exposure"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// OnProjectStageChanged persists the new stage and, iff the transition enters
// StageLiquidated from another stage, rewrites the project's participations
// (paid_off=true, exposure_amount=0) and re-aggregates their cached
// percentages. Leaving Liquidated only rewrites the stage: the cascade is
// one-way, liquidation is terminal.
func (u *Usecase) OnProjectStageChanged(ctx context.Context, projectID, newStage string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
		if err != nil {
			return project.ErrNotFound
		}
		if p.Stage == newStage {
			return nil
		}
		wasLiquidated := p.Stage == project.StageLiquidated

		p.Stage = newStage
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		if newStage != project.StageLiquidated || wasLiquidated {
			return nil
		}

		if _, err := r.Participations.MarkAllPaidOff(ctx, p.ID); err != nil {
			return err
		}
		rows, err := r.Participations.ListByProjectIDForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}
		return exposure.Refresh(ctx, r.Participations, rows)
	})
}
