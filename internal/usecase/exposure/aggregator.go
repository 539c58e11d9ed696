// Package exposure computes participation percentages from active exposure.
// ComputePercentages is pure: the caller fetches the full sibling set inside
// its transaction (to avoid read skew) and hands it in.
package exposure

import (
	"context"
	"math"
	"strconv"

	"lendingdash-backend/internal/domain/participation"
)

// ComputePercentages returns, for each row id, the formatted share of the
// group's active exposure: round2(100 * active / total), trailing zeros
// trimmed, "%" suffix. Paid-off rows render nil; a zero total (0/0) renders
// every row nil rather than erroring.
func ComputePercentages(rows []participation.Participation) map[uint64]*string {
	out := make(map[uint64]*string, len(rows))

	var total float64
	for _, r := range rows {
		total += r.ActiveExposure()
	}

	for _, r := range rows {
		if r.PaidOff || total <= 0 {
			out[r.ID] = nil
			continue
		}
		out[r.ID] = format(100 * r.ActiveExposure() / total)
	}
	return out
}

func format(v float64) *string {
	rounded := math.Round(v*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
	return &s
}

// percentStore is the slice of participation.Repository that Refresh needs.
type percentStore interface {
	UpdatePercent(ctx context.Context, id uint64, percent *string) error
}

// Refresh recomputes the group's percentages and persists them into the
// cached column, skipping rows that already hold the right value. Idempotent;
// must run on the same transaction that fetched rows.
func Refresh(ctx context.Context, store percentStore, rows []participation.Participation) error {
	want := ComputePercentages(rows)
	for _, r := range rows {
		if percentEqual(r.ParticipationPercent, want[r.ID]) {
			continue
		}
		if err := store.UpdatePercent(ctx, r.ID, want[r.ID]); err != nil {
			return err
		}
	}
	return nil
}

func percentEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
