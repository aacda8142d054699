package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/audit"
	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/models"
	"github.com/miamente/miamente-sub002/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CleanupHeldSlots struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	log     *zap.Logger
	timeout time.Duration
}

func NewCleanupHeldSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	timeout time.Duration,
) *CleanupHeldSlots {
	return &CleanupHeldSlots{
		repo:    repo,
		audit:   audit,
		log:     log,
		timeout: timeout,
	}
}

// Execute reverts holds older than the timeout and cancels their
// pending appointments. limit <= 0 disables batching (the manual
// administrative variant). A slot referenced by a paid appointment is
// left untouched: a confirmation that landed between the query and
// the sweep always wins over expiry.
func (uc *CleanupHeldSlots) Execute(ctx context.Context, limit int) (int, error) {
	cutoff := timezone.Now().Add(-uc.timeout)

	stale, err := uc.repo.ListStaleHeldSlots(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	cleaned := 0
	skippedPaid := 0

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		for i := range stale {
			slot, err := tx.GetSlotByIDForUpdate(ctx, stale[i].ID)
			if err != nil {
				return err
			}

			// re-check under the lock; the slot may have moved on
			// since the scan
			if slot.Status != string(domain.SlotHeld) || slot.UpdatedAt.After(cutoff) {
				continue
			}

			aps, err := tx.ListAppointmentsBySlot(ctx, slot.ID)
			if err != nil {
				return err
			}

			if anyPaid(aps) {
				skippedPaid++
				continue
			}

			now := timezone.Now()
			if err := domain.Release(slot, now); err != nil {
				return err
			}
			if err := tx.UpdateSlot(ctx, slot); err != nil {
				return err
			}

			for j := range aps {
				if aps[j].Status != string(domain.StatusPendingPayment) {
					continue
				}
				if err := domain.Expire(&aps[j], now); err != nil {
					return err
				}
				if err := tx.UpdateAppointment(ctx, &aps[j]); err != nil {
					return err
				}
			}

			cleaned++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.log.Info("held slot cleanup finished",
		zap.Int("scanned", len(stale)),
		zap.Int("cleaned", cleaned),
		zap.Int("skipped_paid", skippedPaid),
	)

	if cleaned > 0 {
		uc.audit.Dispatch(audit.Event{
			Action:   "holds_expired",
			Entity:   "slot",
			Metadata: map[string]int{"cleaned": cleaned},
		})
	}

	return cleaned, nil
}

func anyPaid(aps []models.Appointment) bool {
	for _, ap := range aps {
		if ap.Paid {
			return true
		}
	}
	return false
}
