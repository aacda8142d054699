package booking

import (
	"context"

	"github.com/miamente/miamente-sub002/internal/audit"
	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
	"github.com/miamente/miamente-sub002/internal/notify"
	"github.com/miamente/miamente-sub002/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// Execute cancels an unpaid appointment and releases its slot back to
// free, atomically. Paid appointments are rejected here.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	callerUserID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentByIDForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}

		if ap.UserID != callerUserID {
			return httperr.ErrPermissionDenied("not_appointment_owner", "You do not own this appointment.")
		}

		now := timezone.Now()
		if err := domain.Cancel(ap, now); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		slot, err := tx.GetSlotByIDForUpdate(ctx, ap.SlotID)
		if err != nil {
			return err
		}

		if err := domain.Release(slot, now); err != nil {
			return err
		}
		return tx.UpdateSlot(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.EmailIntent{
		Kind:             notify.IntentAppointmentCancelled,
		UserID:           ap.UserID,
		AppointmentID:    ap.ID,
		ProfessionalName: ap.ProfessionalName,
		StartTime:        ap.StartTime,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerUserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
