package booking

import (
	"context"

	"github.com/miamente/miamente-sub002/internal/audit"
	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/meeting"
	"github.com/miamente/miamente-sub002/internal/models"
	"github.com/miamente/miamente-sub002/internal/notify"
	"github.com/miamente/miamente-sub002/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type ConfirmPayment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// Execute flips a pending appointment to confirmed/paid and its slot
// to booked, atomically. The confirmation email is dispatched only
// after commit; its failure never rolls back the booking.
func (uc *ConfirmPayment) Execute(
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
		link := meeting.RoomLink(ap.ID, ap.ProfessionalID)

		if err := domain.Confirm(ap, link, now); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		slot, err := tx.GetSlotByIDForUpdate(ctx, ap.SlotID)
		if err != nil {
			return err
		}

		if err := domain.MarkBooked(slot, callerUserID, now); err != nil {
			return err
		}
		return tx.UpdateSlot(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	// fire-and-forget, outside the transaction
	uc.notifier.Dispatch(notify.EmailIntent{
		Kind:             notify.IntentAppointmentConfirmed,
		UserID:           ap.UserID,
		AppointmentID:    ap.ID,
		ProfessionalName: ap.ProfessionalName,
		StartTime:        ap.StartTime,
		MeetingLink:      ap.MeetingLink,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerUserID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
