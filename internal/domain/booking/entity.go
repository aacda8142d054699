package booking

import (
	"time"

	"github.com/miamente/miamente-sub002/internal/models"
)

// ===============================
// Slot transitions
// ===============================

// Hold claims a free slot for a user. Holder fields only exist
// together with the held status.
func Hold(slot *models.Slot, userID uint, now time.Time) error {
	if err := CanHold(SlotStatus(slot.Status)); err != nil {
		return err
	}

	slot.Status = string(SlotHeld)
	slot.HeldBy = &userID
	slot.HeldAt = &now
	slot.UpdatedAt = now
	return nil
}

// MarkBooked finalizes a held slot after payment confirmation.
func MarkBooked(slot *models.Slot, userID uint, now time.Time) error {
	if err := CanMarkBooked(SlotStatus(slot.Status)); err != nil {
		return err
	}

	slot.Status = string(SlotBooked)
	slot.BookedBy = &userID
	slot.HeldBy = nil
	slot.HeldAt = nil
	slot.UpdatedAt = now
	return nil
}

// Release reverts a held or booked slot to free, clearing any claim.
func Release(slot *models.Slot, now time.Time) error {
	if err := CanRelease(SlotStatus(slot.Status)); err != nil {
		return err
	}

	slot.Status = string(SlotFree)
	slot.HeldBy = nil
	slot.HeldAt = nil
	slot.BookedBy = nil
	slot.UpdatedAt = now
	return nil
}

// ===============================
// Appointment transitions
// ===============================

func Confirm(ap *models.Appointment, meetingLink string, now time.Time) error {
	if err := CanConfirm(AppointmentStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.Paid = true
	ap.PaymentStatus = "approved"
	ap.MeetingLink = meetingLink
	ap.ConfirmedAt = &now
	ap.UpdatedAt = now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(AppointmentStatus(ap.Status), ap.Paid); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

// Expire cancels an abandoned pending appointment on hold timeout.
// Unlike Cancel it is driven by the sweeper, not the owner.
func Expire(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(AppointmentStatus(ap.Status), ap.Paid); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

// Overlaps reports whether two half-open time windows intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
