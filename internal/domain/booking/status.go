package booking

import "github.com/miamente/miamente-sub002/internal/httperr"

// ===============================
// Slot Status
// ===============================

type SlotStatus string

const (
	SlotFree   SlotStatus = "free"
	SlotHeld   SlotStatus = "held"
	SlotBooked SlotStatus = "booked"
)

// ===============================
// Appointment Status
// ===============================

type AppointmentStatus string

const (
	StatusPendingPayment AppointmentStatus = "pending_payment"
	StatusConfirmed      AppointmentStatus = "confirmed"
	StatusCancelled      AppointmentStatus = "cancelled"
	StatusCompleted      AppointmentStatus = "completed"
)

// ===============================
// Transition guards
// ===============================

// CanHold: only a free slot can be claimed.
func CanHold(current SlotStatus) error {
	if current != SlotFree {
		return httperr.ErrFailedPrecondition("slot_unavailable", "Slot no longer available.")
	}
	return nil
}

// CanMarkBooked: only a held slot becomes booked.
func CanMarkBooked(current SlotStatus) error {
	if current != SlotHeld {
		return httperr.ErrFailedPrecondition("slot_not_held", "Slot is not held.")
	}
	return nil
}

// CanRelease: a free slot has nothing to release.
func CanRelease(current SlotStatus) error {
	if current == SlotFree {
		return httperr.ErrFailedPrecondition("slot_not_claimed", "Slot is not claimed.")
	}
	return nil
}

// CanConfirm: the payment transition applies once, to a pending
// appointment. Cancelled is terminal.
func CanConfirm(current AppointmentStatus) error {
	if current != StatusPendingPayment {
		return httperr.ErrFailedPrecondition("appointment_not_confirmable", "Appointment cannot be confirmed in its current state.")
	}
	return nil
}

// CanCancel: only an unpaid pending appointment may be cancelled
// through the user-facing path.
func CanCancel(current AppointmentStatus, paid bool) error {
	if paid {
		return httperr.ErrFailedPrecondition("appointment_paid", "A paid appointment cannot be cancelled here.")
	}
	if current != StatusPendingPayment {
		return httperr.ErrFailedPrecondition("appointment_not_cancellable", "Appointment cannot be cancelled in its current state.")
	}
	return nil
}

func InitialAppointmentStatus() AppointmentStatus {
	return StatusPendingPayment
}
