package booking

import (
	"context"
	"time"

	"github.com/miamente/miamente-sub002/internal/models"
)

// SlotQuery filters the slot listing. Zero-value fields are ignored.
type SlotQuery struct {
	ProfessionalID uint
	From           *time.Time
	To             *time.Time
	Status         string
}

// Repository is the shared transactional store behind the booking
// core. Every write participating in the hold/confirm/expiry
// invariants must run inside Transaction; the ForUpdate reads lock
// the row for the remainder of that transaction.
type Repository interface {
	// Transaction runs fn against a transactional view of the store.
	// Any error aborts the whole unit; fn must be free of side
	// effects beyond the store, since it may be retried.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Professional, error)

	// -------- Slot --------
	CreateSlot(
		ctx context.Context,
		slot *models.Slot,
	) error

	GetSlotByID(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	GetSlotByIDForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	UpdateSlot(
		ctx context.Context,
		slot *models.Slot,
	) error

	ListSlotsInRange(
		ctx context.Context,
		professionalID uint,
		from time.Time,
		to time.Time,
	) ([]models.Slot, error)

	ListSlots(
		ctx context.Context,
		q SlotQuery,
	) ([]models.Slot, error)

	ListStaleHeldSlots(
		ctx context.Context,
		olderThan time.Time,
		limit int,
	) ([]models.Slot, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByIDForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsBySlot(
		ctx context.Context,
		slotID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
