package booking

import (
	"context"

	"github.com/miamente/miamente-sub002/internal/audit"
	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
	"github.com/miamente/miamente-sub002/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	provider string
	currency string
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	provider string,
	currency string,
) *BookSlot {
	return &BookSlot{
		repo:     repo,
		audit:    audit,
		provider: provider,
		currency: currency,
	}
}

// Execute claims a free slot and creates the pending appointment in
// one atomic unit. The slot row is read under a row lock inside the
// transaction, so among concurrent attempts on the same slot exactly
// one observes free and commits; the rest fail the precondition.
func (uc *BookSlot) Execute(
	ctx context.Context,
	userID uint,
	professionalID uint,
	slotID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		slot, err := tx.GetSlotByIDForUpdate(ctx, slotID)
		if err != nil {
			return err
		}

		// guards against slot-id / professional-id confusion at the
		// UI boundary
		if slot.ProfessionalID != professionalID {
			return httperr.ErrInvalidArgument("slot_professional_mismatch", "Slot does not belong to this professional.")
		}

		pro, err := tx.GetProfessionalByID(ctx, professionalID)
		if err != nil {
			return err
		}
		if pro.Rate <= 0 {
			return httperr.ErrInvalidArgument("invalid_rate", "Professional has no valid rate configured.")
		}

		now := timezone.Now()
		if err := domain.Hold(slot, userID, now); err != nil {
			return err
		}
		if err := tx.UpdateSlot(ctx, slot); err != nil {
			return err
		}

		ap = &models.Appointment{
			UserID:         userID,
			ProfessionalID: professionalID,
			SlotID:         slot.ID,

			Status: string(domain.InitialAppointmentStatus()),
			Paid:   false,

			PaymentProvider: uc.provider,
			PaymentAmount:   pro.Rate,
			PaymentCurrency: uc.currency,
			PaymentStatus:   "pending",

			StartTime:             slot.StartTime,
			EndTime:               slot.EndTime,
			ProfessionalName:      pro.Name,
			ProfessionalSpecialty: pro.Specialty,
			ProfessionalRate:      pro.Rate,

			CreatedAt: now,
			UpdatedAt: now,
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_held",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
