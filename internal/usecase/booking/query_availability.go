package booking

import (
	"context"

	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
	"github.com/miamente/miamente-sub002/internal/timezone"
)

type QueryAvailabilityInput struct {
	ProfessionalID uint
	StartDate      string // optional, YYYY-MM-DD
	EndDate        string // optional, YYYY-MM-DD, inclusive
	Status         string // optional
}

type QueryAvailability struct {
	repo domain.Repository
	tz   string
}

func NewQueryAvailability(repo domain.Repository, tz string) *QueryAvailability {
	return &QueryAvailability{repo: repo, tz: tz}
}

// Execute lists slots for a professional. Visibility filtering is the
// caller's concern: handlers pass status=free and map to the public
// DTO for non-owners.
func (uc *QueryAvailability) Execute(
	ctx context.Context,
	in QueryAvailabilityInput,
) ([]models.Slot, error) {

	q := domain.SlotQuery{
		ProfessionalID: in.ProfessionalID,
		Status:         in.Status,
	}

	if in.StartDate != "" {
		from, err := timezone.ParseDate(uc.tz, in.StartDate)
		if err != nil {
			return nil, httperr.ErrInvalidArgument("invalid_start_date", "Start date must be YYYY-MM-DD.")
		}
		fromUTC := from.UTC()
		q.From = &fromUTC
	}

	if in.EndDate != "" {
		end, err := timezone.ParseDate(uc.tz, in.EndDate)
		if err != nil {
			return nil, httperr.ErrInvalidArgument("invalid_end_date", "End date must be YYYY-MM-DD.")
		}
		// inclusive end date
		toUTC := end.AddDate(0, 0, 1).UTC()
		q.To = &toUTC
	}

	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return nil, httperr.ErrInvalidArgument("invalid_date_range", "End date must not precede start date.")
	}

	return uc.repo.ListSlots(ctx, q)
}

// FreeOnly narrows a query to free slots regardless of what the
// caller asked for.
func (in QueryAvailabilityInput) FreeOnly() QueryAvailabilityInput {
	in.Status = string(domain.SlotFree)
	return in
}
