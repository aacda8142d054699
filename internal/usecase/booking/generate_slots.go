package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/audit"
	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
	"github.com/miamente/miamente-sub002/internal/timezone"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type GenerateSlotsInput struct {
	ProfessionalID uint

	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive

	StartTime string // HH:MM
	EndTime   string // HH:MM

	DurationMinutes int
	DaysOfWeek      []int // 0 = Sunday .. 6 = Saturday
}

type GenerateSlotsResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// ======================================================
// USE CASE
// ======================================================

type GenerateSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	tz    string
}

func NewGenerateSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	tz string,
) *GenerateSlots {
	return &GenerateSlots{
		repo:  repo,
		audit: audit,
		log:   log,
		tz:    tz,
	}
}

// Execute expands the recurring template into free slots. Each slot is
// written independently, so an interrupted run leaves no partial
// transaction behind; re-running the same template is safe because
// every already-created slot collides with its own candidate and is
// counted as skipped.
func (uc *GenerateSlots) Execute(
	ctx context.Context,
	in GenerateSlotsInput,
) (GenerateSlotsResult, error) {

	var res GenerateSlotsResult

	tmpl, err := uc.parseTemplate(in)
	if err != nil {
		return res, err
	}

	// the professional must exist before we persist anything for it
	if _, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID); err != nil {
		return res, err
	}

	duration := time.Duration(tmpl.DurationMinutes) * time.Minute

	for day := tmpl.StartDate; !day.After(tmpl.EndDate); day = day.AddDate(0, 0, 1) {
		if !tmpl.Weekdays[day.Weekday()] {
			continue
		}

		dayStart := timezone.AtMinutes(day, tmpl.DayStartMinutes)
		dayEnd := timezone.AtMinutes(day, tmpl.DayEndMinutes)

		existing, err := uc.repo.ListSlotsInRange(
			ctx,
			in.ProfessionalID,
			dayStart.UTC(),
			dayEnd.UTC(),
		)
		if err != nil {
			return res, err
		}

		for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(duration) {
			candStart := cur.UTC()
			candEnd := cur.Add(duration).UTC()

			if overlapsAny(existing, candStart, candEnd) {
				res.Skipped++
				continue
			}

			slot := &models.Slot{
				ProfessionalID: in.ProfessionalID,
				StartTime:      candStart,
				EndTime:        candEnd,
				Status:         string(domain.SlotFree),
			}

			if err := uc.repo.CreateSlot(ctx, slot); err != nil {
				return res, err
			}
			res.Created++
		}
	}

	uc.log.Info("slots generated",
		zap.Uint("professional_id", in.ProfessionalID),
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "slots_generated",
		Entity:   "professional",
		EntityID: &in.ProfessionalID,
		Metadata: res,
	})

	return res, nil
}

// ======================================================
// HELPERS
// ======================================================

func (uc *GenerateSlots) parseTemplate(in GenerateSlotsInput) (domain.AvailabilityTemplate, error) {
	var tmpl domain.AvailabilityTemplate

	if in.DurationMinutes <= 0 {
		return tmpl, httperr.ErrInvalidArgument("invalid_duration", "Slot duration must be positive.")
	}

	startDate, err := timezone.ParseDate(uc.tz, in.StartDate)
	if err != nil {
		return tmpl, httperr.ErrInvalidArgument("invalid_start_date", "Start date must be YYYY-MM-DD.")
	}

	endDate, err := timezone.ParseDate(uc.tz, in.EndDate)
	if err != nil {
		return tmpl, httperr.ErrInvalidArgument("invalid_end_date", "End date must be YYYY-MM-DD.")
	}

	if endDate.Before(startDate) {
		return tmpl, httperr.ErrInvalidArgument("invalid_date_range", "End date must not precede start date.")
	}

	startMin, err := timezone.ParseClock(in.StartTime)
	if err != nil {
		return tmpl, httperr.ErrInvalidArgument("invalid_start_time", "Start time must be HH:MM.")
	}

	endMin, err := timezone.ParseClock(in.EndTime)
	if err != nil {
		return tmpl, httperr.ErrInvalidArgument("invalid_end_time", "End time must be HH:MM.")
	}

	if endMin <= startMin {
		return tmpl, httperr.ErrInvalidArgument("invalid_time_window", "End time must be after start time.")
	}

	weekdays := make(map[time.Weekday]bool, len(in.DaysOfWeek))
	for _, d := range in.DaysOfWeek {
		if d < 0 || d > 6 {
			return tmpl, httperr.ErrInvalidArgument("invalid_weekday", "Weekdays must be between 0 and 6.")
		}
		weekdays[time.Weekday(d)] = true
	}

	return domain.AvailabilityTemplate{
		ProfessionalID:  in.ProfessionalID,
		StartDate:       startDate,
		EndDate:         endDate,
		DayStartMinutes: startMin,
		DayEndMinutes:   endMin,
		DurationMinutes: in.DurationMinutes,
		Weekdays:        weekdays,
	}, nil
}

func overlapsAny(existing []models.Slot, start, end time.Time) bool {
	for _, s := range existing {
		if domain.Overlaps(start, end, s.StartTime, s.EndTime) {
			return true
		}
	}
	return false
}
