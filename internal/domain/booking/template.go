package booking

import "time"

// AvailabilityTemplate is the recurring pattern the generator expands
// into discrete slots. It is not persisted; only its output is.
type AvailabilityTemplate struct {
	ProfessionalID uint

	StartDate time.Time // first day, midnight in the business timezone
	EndDate   time.Time // last day, inclusive

	DayStartMinutes int // minutes since midnight
	DayEndMinutes   int

	DurationMinutes int

	Weekdays map[time.Weekday]bool
}

// CandidateCount computes, from the window arithmetic alone, how many
// slot candidates the template expands to. For any generation run,
// created+skipped equals this number.
func (t AvailabilityTemplate) CandidateCount() int {
	if t.DurationMinutes <= 0 {
		return 0
	}

	perDay := 0
	for m := t.DayStartMinutes; m+t.DurationMinutes <= t.DayEndMinutes; m += t.DurationMinutes {
		perDay++
	}

	days := 0
	for day := t.StartDate; !day.After(t.EndDate); day = day.AddDate(0, 0, 1) {
		if t.Weekdays[day.Weekday()] {
			days++
		}
	}

	return days * perDay
}
