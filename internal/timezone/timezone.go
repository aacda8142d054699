package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Bogota"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate reads "2006-01-02" as midnight in the business timezone.
func ParseDate(tz string, s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location(tz))
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AtMinutes returns the instant of the given day offset by minutes since midnight.
func AtMinutes(day time.Time, minutes int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		0, 0, 0, 0,
		day.Location(),
	).Add(time.Duration(minutes) * time.Minute)
}
