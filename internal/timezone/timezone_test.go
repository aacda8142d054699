package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	if !IsValid("America/Bogota") {
		t.Fatalf("America/Bogota must be valid")
	}
	if !IsValid("UTC") {
		t.Fatalf("UTC must be valid")
	}
	if IsValid("Not/AZone") {
		t.Fatalf("garbage must be invalid")
	}
}

func TestLocationFallsBack(t *testing.T) {
	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("UTC", "2024-03-04")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if day.Year() != 2024 || day.Month() != time.March || day.Day() != 4 {
		t.Fatalf("unexpected date: %v", day)
	}
	if day.Hour() != 0 || day.Minute() != 0 {
		t.Fatalf("date must be midnight: %v", day)
	}

	if _, err := ParseDate("UTC", "04/03/2024"); err == nil {
		t.Fatalf("wrong layout must fail")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 9*60 + 30, true},
		{"23:59", 23*60 + 59, true},
		{"9:30am", 0, false},
		{"25:00", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseClock(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseClock(%q) should fail", tc.in)
		}
	}
}

func TestAtMinutes(t *testing.T) {
	loc := Location("America/Bogota")
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, loc)

	at := AtMinutes(day, 9*60+30)
	if at.Hour() != 9 || at.Minute() != 30 {
		t.Fatalf("expected 09:30 local, got %v", at)
	}
	if at.Location().String() != loc.String() {
		t.Fatalf("location must be preserved, got %s", at.Location())
	}
}
