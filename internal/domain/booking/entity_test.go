package booking

import (
	"testing"
	"time"

	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
)

func freeSlot() *models.Slot {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	return &models.Slot{
		ID:             1,
		ProfessionalID: 7,
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		Status:         string(SlotFree),
	}
}

func TestSlotLifecycle(t *testing.T) {
	now := time.Now()
	slot := freeSlot()

	if err := Hold(slot, 42, now); err != nil {
		t.Fatalf("Hold error: %v", err)
	}
	if slot.Status != string(SlotHeld) || slot.HeldBy == nil || *slot.HeldBy != 42 || slot.HeldAt == nil {
		t.Fatalf("hold fields inconsistent: %+v", slot)
	}

	if err := MarkBooked(slot, 42, now); err != nil {
		t.Fatalf("MarkBooked error: %v", err)
	}
	if slot.Status != string(SlotBooked) || slot.BookedBy == nil {
		t.Fatalf("booked fields inconsistent: %+v", slot)
	}
	if slot.HeldBy != nil || slot.HeldAt != nil {
		t.Fatalf("hold fields must clear on booking: %+v", slot)
	}

	if err := Release(slot, now); err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if slot.Status != string(SlotFree) || slot.HeldBy != nil || slot.BookedBy != nil {
		t.Fatalf("release must clear every claim: %+v", slot)
	}
}

func TestHoldRejectsNonFree(t *testing.T) {
	now := time.Now()
	slot := freeSlot()

	if err := Hold(slot, 42, now); err != nil {
		t.Fatalf("Hold error: %v", err)
	}

	err := Hold(slot, 43, now)
	if !httperr.IsKind(err, httperr.KindFailedPrecondition) {
		t.Fatalf("expected failed_precondition, got %v", err)
	}
	if !httperr.IsCode(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
	if *slot.HeldBy != 42 {
		t.Fatalf("failed hold must not steal the claim")
	}
}

func TestMarkBookedRequiresHeld(t *testing.T) {
	now := time.Now()
	slot := freeSlot()

	if err := MarkBooked(slot, 42, now); err == nil {
		t.Fatalf("free slot must not be bookable directly")
	}

	_ = Hold(slot, 42, now)
	_ = MarkBooked(slot, 42, now)

	// no booked -> held transition exists; a second booking attempt fails
	if err := MarkBooked(slot, 43, now); err == nil {
		t.Fatalf("booked slot must not be re-booked")
	}
}

func TestReleaseRequiresClaim(t *testing.T) {
	slot := freeSlot()
	if err := Release(slot, time.Now()); err == nil {
		t.Fatalf("free slot has nothing to release")
	}
}

func TestConfirmTransitions(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusPendingPayment)}

	if err := Confirm(ap, "https://meet.jit.si/miamente-x", now); err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) || !ap.Paid || ap.PaymentStatus != "approved" {
		t.Fatalf("confirm fields inconsistent: %+v", ap)
	}
	if ap.MeetingLink == "" || ap.ConfirmedAt == nil {
		t.Fatalf("meeting link and confirmed-at must be set: %+v", ap)
	}

	if err := Confirm(ap, "other", now); err == nil {
		t.Fatalf("confirm must not be re-triggerable")
	}
}

func TestCancelGuards(t *testing.T) {
	now := time.Now()

	paid := &models.Appointment{Status: string(StatusConfirmed), Paid: true}
	if err := Cancel(paid, now); !httperr.IsKind(err, httperr.KindFailedPrecondition) {
		t.Fatalf("paid appointment must not cancel, got %v", err)
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	if err := Cancel(cancelled, now); err == nil {
		t.Fatalf("cancelled is terminal")
	}

	pending := &models.Appointment{Status: string(StatusPendingPayment)}
	if err := Cancel(pending, now); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if pending.CancelledAt == nil {
		t.Fatalf("cancelled-at must be set")
	}
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name                 string
		aStart, aEnd, bStart, bEnd time.Time
		want                 bool
	}{
		{"identical", base, base.Add(time.Hour), base, base.Add(time.Hour), true},
		{"contained", base, base.Add(time.Hour), base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"partial", base, base.Add(time.Hour), base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"adjacent", base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"disjoint", base, base.Add(time.Hour), base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestTemplateCandidateCount(t *testing.T) {
	// one Monday, 09:00-12:00, 30-minute steps -> 6 candidates
	tmpl := AvailabilityTemplate{
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DayStartMinutes: 9 * 60,
		DayEndMinutes:   12 * 60,
		DurationMinutes: 30,
		Weekdays:        map[time.Weekday]bool{time.Monday: true},
	}
	if got := tmpl.CandidateCount(); got != 6 {
		t.Fatalf("expected 6 candidates, got %d", got)
	}

	// partial trailing step is discarded
	tmpl.DayEndMinutes = 10*60 + 15
	if got := tmpl.CandidateCount(); got != 2 {
		t.Fatalf("expected 2 candidates, got %d", got)
	}

	// no weekdays selected
	tmpl.Weekdays = nil
	if got := tmpl.CandidateCount(); got != 0 {
		t.Fatalf("expected 0 candidates, got %d", got)
	}
}
