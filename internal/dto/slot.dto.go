package dto

import (
	"time"

	"github.com/miamente/miamente-sub002/internal/models"
)

// PublicSlot is the non-owner view of a slot. It has no holder or
// booking identity fields at all, so they cannot leak through
// serialization.
type PublicSlot struct {
	ID             uint      `json:"id"`
	ProfessionalID uint      `json:"professional_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
}

func PublicSlotFromModel(s models.Slot) PublicSlot {
	return PublicSlot{
		ID:             s.ID,
		ProfessionalID: s.ProfessionalID,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
	}
}

func PublicSlotsFromModels(slots []models.Slot) []PublicSlot {
	out := make([]PublicSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, PublicSlotFromModel(s))
	}
	return out
}
