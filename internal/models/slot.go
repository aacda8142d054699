package models

import "time"

// Slot is a bookable time window owned by a professional. Instants are
// stored in UTC. Holder fields are set only while the slot is held;
// every status change goes through the domain/booking transitions.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"index:idx_slots_prof_start" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"index:idx_slots_prof_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:10;default:'free';index" json:"status"`

	HeldBy   *uint      `json:"held_by,omitempty"`
	HeldAt   *time.Time `json:"held_at,omitempty"`
	BookedBy *uint      `json:"booked_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
