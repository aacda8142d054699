package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ProfessionalID uint `json:"professional_id"`

	// SlotID never changes once set. At most one non-cancelled
	// appointment may reference a slot.
	SlotID uint `gorm:"index" json:"slot_id"`

	Status string `gorm:"size:20;default:'pending_payment'" json:"status"`
	Paid   bool   `gorm:"default:false" json:"paid"`

	PaymentProvider string  `gorm:"size:30" json:"payment_provider"`
	PaymentAmount   float64 `json:"payment_amount"`
	PaymentCurrency string  `gorm:"size:3" json:"payment_currency"`
	PaymentStatus   string  `gorm:"size:20;default:'pending'" json:"payment_status"`

	MeetingLink string `gorm:"size:255" json:"meeting_link,omitempty"`

	// Snapshot of the slot window and professional profile taken at
	// booking time, so later profile edits do not rewrite history.
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	ProfessionalName      string    `gorm:"size:100" json:"professional_name"`
	ProfessionalSpecialty string    `gorm:"size:100" json:"professional_specialty"`
	ProfessionalRate      float64   `json:"professional_rate"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
