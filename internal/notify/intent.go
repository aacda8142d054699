package notify

import (
	"context"
	"time"
)

const (
	IntentAppointmentConfirmed = "appointment_confirmed"
	IntentAppointmentCancelled = "appointment_cancelled"
	IntentAppointmentReminder  = "appointment_reminder"
)

// EmailIntent describes an email the platform should send. The core
// only emits intents; delivery belongs to an external consumer.
type EmailIntent struct {
	Kind string `json:"kind"`

	UserID        uint `json:"user_id"`
	AppointmentID uint `json:"appointment_id"`

	ProfessionalName string    `json:"professional_name"`
	StartTime        time.Time `json:"start_time"`
	MeetingLink      string    `json:"meeting_link,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, intent EmailIntent) error
}
