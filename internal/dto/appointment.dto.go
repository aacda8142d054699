package dto

import (
	"time"

	"github.com/miamente/miamente-sub002/internal/models"
)

type AppointmentListDTO struct {
	ID               uint       `json:"id"`
	SlotID           uint       `json:"slot_id"`
	ProfessionalName string     `json:"professional_name"`
	Specialty        string     `json:"specialty"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	Status           string     `json:"status"`
	Paid             bool       `json:"paid"`
	MeetingLink      string     `json:"meeting_link,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

func AppointmentListFromModels(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:               ap.ID,
			SlotID:           ap.SlotID,
			ProfessionalName: ap.ProfessionalName,
			Specialty:        ap.ProfessionalSpecialty,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			Status:           ap.Status,
			Paid:             ap.Paid,
			MeetingLink:      ap.MeetingLink,
			CancelledAt:      ap.CancelledAt,
		})
	}
	return out
}
