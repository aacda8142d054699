package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/dto"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/httpresp"
	"github.com/miamente/miamente-sub002/internal/middleware"
	ucBooking "github.com/miamente/miamente-sub002/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book    *ucBooking.BookSlot
	confirm *ucBooking.ConfirmPayment
	cancel  *ucBooking.CancelAppointment
	list    *ucBooking.ListAppointments
	log     *zap.Logger
}

func NewAppointmentHandler(
	book *ucBooking.BookSlot,
	confirm *ucBooking.ConfirmPayment,
	cancel *ucBooking.CancelAppointment,
	list *ucBooking.ListAppointments,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:    book,
		confirm: confirm,
		cancel:  cancel,
		list:    list,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ProfessionalID uint `json:"professional_id" binding:"required"`
	SlotID         uint `json:"slot_id" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

// POST /api/me/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), userID, req.ProfessionalID, req.SlotID)
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"appointment_id": ap.ID,
		"status":         ap.Status,
		"start_time":     ap.StartTime,
		"end_time":       ap.EndTime,
		"amount":         ap.PaymentAmount,
		"currency":       ap.PaymentCurrency,
	})
}

// ======================================================
// CONFIRM (mock payment path)
// ======================================================

// POST /api/me/appointments/:id/confirm
//
// In production the payment gateway webhook drives the same
// transition; this endpoint is the test/mock confirmation path.
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), appointmentID, userID)
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"appointment_id": ap.ID,
		"status":         ap.Status,
		"meeting_link":   ap.MeetingLink,
	})
}

// ======================================================
// CANCEL
// ======================================================

// PATCH /api/me/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), appointmentID, userID)
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"appointment_id": ap.ID,
		"status":         ap.Status,
		"cancelled_at":   ap.CancelledAt,
	})
}

// ======================================================
// LIST
// ======================================================

// GET /api/me/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.List(c, dto.AppointmentListFromModels(aps))
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return 0, false
	}
	return uint(id), true
}
