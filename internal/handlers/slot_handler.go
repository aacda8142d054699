package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/httpresp"
	"github.com/miamente/miamente-sub002/internal/middleware"
	ucBooking "github.com/miamente/miamente-sub002/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// SlotHandler covers the professional-owner surface: generating slots
// from a recurring template and listing the full slot records.
type SlotHandler struct {
	generate *ucBooking.GenerateSlots
	query    *ucBooking.QueryAvailability
	log      *zap.Logger
}

func NewSlotHandler(
	generate *ucBooking.GenerateSlots,
	query *ucBooking.QueryAvailability,
	log *zap.Logger,
) *SlotHandler {
	return &SlotHandler{
		generate: generate,
		query:    query,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateSlotsRequest struct {
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	DaysOfWeek      []int  `json:"days_of_week"`
}

// ======================================================
// GENERATE
// ======================================================

// POST /api/me/professionals/:id/slots/generate
func (h *SlotHandler) Generate(c *gin.Context) {
	professionalID, ok := h.ownedProfessionalID(c)
	if !ok {
		return
	}

	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid generation request.")
		return
	}

	res, err := h.generate.Execute(c.Request.Context(), ucBooking.GenerateSlotsInput{
		ProfessionalID:  professionalID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		DaysOfWeek:      req.DaysOfWeek,
	})
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// LIST (OWNER VIEW)
// ======================================================

// GET /api/me/professionals/:id/slots?start_date=&end_date=&status=
func (h *SlotHandler) List(c *gin.Context) {
	professionalID, ok := h.ownedProfessionalID(c)
	if !ok {
		return
	}

	slots, err := h.query.Execute(c.Request.Context(), ucBooking.QueryAvailabilityInput{
		ProfessionalID: professionalID,
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		Status:         c.Query("status"),
	})
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// HELPERS
// ======================================================

// ownedProfessionalID resolves the :id param and enforces that the
// caller owns that professional profile.
func (h *SlotHandler) ownedProfessionalID(c *gin.Context) (uint, bool) {
	pathID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Professional id must be numeric.")
		return 0, false
	}

	tokenID, exists := c.Get(middleware.ContextProfessionalID)
	if !exists {
		httperr.Forbidden(c, "not_a_professional", "Only professional accounts manage slots.")
		return 0, false
	}

	if tokenID.(uint) != uint(pathID) {
		httperr.Forbidden(c, "not_profile_owner", "You do not own this professional profile.")
		return 0, false
	}

	return uint(pathID), true
}
