package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/cache"
	"github.com/miamente/miamente-sub002/internal/dto"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/httpresp"
	ucBooking "github.com/miamente/miamente-sub002/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// AvailabilityHandler serves the public, unauthenticated availability
// view. Non-owners only ever see free slots and their time windows;
// the PublicSlot DTO carries no holder identity by construction.
type AvailabilityHandler struct {
	query *ucBooking.QueryAvailability
	cache *cache.AvailabilityCache
	log   *zap.Logger
}

func NewAvailabilityHandler(
	query *ucBooking.QueryAvailability,
	availabilityCache *cache.AvailabilityCache,
	log *zap.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		query: query,
		cache: availabilityCache,
		log:   log,
	}
}

// GET /api/public/professionals/:id/availability?start_date=&end_date=
func (h *AvailabilityHandler) List(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Professional id must be numeric.")
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	key := cache.Key(uint(professionalID), startDate, endDate)
	if slots, ok := h.cache.Get(c.Request.Context(), key); ok {
		httpresp.List(c, slots)
		return
	}

	in := ucBooking.QueryAvailabilityInput{
		ProfessionalID: uint(professionalID),
		StartDate:      startDate,
		EndDate:        endDate,
	}.FreeOnly()

	slots, err := h.query.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	public := dto.PublicSlotsFromModels(slots)
	h.cache.Set(c.Request.Context(), key, public)

	httpresp.List(c, public)
}
