package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/httpresp"
	"github.com/miamente/miamente-sub002/internal/models"
	ucBooking "github.com/miamente/miamente-sub002/internal/usecase/booking"
)

// AdminHandler exposes the operational surface: the manual hold
// cleanup trigger and the audit trail.
type AdminHandler struct {
	db      *gorm.DB
	cleanup *ucBooking.CleanupHeldSlots
	log     *zap.Logger
}

func NewAdminHandler(
	db *gorm.DB,
	cleanup *ucBooking.CleanupHeldSlots,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		db:      db,
		cleanup: cleanup,
		log:     log,
	}
}

// POST /api/admin/cleanup-held-slots
//
// Manual variant of the scheduled sweep, without a batch limit.
func (h *AdminHandler) CleanupHeldSlots(c *gin.Context) {
	cleaned, err := h.cleanup.Execute(c.Request.Context(), 0)
	if err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"cleaned": cleaned})
}

// GET /api/admin/audit-logs
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Handle(c, h.log, err)
		return
	}

	httpresp.List(c, logs)
}
