package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/models"
)

// AuditLogsHandler is read-only reporting over the audit trail. It queries
// the table directly; writes go through the audit dispatcher.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			httpresp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		q = q.Where("created_at >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			httpresp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		q = q.Where("created_at < ?", t.Add(24*time.Hour))
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, logs)
}
