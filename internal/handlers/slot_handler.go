package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	ucschedule "github.com/gabrielbarbershop/booking-api/internal/usecase/schedule"
)

type SlotHandler struct {
	db        *gorm.DB
	saveDayUC *ucschedule.SaveDaySlots
	setSlotUC *ucschedule.SetSlotAvailability
	tz        string
}

func NewSlotHandler(
	db *gorm.DB,
	saveDayUC *ucschedule.SaveDaySlots,
	setSlotUC *ucschedule.SetSlotAvailability,
	tz string,
) *SlotHandler {
	return &SlotHandler{
		db:        db,
		saveDayUC: saveDayUC,
		setSlotUC: setSlotUC,
		tz:        tz,
	}
}

// --------- Requests ---------

type SaveDayRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

type SetSlotAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// --------- Handlers ---------

// GET /api/admin/slots?date=YYYY-MM-DD
func (h *SlotHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	var slots []models.AvailabilitySlot
	if err := h.db.
		Where("slot_time >= ? AND slot_time < ?", dayStart, dayEnd).
		Order("slot_time ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_slots", "Erro ao listar horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// POST /api/admin/slots/day — materializa o template do dia
func (h *SlotHandler) SaveDay(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(h.tz, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.saveDayUC.Execute(c.Request.Context(), date, adminID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"date":  req.Date,
		"slots": slots,
	})
}

// PATCH /api/admin/slots/:id/availability
func (h *SlotHandler) SetAvailability(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetSlotAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slot, err := h.setSlotUC.Execute(c.Request.Context(), uint(id), *req.Available, adminID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}
