package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	ucschedule "github.com/gabrielbarbershop/booking-api/internal/usecase/schedule"
)

type AvailabilityHandler struct {
	getAvailability *ucschedule.GetAvailability
	tz              string
}

func NewAvailabilityHandler(
	getAvailability *ucschedule.GetAvailability,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
		tz:              tz,
	}
}

// GET /api/availability?date=YYYY-MM-DD
//
// Lista vazia é resposta válida (dia fechado ou lotado); erro de storage
// vira 500 para o front diferenciar "sem horários" de "falhou ao carregar".
func (h *AvailabilityHandler) Get(c *gin.Context) {
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

	slots, err := h.getAvailability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{Date: date},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	type slotOut struct {
		SlotID *uint  `json:"slot_id"`
		Time   string `json:"time"`
	}

	out := make([]slotOut, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotOut{
			SlotID: s.SlotID,
			Time:   s.Time.Format("15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": out,
	})
}
