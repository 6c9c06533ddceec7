package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/schedule"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/httpresp"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	ucschedule "github.com/gabrielbarbershop/booking-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucschedule.CreateAppointment
	cancelUC       *ucschedule.CancelAppointment
	completeUC     *ucschedule.CompleteAppointment
	listByDateUC   *ucschedule.ListAppointmentsByDate
	listByMonthUC  *ucschedule.ListAppointmentsByMonth
	listByClientUC *ucschedule.ListAppointmentsByClient
	tz             string
}

func NewAppointmentHandler(
	createUC *ucschedule.CreateAppointment,
	cancelUC *ucschedule.CancelAppointment,
	completeUC *ucschedule.CompleteAppointment,
	listByDateUC *ucschedule.ListAppointmentsByDate,
	listByMonthUC *ucschedule.ListAppointmentsByMonth,
	listByClientUC *ucschedule.ListAppointmentsByClient,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		listByClientUC: listByClientUC,
		tz:             tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CLIENT
// ======================================================

// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		domain.CreateAppointmentInput{
			UserID:    userID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// GET /api/me/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listByClientUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// PATCH /api/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id), userID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// ADMIN
// ======================================================

// GET /api/admin/appointments?date=YYYY-MM-DD
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
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

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// GET /api/admin/appointments/month?year=&month=
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// PATCH /api/admin/appointments/:id/cancel
func (h *AppointmentHandler) AdminCancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	// requesterID zero: ação administrativa, sem checagem de dono
	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id), 0)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// PATCH /api/admin/appointments/:id/complete
func (h *AppointmentHandler) Complete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), uint(id), adminID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
