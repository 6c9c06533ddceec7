package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=1"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

// GET /api/services — público, só ativos
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GET /api/admin/services
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// POST /api/admin/services
func (h *ServiceHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

// PATCH /api/admin/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.PriceCents != nil {
		service.PriceCents = *req.PriceCents
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, service)
}

// DELETE /api/admin/services/:id
//
// Serviço referenciado por agendamento não é apagado: o admin desativa
// (active=false) e ele some do catálogo sem órfãos no histórico.
func (h *ServiceHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var count int64
	h.db.Model(&models.Appointment{}).
		Where("service_id = ?", service.ID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_in_use", "Serviço possui agendamentos; desative em vez de excluir.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
