package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// GET /api/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"cpf":   user.CPF,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

// GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.User{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR cpf LIKE ?",
			like, like, like,
		)
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// DELETE /api/admin/users/:id
//
// Usuário com agendamentos ou pedidos não é removido; melhor bloquear do que
// deixar referência órfã no histórico.
func (h *UserHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	if user.ID == adminID {
		httperr.BadRequest(c, "cannot_delete_self", "Não é possível excluir o próprio usuário.")
		return
	}

	var appointments int64
	h.db.Model(&models.Appointment{}).
		Where("user_id = ?", user.ID).
		Count(&appointments)

	var orders int64
	h.db.Model(&models.Order{}).
		Where("user_id = ?", user.ID).
		Count(&orders)

	if appointments > 0 || orders > 0 {
		httperr.Conflict(c, "user_has_references", "Usuário possui agendamentos ou pedidos.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_user"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
