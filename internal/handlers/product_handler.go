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
	"github.com/gabrielbarbershop/booking-api/internal/storage"
)

type ProductHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	images *storage.ImageStore
}

func NewProductHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	images *storage.ImageStore,
) *ProductHandler {
	return &ProductHandler{
		db:     db,
		audit:  audit,
		images: images,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=1"`
	Stock       int    `json:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}

type productOut struct {
	models.Product
	ImageURL string `json:"image_url"`
}

func (h *ProductHandler) withURL(p models.Product) productOut {
	return productOut{
		Product:  p,
		ImageURL: h.images.PublicURL(p.ImageKey),
	}
}

// --------- Handlers ---------

// GET /api/products — público
func (h *ProductHandler) ListPublic(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Order("id ASC")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	out := make([]productOut, 0, len(products))
	for _, p := range products {
		out = append(out, h.withURL(p))
	}

	c.JSON(http.StatusOK, out)
}

// POST /api/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "product_created",
		Entity:   "product",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusCreated, h.withURL(product))
}

// PATCH /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.PriceCents != nil {
		product.PriceCents = *req.PriceCents
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "product_updated",
		Entity:   "product",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusOK, h.withURL(product))
}

// POST /api/admin/products/:id/image — multipart "image"
func (h *ProductHandler) UploadImage(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if !h.images.Enabled() {
		httperr.BadRequest(c, "image_storage_disabled", "Upload de imagem não configurado.")
		return
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo \"image\".")
		return
	}
	defer file.Close()

	oldKey := product.ImageKey

	key, err := h.images.UploadProductImage(c.Request.Context(), product.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	product.ImageKey = key
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	// imagem anterior vira lixo se ficar; remoção é best effort
	_ = h.images.Delete(c.Request.Context(), oldKey)

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "product_image_uploaded",
		Entity:   "product",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusOK, h.withURL(product))
}

// DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	var count int64
	h.db.Model(&models.OrderItem{}).
		Where("product_id = ?", product.ID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "product_in_use", "Produto já aparece em pedidos; zere o estoque em vez de excluir.")
		return
	}

	if err := h.db.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_product"})
		return
	}

	_ = h.images.Delete(c.Request.Context(), product.ImageKey)

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
