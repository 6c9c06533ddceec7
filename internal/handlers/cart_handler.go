package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/cart"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type CartHandler struct {
	db   *gorm.DB
	cart *cart.Store
}

func NewCartHandler(db *gorm.DB, cartStore *cart.Store) *CartHandler {
	return &CartHandler{db: db, cart: cartStore}
}

// --------- Requests ---------

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// --------- Handlers ---------

// GET /api/cart — itens com os dados atuais do produto
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	items, err := h.cart.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_cart", "Erro ao carregar carrinho.")
		return
	}

	type cartItemOut struct {
		ProductID  uint   `json:"product_id"`
		Name       string `json:"name"`
		PriceCents int64  `json:"price_cents"`
		Stock      int    `json:"stock"`
		Quantity   int    `json:"quantity"`
	}

	out := make([]cartItemOut, 0, len(items))
	var total int64

	for _, it := range items {
		var p models.Product
		if err := h.db.First(&p, it.ProductID).Error; err != nil {
			// produto removido do catálogo: some do carrinho também
			continue
		}

		out = append(out, cartItemOut{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Stock:      p.Stock,
			Quantity:   it.Quantity,
		})
		total += p.PriceCents * int64(it.Quantity)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       out,
		"total_cents": total,
	})
}

// POST /api/cart/items
func (h *CartHandler) Add(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var product models.Product
	if err := h.db.First(&product, req.ProductID).Error; err != nil {
		httperr.BadRequest(c, "product_not_found", "Produto inválido.")
		return
	}

	if err := h.cart.Add(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PATCH /api/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.cart.SetQuantity(c.Request.Context(), userID, uint(productID), req.Quantity); err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /api/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.cart.Remove(c.Request.Context(), userID, uint(productID)); err != nil {
		httperr.Internal(c, "failed_to_update_cart", "Erro ao atualizar carrinho.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.cart.Clear(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "failed_to_update_cart", "Erro ao limpar carrinho.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
