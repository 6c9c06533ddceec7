package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/order"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/httpresp"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	ucorder "github.com/gabrielbarbershop/booking-api/internal/usecase/order"
)

type OrderHandler struct {
	placeOrderUC *ucorder.PlaceOrder
	repo         domain.Repository
}

func NewOrderHandler(
	placeOrderUC *ucorder.PlaceOrder,
	repo domain.Repository,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUC: placeOrderUC,
		repo:         repo,
	}
}

// POST /api/orders — fecha o carrinho atual como pedido (pagamento na loja)
func (h *OrderHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	o, err := h.placeOrderUC.Execute(c.Request.Context(), userID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.Created(c, o)
}

// GET /api/me/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orders, err := h.repo.ListOrdersForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar pedidos.")
		return
	}

	httpresp.OK(c, orders)
}
