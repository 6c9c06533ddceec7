package order

import (
	"context"

	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type Repository interface {
	GetProducts(
		ctx context.Context,
		ids []uint,
	) ([]models.Product, error)

	// CreateOrderWithStock grava o pedido e baixa o estoque de cada item
	// numa única transação; estoque insuficiente aborta o pedido inteiro
	// com httperr.ErrBusiness("insufficient_stock").
	CreateOrderWithStock(
		ctx context.Context,
		o *models.Order,
	) error

	ListOrdersForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Order, error)
}
