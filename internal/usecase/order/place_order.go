package order

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/gabrielbarbershop/booking-api/internal/audit"
	"github.com/gabrielbarbershop/booking-api/internal/cart"
	domain "github.com/gabrielbarbershop/booking-api/internal/domain/order"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type PlaceOrder struct {
	repo  domain.Repository
	cart  *cart.Store
	audit *audit.Dispatcher
}

func NewPlaceOrder(
	repo domain.Repository,
	cartStore *cart.Store,
	audit *audit.Dispatcher,
) *PlaceOrder {
	return &PlaceOrder{
		repo:  repo,
		cart:  cartStore,
		audit: audit,
	}
}

// Execute fecha o carrinho do usuário como um pedido. O preço unitário é
// congelado no momento do pedido e a baixa de estoque acontece na mesma
// transação do insert — pedido com estoque insuficiente não grava nada.
func (uc *PlaceOrder) Execute(
	ctx context.Context,
	userID uint,
) (*models.Order, error) {

	items, err := uc.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := uc.repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	o := &models.Order{
		Number: uuid.NewString(),
		UserID: userID,
	}

	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, httperr.ErrBusiness("product_not_found")
		}

		o.Items = append(o.Items, models.OrderItem{
			ProductID:      p.ID,
			Quantity:       it.Quantity,
			UnitPriceCents: p.PriceCents,
		})
		o.TotalCents += p.PriceCents * int64(it.Quantity)
	}

	if err := uc.repo.CreateOrderWithStock(ctx, o); err != nil {
		return nil, err
	}

	// carrinho já virou pedido; falha aqui só deixa lixo com TTL
	if err := uc.cart.Clear(ctx, userID); err != nil {
		log.Printf("failed to clear cart for user %d: %v", userID, err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "order_placed",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
