package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/order"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) GetProducts(
	ctx context.Context,
	ids []uint,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *OrderGormRepository) CreateOrderWithStock(
	ctx context.Context,
	o *models.Order,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		for _, item := range o.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))

			if res.Error != nil {
				return res.Error
			}

			// estoque mudou desde que o carrinho foi montado
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("insufficient_stock")
			}
		}

		return tx.Create(o).Error
	})
}

func (r *OrderGormRepository) ListOrdersForUser(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
