package cart

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

// Carrinho por usuário em Redis: hash cart:{userID}, campo = productID,
// valor = quantidade. O carrinho vive no servidor, não no browser; checkout
// limpa a chave inteira.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

type Item struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

const defaultTTL = 7 * 24 * time.Hour

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: defaultTTL}
}

func key(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *Store) Get(ctx context.Context, userID uint) ([]Item, error) {
	fields, err := s.rdb.HGetAll(ctx, key(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(fields))
	for f, v := range fields {
		productID, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(v)
		if err != nil || qty <= 0 {
			continue
		}
		items = append(items, Item{
			ProductID: uint(productID),
			Quantity:  qty,
		})
	}

	return items, nil
}

func (s *Store) Add(ctx context.Context, userID uint, productID uint, qty int) error {
	if qty <= 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}

	k := key(userID)
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, k, strconv.FormatUint(uint64(productID), 10), int64(qty))
	pipe.Expire(ctx, k, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) SetQuantity(ctx context.Context, userID uint, productID uint, qty int) error {
	if qty < 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}

	k := key(userID)
	field := strconv.FormatUint(uint64(productID), 10)

	if qty == 0 {
		return s.rdb.HDel(ctx, k, field).Err()
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, k, field, qty)
	pipe.Expire(ctx, k, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Remove(ctx context.Context, userID uint, productID uint) error {
	return s.rdb.HDel(ctx, key(userID), strconv.FormatUint(uint64(productID), 10)).Err()
}

func (s *Store) Clear(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}
