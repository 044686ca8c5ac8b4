package repository

import (
	"context"
	"errors"

	"papershop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)

	//注文番号はユーザーに見せる一意キー（DBのIDとは別物）
	FindByNumber(ctx context.Context, orderNumber string) (model.Order, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
