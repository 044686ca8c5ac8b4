package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Order は確定した注文。OrderNumberは作成時に一度だけ採番して変更しない。
// TotalAmountは常に Subtotal + DeliveryCharge。
type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber     string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"order_number"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string      `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   string      `gorm:"type:varchar(50);not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"type:varchar(255);not null" json:"customer_address"`
	CustomerCity    string      `gorm:"type:varchar(100);not null" json:"customer_city"`
	PaymentMethod   string      `gorm:"type:varchar(50);not null" json:"payment_method"`
	Subtotal        int64       `gorm:"not null" json:"subtotal"`
	DeliveryCharge  int64       `gorm:"not null" json:"delivery_charge"`
	TotalAmount     int64       `gorm:"not null" json:"total_amount"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
