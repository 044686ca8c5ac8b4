package model

import "time"

// OrderItem は注文明細。注文時点のカート行のスナップショットなので、
// 後からカタログを変えても確定済みの注文は変わらない。
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	ItemCode  string    `gorm:"type:varchar(64);not null" json:"item_code"`
	Subject   string    `gorm:"type:varchar(100);not null" json:"subject"`
	Board     string    `gorm:"type:varchar(50);not null" json:"board"`
	Level     string    `gorm:"type:varchar(50);not null" json:"level"`
	Kind      string    `gorm:"column:type;type:varchar(50);not null" json:"type"`
	YearRange string    `gorm:"type:varchar(50);not null" json:"year_range"`
	Component string    `gorm:"type:varchar(100);not null" json:"component"`
	Price     int64     `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
