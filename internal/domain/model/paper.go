package model

import "time"

// Paper は販売する過去問1点（Cambridge/Edexcelの試験資料）。
type Paper struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Subject   string    `gorm:"type:varchar(100);not null" json:"subject"`
	Board     string    `gorm:"type:varchar(50);not null;index" json:"board"`
	Level     string    `gorm:"type:varchar(50);not null;index" json:"level"`
	Kind      string    `gorm:"column:type;type:varchar(50);not null" json:"type"`
	YearRange string    `gorm:"type:varchar(50);not null" json:"year_range"`
	Component string    `gorm:"type:varchar(100);not null" json:"component"`
	Price     int64     `gorm:"not null" json:"price"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
