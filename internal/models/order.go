package models

import (
	"time"
)

// Order represents a delivery order. An order may or may not be linked to a
// customer; an order without a PlacedOrder row is anonymous.
type Order struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement:false;check:id > 0" validate:"gt=0"`
	Date            time.Time `json:"date" gorm:"not null" validate:"required"`
	DeliveryFee     float64   `json:"delivery_fee" gorm:"not null;check:delivery_fee >= 0" validate:"gte=0"`
	DeliveryAddress string    `json:"delivery_address" gorm:"not null" validate:"min=5"`
}

func (Order) TableName() string {
	return "orders"
}
