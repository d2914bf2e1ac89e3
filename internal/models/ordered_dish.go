package models

// OrderedDish is a single order line item. Price is a frozen copy of the dish
// price at the time the item was added, never the current dish price. Line
// items survive dish deactivation; the dish row itself cannot be deleted while
// line items reference it.
type OrderedDish struct {
	OrderID int     `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	DishID  int     `json:"dish_id" gorm:"primaryKey;autoIncrement:false"`
	Price   float64 `json:"price" gorm:"not null;check:price > 0"`
	Amount  int     `json:"amount" gorm:"not null;check:amount >= 0" validate:"gte=0"`
	Order   Order   `json:"-" validate:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Dish    Dish    `json:"-" validate:"-" gorm:"foreignKey:DishID;constraint:OnDelete:RESTRICT"`
}

func (OrderedDish) TableName() string {
	return "ordered_dishes"
}
