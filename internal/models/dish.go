package models

// Dish represents a dish on the menu. Price changes are only allowed while the
// dish is active; historical order items keep the price they were sold at.
type Dish struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement:false;check:id > 0" validate:"gt=0"`
	Name     string  `json:"name" gorm:"not null" validate:"min=4"`
	Price    float64 `json:"price" gorm:"not null;check:price > 0" validate:"gt=0"`
	IsActive bool    `json:"is_active" gorm:"not null"`
}

func (Dish) TableName() string {
	return "dishes"
}
