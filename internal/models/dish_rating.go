package models

// DishRating is one customer's rating of one dish, 1 to 5. Deleting either the
// customer or the dish removes the rating.
type DishRating struct {
	CustomerID int      `json:"customer_id" gorm:"primaryKey;autoIncrement:false"`
	DishID     int      `json:"dish_id" gorm:"primaryKey;autoIncrement:false"`
	Rating     int      `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5" validate:"gte=1,lte=5"`
	Customer   Customer `json:"-" validate:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Dish       Dish     `json:"-" validate:"-" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}

func (DishRating) TableName() string {
	return "dish_ratings"
}
