package models

// Customer represents a registered customer
type Customer struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement:false;check:id > 0" validate:"gt=0"`
	FullName string `json:"full_name" gorm:"not null" validate:"required"`
	Age      int    `json:"age" gorm:"not null;check:age >= 18 AND age <= 120" validate:"gte=18,lte=120"`
	Phone    string `json:"phone" gorm:"type:varchar(10);not null" validate:"len=10"`
}

func (Customer) TableName() string {
	return "customers"
}
