package models

// PlacedOrder links an order to the customer that placed it. The order id is
// the primary key, so an order is placed by at most one customer. Deleting the
// order or the customer removes the link.
type PlacedOrder struct {
	OrderID    int      `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	CustomerID int      `json:"customer_id" gorm:"not null;index"`
	Order      Order    `json:"-" validate:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Customer   Customer `json:"-" validate:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (PlacedOrder) TableName() string {
	return "placed_orders"
}
