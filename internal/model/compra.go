package model

import "time"

// Compra is a purchase record. Like Venta, ProductName carries no referential
// integrity with Product.
type Compra struct {
	BaseModel
	Supplier    string            `gorm:"type:varchar(255);not null" json:"supplier"`
	ProductName string            `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	UnitCost    float64           `gorm:"not null" json:"unit_cost"`
	TotalCost   float64           `gorm:"not null" json:"total_cost"` // quantity * unit_cost, set on write
	Date        time.Time         `gorm:"not null" json:"date"`
	Status      TransactionStatus `gorm:"type:varchar(20);default:'Pendiente'" json:"status"`
}
