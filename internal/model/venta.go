package model

import "time"

// Venta is a sale record. ProductName is free text, deliberately not a
// foreign key into the product catalog.
type Venta struct {
	BaseModel
	Client      string            `gorm:"type:varchar(255);not null" json:"client"`
	ProductName string            `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	UnitPrice   float64           `gorm:"not null" json:"unit_price"`
	TotalPrice  float64           `gorm:"not null" json:"total_price"` // quantity * unit_price, set on write
	Date        time.Time         `gorm:"not null" json:"date"`
	Status      TransactionStatus `gorm:"type:varchar(20);default:'Completado'" json:"status"`
}
