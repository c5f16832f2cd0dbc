package model

// Product is a catalog entry. SKU uniqueness is enforced by the store and
// surfaces as a conflict on violating writes.
type Product struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	SKU      string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	UnitCost float64 `gorm:"not null" json:"unit_cost"`
	PVP      float64 `gorm:"not null" json:"pvp"`
	Stock    int     `gorm:"default:0" json:"stock"`
}
