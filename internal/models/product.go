package models

import "time"

type Product struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OperatorID     uint      `gorm:"index;not null" json:"operator_id"`
	Category       string    `gorm:"size:32;not null" json:"category"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Description    *string   `json:"description,omitempty"`
	Price          float64   `gorm:"not null" json:"price"`
	Cost           float64   `gorm:"not null;default:0" json:"cost"`
	TaxRate        float64   `gorm:"not null;default:0" json:"tax_rate"`
	StockQuantity  int       `gorm:"not null;default:0" json:"stock_quantity"`
	TrackInventory bool      `gorm:"not null;default:false" json:"track_inventory"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
