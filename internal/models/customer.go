package models

import "time"

type Customer struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OperatorID     uint       `gorm:"index;not null" json:"operator_id"`
	FullName       string     `gorm:"size:255;not null" json:"full_name"`
	DocumentType   string     `gorm:"size:16;not null;default:'CI'" json:"document_type"`
	DocumentNumber *string    `gorm:"size:32" json:"document_number,omitempty"`
	Phone          *string    `gorm:"size:32" json:"phone,omitempty"`
	Whatsapp       *string    `gorm:"size:32" json:"whatsapp,omitempty"`
	Email          *string    `gorm:"size:255" json:"email,omitempty"`
	Address        *string    `json:"address,omitempty"`
	City           *string    `gorm:"size:64" json:"city,omitempty"`
	Country        string     `gorm:"size:64;not null;default:'Bolivia'" json:"country"`
	Age            *int       `json:"age,omitempty"`
	Nationality    *string    `gorm:"size:64" json:"nationality,omitempty"`
	Origin         *string    `gorm:"size:128" json:"origin,omitempty"`
	TotalStays     int        `gorm:"not null;default:0" json:"total_stays"`
	TotalSpent     float64    `gorm:"not null;default:0" json:"total_spent"`
	LastStayDate   *time.Time `json:"last_stay_date,omitempty"`
	IsFrequent     bool       `gorm:"not null;default:false" json:"is_frequent"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
