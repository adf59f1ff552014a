package models

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomReserved    RoomStatus = "reserved"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	OperatorID       uint       `gorm:"not null;uniqueIndex:idx_rooms_operator_number" json:"operator_id"`
	Number           string     `gorm:"size:16;not null;uniqueIndex:idx_rooms_operator_number" json:"number"`
	RoomType         string     `gorm:"size:32;not null" json:"room_type"`
	BasePrice        float64    `gorm:"not null" json:"base_price"`
	ShortStay3hPrice *float64   `json:"short_stay_3h_price,omitempty"`
	ShortStay6hPrice *float64   `json:"short_stay_6h_price,omitempty"`
	Floor            *int       `json:"floor,omitempty"`
	MaxOccupancy     int        `gorm:"not null;default:2" json:"max_occupancy"`
	Description      *string    `json:"description,omitempty"`
	Status           RoomStatus `gorm:"type:varchar(16);not null;default:'available'" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
