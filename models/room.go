package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room statuses. The stored status is a denormalized hint for date-less
// queries; availability for a concrete date range is always derived from
// bookings.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

type Room struct {
	gorm.Model

	RoomNumber    string  `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type          string  `json:"type" gorm:"type:varchar(50);default:Basic"`
	Capacity      int     `json:"capacity" gorm:"default:2"`
	PricePerNight float64 `json:"price_per_night" gorm:"column:price_per_night"`
	Status        string  `json:"status" gorm:"type:varchar(32);default:available"`
	Floor         string  `json:"floor" gorm:"type:varchar(10)"`
	Description   string  `json:"description" gorm:"type:text"`

	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	Bookings []Booking `json:"-" gorm:"foreignKey:RoomID"`
}

func ValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusCleaning:
		return true
	}
	return false
}
