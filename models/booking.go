package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. checked_out and cancelled are terminal.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID uint `gorm:"index;column:guest_id" json:"guest_id"`
	RoomID  uint `gorm:"index;column:room_id" json:"room_id"`

	// Half-open range: the guest occupies nights [CheckInDate, CheckOutDate).
	CheckInDate  Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate Date `gorm:"column:check_out_date" json:"check_out_date"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Status string `gorm:"column:status;type:varchar(32);default:confirmed" json:"status"`

	Guest    Guest                `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room     Room                 `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Services []BookingServiceItem `gorm:"foreignKey:BookingID" json:"services,omitempty"`
	Payments []Payment            `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// Nights is the length of the stay; at least one for any valid range.
func (b Booking) Nights() int {
	n := int(b.CheckOutDate.Sub(b.CheckInDate.Time).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Overlaps reports whether the stay shares at least one night with
// [checkIn, checkOut). Half-open semantics: a booking ending exactly when
// another begins does not conflict.
func (b Booking) Overlaps(checkIn, checkOut Date) bool {
	return b.CheckInDate.Before(checkOut) && checkIn.Before(b.CheckOutDate)
}

// Covers reports whether the stay includes the night starting on day.
func (b Booking) Covers(day Date) bool {
	return !day.Before(b.CheckInDate) && day.Before(b.CheckOutDate)
}

func (b Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}
