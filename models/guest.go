package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Stored uppercase; guest resolution is keyed by this field.
	PassportNumber string `json:"passport_number" gorm:"column:passport_number;uniqueIndex;type:varchar(20)"`

	FirstName string `json:"first_name" gorm:"type:varchar(50)"`
	LastName  string `json:"last_name" gorm:"type:varchar(50)"`
	Phone     string `json:"phone" gorm:"type:varchar(20)"`
	Email     string `json:"email,omitempty" gorm:"type:varchar(120)"`
	Address   string `json:"address,omitempty" gorm:"type:varchar(255)"`

	Bookings []Booking `json:"-" gorm:"foreignKey:GuestID"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
