package models

import (
	"time"
)

// Service is a catalog entry for extra hotel services (breakfast, laundry...).
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"type:varchar(100)" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `json:"price"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingServiceItem links a booking to a catalog service with a quantity.
type BookingServiceItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	ServiceID uint `gorm:"index;column:service_id" json:"service_id"`
	Quantity  int  `gorm:"default:1" json:"quantity"`

	Service Service `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
}

func (BookingServiceItem) TableName() string {
	return "booking_services"
}
