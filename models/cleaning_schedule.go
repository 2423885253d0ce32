package models

import (
	"time"
)

type CleaningSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID           uint  `gorm:"uniqueIndex;column:room_id" json:"room_id"`
	NeedsCleaning    bool  `gorm:"default:false" json:"needs_cleaning"`
	NextCleaningDate *Date `gorm:"column:next_cleaning_date" json:"next_cleaning_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
