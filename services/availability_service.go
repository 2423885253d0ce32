// services/availability_service.go
package services

import (
	"errors"
	"fmt"

	"hms-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room is free for a half-open date
// range [check_in, check_out). Two ranges overlap iff a < d and c < b; a
// booking ending on the day another begins does not conflict.
//
// Per-room booking counts are small, so availability is a single range
// predicate over the bookings table, no interval index.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// conflictScope narrows db to bookings on roomID that overlap the range.
// Cancelled bookings never conflict.
func conflictScope(db *gorm.DB, roomID uint, checkIn, checkOut models.Date) *gorm.DB {
	return db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", models.BookingStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut.Time, checkIn.Time)
}

// IsAvailable reports whether no non-cancelled booking on the room overlaps
// [checkIn, checkOut). The caller validates checkIn < checkOut.
func (s *AvailabilityService) IsAvailable(roomID uint, checkIn, checkOut models.Date) (bool, error) {
	return isAvailableTx(s.DB, roomID, checkIn, checkOut)
}

func isAvailableTx(tx *gorm.DB, roomID uint, checkIn, checkOut models.Date) (bool, error) {
	var count int64
	if err := conflictScope(tx, roomID, checkIn, checkOut).Count(&count).Error; err != nil {
		return false, fmt.Errorf("availability check failed: %w", err)
	}
	return count == 0, nil
}

// FindConflictingBooking returns the first booking that makes the range
// unavailable, or nil when the room is free. Used for 409 diagnostics.
func (s *AvailabilityService) FindConflictingBooking(roomID uint, checkIn, checkOut models.Date) (*models.Booking, error) {
	return findConflictTx(s.DB, roomID, checkIn, checkOut)
}

func findConflictTx(tx *gorm.DB, roomID uint, checkIn, checkOut models.Date) (*models.Booking, error) {
	var booking models.Booking
	err := conflictScope(tx, roomID, checkIn, checkOut).
		Order("check_in_date ASC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("conflict lookup failed: %w", err)
	}
	return &booking, nil
}

// RoomAvailability tags a room with its availability for a requested range.
// DynamicStatus is the derived value; it falls back to the cached Room.Status
// when the caller supplied no dates.
type RoomAvailability struct {
	models.Room
	Available     bool   `json:"available"`
	DynamicStatus string `json:"dynamic_status"`
}

// AnnotateRooms computes availability for a candidate set of rooms in one
// conflict query. Without a date range only the cached status hint is
// consulted (degraded mode: callers without dates get the static flag).
func (s *AvailabilityService) AnnotateRooms(rooms []models.Room, checkIn, checkOut *models.Date) ([]RoomAvailability, error) {
	out := make([]RoomAvailability, 0, len(rooms))

	if checkIn == nil || checkOut == nil {
		for _, room := range rooms {
			out = append(out, RoomAvailability{
				Room:          room,
				Available:     room.Status == models.RoomStatusAvailable,
				DynamicStatus: room.Status,
			})
		}
		return out, nil
	}

	ids := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	var conflicted []uint
	if len(ids) > 0 {
		err := s.DB.Model(&models.Booking{}).
			Where("room_id IN ?", ids).
			Where("status <> ?", models.BookingStatusCancelled).
			Where("check_in_date < ? AND check_out_date > ?", checkOut.Time, checkIn.Time).
			Distinct("room_id").
			Pluck("room_id", &conflicted).Error
		if err != nil {
			return nil, fmt.Errorf("bulk availability check failed: %w", err)
		}
	}

	taken := make(map[uint]struct{}, len(conflicted))
	for _, id := range conflicted {
		taken[id] = struct{}{}
	}

	for _, room := range rooms {
		_, busy := taken[room.ID]
		status := models.RoomStatusAvailable
		if busy {
			status = models.RoomStatusOccupied
		}
		out = append(out, RoomAvailability{
			Room:          room,
			Available:     !busy,
			DynamicStatus: status,
		})
	}
	return out, nil
}
