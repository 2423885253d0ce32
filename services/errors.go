package services

import (
	"errors"
	"fmt"

	"hms-backend/models"
)

// Domain error kinds. Controllers map these to HTTP statuses.
var (
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrRoomNotFound      = errors.New("room not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrScheduleNotFound  = errors.New("cleaning schedule not found")
	ErrCapacityExceeded  = errors.New("room capacity exceeded")
	ErrRoomUnavailable   = errors.New("room unavailable")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidPhone      = errors.New("invalid phone format")
	ErrInvalidPayment    = errors.New("invalid payment")
	ErrInvalidRoomStatus = errors.New("invalid room status")
	ErrInvalidCapacity   = errors.New("capacity must be a positive integer")
)

// RoomUnavailableError carries the conflicting booking so the caller can tell
// the user which range is taken.
type RoomUnavailableError struct {
	BookingID uint
	CheckIn   models.Date
	CheckOut  models.Date
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room unavailable: conflicts with booking %d (%s to %s)",
		e.BookingID, e.CheckIn, e.CheckOut)
}

func (e *RoomUnavailableError) Is(target error) bool {
	return target == ErrRoomUnavailable
}

func newRoomUnavailableError(b *models.Booking) *RoomUnavailableError {
	return &RoomUnavailableError{
		BookingID: b.ID,
		CheckIn:   b.CheckInDate,
		CheckOut:  b.CheckOutDate,
	}
}
