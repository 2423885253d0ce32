// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"

	"hms-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingOptions control behavior the data model leaves open.
type BookingOptions struct {
	// RecomputeRoomStatusOnCancel re-derives the cached room status from the
	// remaining bookings when a booking is cancelled. Off by default:
	// cancellation then leaves the hint untouched.
	RecomputeRoomStatusOnCancel bool
}

// BookingService orchestrates booking creation and status transitions around
// the availability engine. All booking writes go through here; no other
// component mutates bookings or the room status hint.
type BookingService struct {
	DB   *gorm.DB
	Opts BookingOptions
}

func NewBookingService(db *gorm.DB, opts BookingOptions) *BookingService {
	return &BookingService{DB: db, Opts: opts}
}

type CreateBookingInput struct {
	RoomID       uint       `json:"room_id"`
	CheckInDate  string     `json:"check_in_date"`
	CheckOutDate string     `json:"check_out_date"`
	Adults       int        `json:"adults"`
	Children     int        `json:"children"`
	Guest        GuestInput `json:"guest"`
}

// allowed transitions; checked_out and cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.BookingStatusConfirmed: {models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusCheckedIn: {models.BookingStatusCheckedOut, models.BookingStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// lockForUpdate adds SELECT ... FOR UPDATE on MySQL. sqlite (used in tests)
// has no row locks; its single-writer model covers the same ground.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateBooking reserves a room for [check_in, check_out). The whole
// operation is one transaction: the room row is locked first, so two
// concurrent requests for the same room serialize and the overlap re-check
// inside the transaction cannot race the insert. On any failure nothing is
// committed, including a guest created on the way.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	checkIn, err := models.ParseDate(in.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	checkOut, err := models.ParseDate(in.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrInvalidDateRange)
	}

	adults := in.Adults
	if adults <= 0 {
		adults = 1
	}
	children := in.Children
	if children < 0 {
		children = 0
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", in.RoomID, err)
		}

		if adults+children > room.Capacity {
			return fmt.Errorf("%w: %d occupants, capacity %d", ErrCapacityExceeded, adults+children, room.Capacity)
		}

		guest, err := ResolveOrCreateGuest(tx, in.Guest)
		if err != nil {
			return err
		}

		// Re-checked here, under the room lock, so a concurrent creator for
		// the same room cannot slip between check and insert.
		conflict, err := findConflictTx(tx, room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if conflict != nil {
			return newRoomUnavailableError(conflict)
		}

		booking := models.Booking{
			GuestID:      guest.ID,
			RoomID:       room.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Adults:       adults,
			Children:     children,
			Status:       models.BookingStatusConfirmed,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		// Best-effort status hint; never authoritative.
		if booking.Covers(models.Today()) && room.Status == models.RoomStatusAvailable {
			if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
				Update("status", models.RoomStatusOccupied).Error; err != nil {
				return fmt.Errorf("failed to update room status: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(bookingID)
}

// UpdateStatus applies one lifecycle transition and keeps the room status
// hint roughly in step.
func (s *BookingService) UpdateStatus(bookingID uint, next string) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if !transitionAllowed(booking.Status, next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
		}

		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		switch next {
		case models.BookingStatusCheckedIn:
			return setRoomStatusTx(tx, booking.RoomID, models.RoomStatusOccupied)
		case models.BookingStatusCheckedOut:
			return setRoomStatusTx(tx, booking.RoomID, models.RoomStatusAvailable)
		case models.BookingStatusCancelled:
			if s.Opts.RecomputeRoomStatusOnCancel {
				return recomputeRoomStatusTx(tx, booking.RoomID)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(bookingID)
}

func setRoomStatusTx(tx *gorm.DB, roomID uint, status string) error {
	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update room %d status: %w", roomID, err)
	}
	return nil
}

// recomputeRoomStatusTx re-derives the cached status from the bookings that
// remain. Maintenance and cleaning are operator-set and left alone.
func recomputeRoomStatusTx(tx *gorm.DB, roomID uint) error {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	if room.Status == models.RoomStatusMaintenance || room.Status == models.RoomStatusCleaning {
		return nil
	}

	today := models.Today()
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Where("check_in_date <= ? AND check_out_date > ?", today.Time, today.Time).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to derive room %d status: %w", roomID, err)
	}

	status := models.RoomStatusAvailable
	if count > 0 {
		status = models.RoomStatusOccupied
	}
	return setRoomStatusTx(tx, roomID, status)
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Guest").
		Preload("Room").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Services.Service").
		Preload("Payments").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

// Delete removes a booking outright. Administrative correction only; normal
// cancellation is a status change, not a deletion.
func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	log.Printf("booking %d deleted", id)
	return nil
}

// AttachService adds a catalog service to a booking.
func (s *BookingService) AttachService(bookingID, serviceID uint, quantity int) (*models.BookingServiceItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	var svc models.Service
	if err := s.DB.First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service %d: %w", serviceID, err)
	}

	item := models.BookingServiceItem{
		BookingID: bookingID,
		ServiceID: serviceID,
		Quantity:  quantity,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to attach service: %w", err)
	}
	item.Service = svc
	return &item, nil
}
