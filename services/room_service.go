// services/room_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hms-backend/models"
	"hms-backend/utils"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter narrows room listings. Date-range filtering is handled by the
// availability engine on top of the rows returned here.
type RoomFilter struct {
	Status      string
	Capacity    *int
	MinCapacity *int
}

func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	query := s.DB.Model(&models.Room{}).Order("room_number ASC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Capacity != nil {
		query = query.Where("capacity = ?", *filter.Capacity)
	}
	if filter.MinCapacity != nil {
		query = query.Where("capacity >= ?", *filter.MinCapacity)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) GetByNumber(number string) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_number = ?", strings.TrimSpace(number)).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %q: %w", number, err)
	}
	return &room, nil
}

func (s *RoomService) Create(room models.Room) (*models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return nil, fmt.Errorf("%w: room_number", ErrMissingFields)
	}
	if room.Capacity <= 0 {
		room.Capacity = 2
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomStatus, room.Status)
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	// Protect identity and bookkeeping columns.
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	if status, ok := updates["status"].(string); ok && !models.ValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomStatus, status)
	}
	if number, ok := updates["room_number"].(string); ok && strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("%w: room_number", ErrMissingFields)
	}
	if raw, ok := updates["capacity"]; ok {
		capacity, ok := intValue(raw)
		if !ok || capacity <= 0 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidCapacity, raw)
		}
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

// intValue normalizes the numeric types an updates map may carry; JSON
// bodies decode numbers as float64.
func intValue(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// RoomFullInfo aggregates everything known about a room for the detail view.
type RoomFullInfo struct {
	Room     models.Room              `json:"room"`
	Bookings []models.Booking         `json:"bookings"`
	Cleaning *models.CleaningSchedule `json:"cleaning,omitempty"`
}

// GetFullInfo returns the room identified by its number together with its
// bookings (guests, services and payments preloaded) and cleaning schedule.
func (s *RoomService) GetFullInfo(number string) (*RoomFullInfo, error) {
	room, err := s.GetByNumber(number)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	err = s.DB.
		Preload("Guest").
		Preload("Services.Service").
		Preload("Payments").
		Where("room_id = ?", room.ID).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for room %q: %w", number, err)
	}

	info := RoomFullInfo{Room: *room, Bookings: bookings}

	var schedule models.CleaningSchedule
	err = s.DB.Where("room_id = ?", room.ID).First(&schedule).Error
	if err == nil {
		info.Cleaning = &schedule
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load cleaning schedule: %w", err)
	}

	return &info, nil
}
