// services/cleaning_service.go
package services

import (
	"errors"
	"fmt"

	"hms-backend/models"

	"gorm.io/gorm"
)

type CleaningService struct {
	DB *gorm.DB
}

func NewCleaningService(db *gorm.DB) *CleaningService {
	return &CleaningService{DB: db}
}

func (s *CleaningService) GetAll() ([]models.CleaningSchedule, error) {
	var schedules []models.CleaningSchedule
	if err := s.DB.Order("room_id ASC").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("failed to list cleaning schedules: %w", err)
	}
	return schedules, nil
}

func (s *CleaningService) GetByRoom(roomID uint) (*models.CleaningSchedule, error) {
	var schedule models.CleaningSchedule
	err := s.DB.Where("room_id = ?", roomID).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to load cleaning schedule for room %d: %w", roomID, err)
	}
	return &schedule, nil
}

type CleaningUpdate struct {
	NeedsCleaning    *bool   `json:"needs_cleaning,omitempty"`
	NextCleaningDate *string `json:"next_cleaning_date,omitempty"`
}

// Upsert creates or updates the one schedule row a room may have.
func (s *CleaningService) Upsert(roomID uint, update CleaningUpdate) (*models.CleaningSchedule, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}

	schedule, err := s.GetByRoom(roomID)
	if errors.Is(err, ErrScheduleNotFound) {
		schedule = &models.CleaningSchedule{RoomID: roomID}
	} else if err != nil {
		return nil, err
	}

	if update.NeedsCleaning != nil {
		schedule.NeedsCleaning = *update.NeedsCleaning
	}
	if update.NextCleaningDate != nil {
		if *update.NextCleaningDate == "" {
			schedule.NextCleaningDate = nil
		} else {
			next, parseErr := models.ParseDate(*update.NextCleaningDate)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, parseErr)
			}
			schedule.NextCleaningDate = &next
		}
	}

	if err := s.DB.Save(schedule).Error; err != nil {
		return nil, fmt.Errorf("failed to save cleaning schedule: %w", err)
	}
	return schedule, nil
}
