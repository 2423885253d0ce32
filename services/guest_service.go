// services/guest_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hms-backend/models"
	"hms-backend/utils"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// GuestInput is the minimal record needed to register a guest at booking
// time. Passport number, first/last name and phone are required.
type GuestInput struct {
	PassportNumber string `json:"passport_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
}

// NormalizePassport uppercases and trims a passport/id number so lookups and
// inserts agree on the key.
func NormalizePassport(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func (in GuestInput) validate() error {
	if NormalizePassport(in.PassportNumber) == "" ||
		strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return ErrMissingFields
	}
	if !utils.ValidatePhone(in.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("id ASC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest %d: %w", id, err)
	}
	return &guest, nil
}

func (s *GuestService) GetByPassport(number string) (*models.Guest, error) {
	return getGuestByPassportTx(s.DB, number)
}

func getGuestByPassportTx(tx *gorm.DB, number string) (*models.Guest, error) {
	var guest models.Guest
	err := tx.Where("passport_number = ?", NormalizePassport(number)).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest by passport: %w", err)
	}
	return &guest, nil
}

// Create registers a new guest. Duplicate passport numbers are rejected.
func (s *GuestService) Create(in GuestInput) (*models.Guest, error) {
	return createGuestTx(s.DB, in)
}

func createGuestTx(tx *gorm.DB, in GuestInput) (*models.Guest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	guest := models.Guest{
		PassportNumber: NormalizePassport(in.PassportNumber),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		Address:        strings.TrimSpace(in.Address),
	}

	if err := tx.Create(&guest).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return &guest, nil
}

// ResolveOrCreate is the single guest-resolution contract used by the booking
// path: upsert keyed by normalized passport number. Runs on the supplied tx
// so a failed booking rolls the guest back too.
func ResolveOrCreateGuest(tx *gorm.DB, in GuestInput) (*models.Guest, error) {
	guest, err := getGuestByPassportTx(tx, in.PassportNumber)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, ErrGuestNotFound) {
		return nil, err
	}
	return createGuestTx(tx, in)
}
