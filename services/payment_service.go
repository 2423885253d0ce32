// services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"hms-backend/models"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type PaymentInput struct {
	BookingID uint    `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Notes     string  `json:"notes,omitempty"`
}

func (s *PaymentService) Create(in PaymentInput) (*models.Payment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}
	if !models.ValidPaymentMethod(in.Method) {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidPayment, in.Method)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, in.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", in.BookingID, err)
	}

	payment := models.Payment{
		BookingID: in.BookingID,
		Amount:    in.Amount,
		Method:    in.Method,
		Status:    models.PaymentStatusPending,
		Notes:     in.Notes,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &payment, nil
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Order("transaction_date DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment %d: %w", id, err)
	}
	return &payment, nil
}

func (s *PaymentService) GetByBooking(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("booking_id = ?", bookingID).
		Order("transaction_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for booking %d: %w", bookingID, err)
	}
	return payments, nil
}
