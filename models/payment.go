package models

import (
	"time"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOnline       = "online"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"index;column:booking_id" json:"booking_id"`
	Amount    float64 `gorm:"column:amount" json:"amount"`
	Method    string  `gorm:"type:varchar(32)" json:"method"`
	Status    string  `gorm:"type:varchar(32);default:pending" json:"status"`

	TransactionDate time.Time `gorm:"column:transaction_date;autoCreateTime" json:"transaction_date"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodOnline:
		return true
	}
	return false
}
