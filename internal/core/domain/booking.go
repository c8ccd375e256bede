package domain

import (
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/json_types"
)

// Теги статусов бронирования, приходят из PSC API как есть
const (
	BookingTagCancelled = "CANCELLED"
	BookingTagConfirmed = "CONFIRMED"
	BookingTagPaid      = "PAID"
)

type Booking struct {
	ID            json_types.FlexID          `json:"id"`
	CheckIn       json_types.DateTimeOrEmpty `json:"checkIn"`
	CheckOut      json_types.DateTimeOrEmpty `json:"checkOut"`
	PaymentStatus string                     `json:"paymentStatus"`
	Status        string                     `json:"status"`
	GuestName     string                     `json:"guestName"`
	TotalAmount   float64                    `json:"totalAmount"`
}

// IsCancelled - бронь отменена, если отменен любой из двух независимых статусов
func (b Booking) IsCancelled() bool {
	return b.PaymentStatus == BookingTagCancelled || b.Status == BookingTagCancelled
}

func (b Booking) IsConfirmed() bool {
	return b.Status == BookingTagConfirmed || b.PaymentStatus == BookingTagPaid
}

// IsActive - у брони есть хотя бы дата заезда и она не отменена
func (b Booking) IsActive() bool {
	return !b.IsCancelled() && !b.CheckIn.IsZero()
}
