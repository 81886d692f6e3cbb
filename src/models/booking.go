package models

import (
	"time"

	"explorecamp/src/types"

	"github.com/google/uuid"
)

type Booking struct {
	ID             uint                `gorm:"primarykey" json:"id"`
	Reference      uuid.UUID           `gorm:"type:uuid" json:"reference,omitempty"`
	UserID         uint                `json:"user_id,omitempty"`
	ProductID      uint                `json:"product_id,omitempty"`
	CheckIn        time.Time           `gorm:"type:date" json:"check_in"`
	CheckOut       time.Time           `gorm:"type:date" json:"check_out"`
	GuestName      string              `json:"guest_name,omitempty"`
	GuestEmail     string              `json:"guest_email,omitempty"`
	GuestPhone     string              `json:"guest_phone,omitempty"`
	SpecialRequest string              `json:"special_request,omitempty"`
	TotalPrice     float64             `json:"total_price,omitempty"`
	PaymentMethod  string              `json:"payment_method,omitempty"`
	Status         types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`

	// Populated only once the booking has been cancelled.
	CancellationCharge *float64 `json:"cancellation_charge,omitempty"`
	RefundAmount       *float64 `json:"refund_amount,omitempty"`

	User    *User    `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:product_id" json:"product,omitempty"`

	types.Timestamps
}

// Nights is the length of stay; check-out day is not slept.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
