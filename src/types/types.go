package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONBArray []any

func (a JSONBArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

type ActorRole string

const (
	ROLE_USER  ActorRole = "user"
	ROLE_ADMIN ActorRole = "admin"
)

// DATE_FORMAT is the wire format for calendar dates. Booking state is kept at
// day granularity; no time component is carried.
const DATE_FORMAT = "2006-01-02"

type CreateBookingRequestBody struct {
	ProductID      uint   `json:"product_id" binding:"required"`
	CheckIn        string `json:"check_in" binding:"required,calendardate"`
	CheckOut       string `json:"check_out" binding:"required,calendardate"`
	GuestName      string `json:"guest_name" binding:"required"`
	GuestEmail     string `json:"guest_email" binding:"required,email"`
	GuestPhone     string `json:"guest_phone" binding:"required"`
	SpecialRequest string `json:"special_request,omitempty"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
}

type OpenDatesRequestBody struct {
	Dates []string `json:"dates" binding:"required,min=1,dive,calendardate"`
}

type UpdateBookingStatusRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type CreateProductRequestBody struct {
	Name          string   `json:"name" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	About         string   `json:"about,omitempty"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
	Images        []string `json:"images,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Latitude      float64  `json:"latitude,omitempty"`
	Longitude     float64  `json:"longitude,omitempty"`
	CheckInTime   string   `json:"check_in_time,omitempty"`
	CheckOutTime  string   `json:"check_out_time,omitempty"`
}

type AvailabilityQueryParams struct {
	From string `form:"from" binding:"omitempty,calendardate"`
	To   string `form:"to" binding:"omitempty,calendardate"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

// CancelBookingResult is what the cancellation calculator hands back to the
// caller. Charge plus refund always equals the total that was paid.
type CancelBookingResult struct {
	CancellationCharge float64 `json:"cancellation_charge"`
	RefundAmount       float64 `json:"refund_amount"`
	TotalPaid          float64 `json:"total_paid"`
}

type Claims struct {
	Email string    `json:"email"`
	Role  ActorRole `json:"role"`
	jwt.RegisteredClaims
}
