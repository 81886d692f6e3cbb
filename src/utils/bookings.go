package utils

import (
	"errors"
	"log"
	"time"

	"explorecamp/src/db"
	"explorecamp/src/lib"
	"explorecamp/src/models"
	"explorecamp/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReserveBooking validates a booking request, prices it server-side and
// commits the booking row together with the ledger update as one transaction.
// Precondition failures map onto the rejection errors in types; first failure
// wins.
func ReserveBooking(params *types.CreateBookingRequestBody, userId uint) (*models.Booking, error) {
	checkIn, err := ParseDate(params.CheckIn)
	if err != nil {
		return nil, types.ErrInvalidRange
	}
	checkOut, err := ParseDate(params.CheckOut)
	if err != nil {
		return nil, types.ErrInvalidRange
	}
	if !checkIn.Before(checkOut) {
		return nil, types.ErrInvalidRange
	}
	if checkIn.Before(Today()) {
		return nil, types.ErrPastDate
	}

	var booking models.Booking
	d := db.GetDb()
	err = d.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.
			Model(&models.Product{}).
			Where(&models.Product{ID: params.ProductID}).
			First(&product).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrProductNotFound
			}
			return err
		}

		// Row locks on the slots make the check-then-mark below atomic
		// against a concurrent reservation for overlapping days.
		slots, err := LockAvailabilityRange(tx, product.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !rangeIsFree(slots, checkIn, checkOut) {
			return types.ErrDatesUnavailable
		}

		nights := len(DatesIn(checkIn, checkOut))
		booking = models.Booking{
			Reference:      uuid.New(),
			UserID:         userId,
			ProductID:      product.ID,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			GuestName:      params.GuestName,
			GuestEmail:     params.GuestEmail,
			GuestPhone:     params.GuestPhone,
			SpecialRequest: params.SpecialRequest,
			TotalPrice:     ComputeTotalPrice(nights, product.PricePerNight),
			PaymentMethod:  params.PaymentMethod,
			Status:         types.BOOKING_PENDING,
		}
		if err := tx.Create(&booking).Error; err != nil {
			log.Printf("Error creating Booking for product [%d]: %s\n", product.ID, err.Error())
			return types.ErrTransactionFailed
		}
		if err := MarkAvailabilityRange(tx, product.ID, checkIn, checkOut, true); err != nil {
			return err
		}
		booking.Product = &product
		return nil
	})
	if err != nil {
		return nil, err
	}
	go lib.InvalidateKeys(AvailabilityCacheKey(booking.ProductID))
	return &booking, nil
}

// CancelBooking runs the cancellation calculator for the owning user (or an
// administrator): charge and refund are computed, the booking is moved to
// cancelled and the ledger days of the original stay are released.
func CancelBooking(bookingId uint, requesterId uint, actor types.ActorRole) (*types.CancelBookingResult, error) {
	var result *types.CancelBookingResult
	var productId uint
	d := db.GetDb()
	err := d.Transaction(func(tx *gorm.DB) error {
		booking, err := lockBooking(tx, bookingId)
		if err != nil {
			return err
		}
		if actor != types.ROLE_ADMIN && booking.UserID != requesterId {
			return types.ErrForbidden
		}
		switch booking.Status {
		case types.BOOKING_PENDING:
			return types.ErrCancelPending
		case types.BOOKING_CANCELLED:
			return types.ErrCancelCancelled
		}
		result, err = cancelLocked(tx, booking)
		if err != nil {
			return err
		}
		productId = booking.ProductID
		return nil
	})
	if err != nil {
		return nil, err
	}
	go lib.InvalidateKeys(AvailabilityCacheKey(productId))
	return result, nil
}

// SetBookingStatus moves a booking through the status state machine. A move
// to cancelled is routed through the same calculator as a user cancellation
// so charge and refund are never skipped.
func SetBookingStatus(bookingId uint, newStatus types.BookingStatus, actor types.ActorRole) (*models.Booking, error) {
	var booking *models.Booking
	d := db.GetDb()
	err := d.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBooking(tx, bookingId)
		if err != nil {
			return err
		}
		if err := types.CheckTransition(booking.Status, newStatus, actor); err != nil {
			return err
		}
		if newStatus == types.BOOKING_CANCELLED {
			if _, err := cancelLocked(tx, booking); err != nil {
				return err
			}
			return nil
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Update("status", newStatus).
			Error; err != nil {
			return err
		}
		booking.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	if booking.Status == types.BOOKING_CANCELLED {
		go lib.InvalidateKeys(AvailabilityCacheKey(booking.ProductID))
	}
	return booking, nil
}

func lockBooking(tx *gorm.DB, bookingId uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}}).
		Where(&models.Booking{ID: bookingId}).
		First(&booking).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// cancelLocked does the shared cancellation bookkeeping for a booking the
// caller already holds locked and has authorized: persist status, charge and
// refund, then release exactly the stored [check-in, check-out) days.
func cancelLocked(tx *gorm.DB, booking *models.Booking) (*types.CancelBookingResult, error) {
	charge := CancellationCharge(booking.TotalPrice)
	refund := booking.TotalPrice - charge
	if err := tx.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: booking.ID}).
		Updates(map[string]any{
			"status":              types.BOOKING_CANCELLED,
			"cancellation_charge": charge,
			"refund_amount":       refund,
		}).
		Error; err != nil {
		return nil, err
	}
	if err := ReleaseAvailabilityRange(tx, booking.ProductID, booking.CheckIn, booking.CheckOut); err != nil {
		return nil, err
	}
	booking.Status = types.BOOKING_CANCELLED
	booking.CancellationCharge = &charge
	booking.RefundAmount = &refund
	return &types.CancelBookingResult{
		CancellationCharge: charge,
		RefundAmount:       refund,
		TotalPaid:          booking.TotalPrice,
	}, nil
}

// GetOwnBookings lists a user's bookings, newest first, with the product
// summary the client renders receipts from.
func GetOwnBookings(userId uint) ([]models.Booking, error) {
	d := db.GetDb()
	var bookings []models.Booking
	err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userId}).
		Preload("Product").
		Order("created_at desc").
		Find(&bookings).
		Error
	return bookings, err
}

// ExpiredPendingSince is a cutoff helper for the admin digest: bookings still
// pending after this many hours deserve attention.
func ExpiredPendingSince(hours int) time.Time {
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}
