package types

import (
	"errors"
	"fmt"
)

// Rejection reasons surfaced by the booking core. Handlers dispatch on these
// with errors.Is so the client can tell "dates just became unavailable" apart
// from "this booking is already cancelled".
var (
	ErrInvalidRange      = errors.New("check-in date must be before check-out date")
	ErrPastDate          = errors.New("check-in date cannot be in the past")
	ErrProductNotFound   = errors.New("product not found")
	ErrDatesUnavailable  = errors.New("selected dates are not available")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("not allowed to modify this booking")
	ErrTransactionFailed = errors.New("could not complete the booking transaction")

	ErrCancelPending   = errors.New("cannot cancel pending bookings, please wait for admin confirmation")
	ErrCancelCancelled = errors.New("this booking has already been cancelled")
)

// IllegalTransitionError reports a status change the state machine does not
// allow, carrying both sides so the caller can see what was attempted.
type IllegalTransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal booking status transition from %q to %q", e.From, e.To)
}

var ErrIllegalTransition = &IllegalTransitionError{}

func (e *IllegalTransitionError) Is(target error) bool {
	_, ok := target.(*IllegalTransitionError)
	return ok
}
