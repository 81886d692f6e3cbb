package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingNights(t *testing.T) {
	checkIn := time.Date(2030, time.June, 7, 0, 0, 0, 0, time.UTC)

	booking := Booking{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2)}
	assert.Equal(t, 2, booking.Nights())

	// check-out day itself is not a night stayed
	single := Booking{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1)}
	assert.Equal(t, 1, single.Nights())
}
