package utils

import (
	"math"

	"explorecamp/src/config"
)

// ComputeTotalPrice is the only place a booking total comes from. Whatever the
// client thinks the trip costs is ignored; the server reprices from the
// nightly rate and the policy fees. The service fee is rounded to a whole
// currency unit before summing.
func ComputeTotalPrice(nights int, pricePerNight float64) float64 {
	base := float64(nights) * pricePerNight
	serviceFee := math.Round(base * config.ServiceFeeRate())
	return base + config.CleaningFee() + serviceFee
}

// CancellationCharge is the share of the total withheld on cancellation,
// rounded to a whole currency unit. The refund is derived by subtraction so
// charge+refund always reproduces the total exactly.
func CancellationCharge(totalPrice float64) float64 {
	return math.Round(totalPrice * config.CancellationRate())
}
