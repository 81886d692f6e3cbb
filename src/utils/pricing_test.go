package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalPrice(t *testing.T) {
	// 2 nights at 100: base 200, cleaning 15, service fee round(20)
	total := ComputeTotalPrice(2, 100)
	assert.Equal(t, 235.0, total)

	// service fee rounds half away from zero: base 105, fee round(10.5) = 11
	total = ComputeTotalPrice(3, 35)
	assert.Equal(t, 131.0, total)

	// single night stay
	total = ComputeTotalPrice(1, 50)
	assert.Equal(t, 70.0, total)
}

func TestComputeTotalPriceIsDeterministic(t *testing.T) {
	first := ComputeTotalPrice(7, 119.99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeTotalPrice(7, 119.99))
	}
}

func TestCancellationCharge(t *testing.T) {
	charge := CancellationCharge(235)
	assert.Equal(t, 24.0, charge)

	charge = CancellationCharge(200)
	assert.Equal(t, 20.0, charge)

	charge = CancellationCharge(0)
	assert.Equal(t, 0.0, charge)
}

func TestRefundSplitsTotalExactly(t *testing.T) {
	for _, total := range []float64{235, 131, 70, 875, 1} {
		charge := CancellationCharge(total)
		refund := total - charge
		assert.Equal(t, total, charge+refund)
		assert.GreaterOrEqual(t, refund, 0.0)
	}
}
