package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminTransitions(t *testing.T) {
	assert.Nil(t, CheckTransition(BOOKING_PENDING, BOOKING_CONFIRMED, ROLE_ADMIN))
	assert.Nil(t, CheckTransition(BOOKING_CONFIRMED, BOOKING_PENDING, ROLE_ADMIN))
	assert.Nil(t, CheckTransition(BOOKING_CONFIRMED, BOOKING_CANCELLED, ROLE_ADMIN))
}

func TestUserTransitions(t *testing.T) {
	assert.Nil(t, CheckTransition(BOOKING_CONFIRMED, BOOKING_CANCELLED, ROLE_USER))

	err := CheckTransition(BOOKING_PENDING, BOOKING_CONFIRMED, ROLE_USER)
	assert.True(t, errors.Is(err, ErrForbidden))

	err = CheckTransition(BOOKING_CONFIRMED, BOOKING_PENDING, ROLE_USER)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestCancelledIsTerminal(t *testing.T) {
	for _, to := range []BookingStatus{BOOKING_PENDING, BOOKING_CONFIRMED, BOOKING_CANCELLED} {
		for _, actor := range []ActorRole{ROLE_USER, ROLE_ADMIN} {
			err := CheckTransition(BOOKING_CANCELLED, to, actor)
			assert.True(t, errors.Is(err, ErrIllegalTransition))
		}
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(BOOKING_PENDING, BOOKING_CONFIRMED, ROLE_ADMIN))
	assert.True(t, CanTransition(BOOKING_CONFIRMED, BOOKING_CANCELLED, ROLE_USER))

	assert.False(t, CanTransition(BOOKING_PENDING, BOOKING_CONFIRMED, ROLE_USER))
	assert.False(t, CanTransition(BOOKING_PENDING, BOOKING_CANCELLED, ROLE_ADMIN))
	assert.False(t, CanTransition(BOOKING_CANCELLED, BOOKING_PENDING, ROLE_ADMIN))
	// a no-op change is not a transition
	assert.False(t, CanTransition(BOOKING_CONFIRMED, BOOKING_CONFIRMED, ROLE_ADMIN))
}

func TestUnknownTransitionsAreIllegal(t *testing.T) {
	err := CheckTransition(BOOKING_PENDING, BOOKING_CANCELLED, ROLE_ADMIN)
	assert.True(t, errors.Is(err, ErrIllegalTransition))

	err = CheckTransition(BOOKING_PENDING, BOOKING_PENDING, ROLE_ADMIN)
	assert.True(t, errors.Is(err, ErrIllegalTransition))

	var te *IllegalTransitionError
	err = CheckTransition(BOOKING_CANCELLED, BOOKING_CONFIRMED, ROLE_ADMIN)
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, BOOKING_CANCELLED, te.From)
	assert.Equal(t, BOOKING_CONFIRMED, te.To)
}
