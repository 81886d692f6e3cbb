package types

// statusTransitions is the full table of legal booking status changes and the
// roles allowed to trigger them. Anything absent is illegal: a pending booking
// cannot be self-cancelled by its owner, and cancelled is terminal.
var statusTransitions = map[BookingStatus]map[BookingStatus][]ActorRole{
	BOOKING_PENDING: {
		BOOKING_CONFIRMED: {ROLE_ADMIN},
	},
	BOOKING_CONFIRMED: {
		BOOKING_PENDING:   {ROLE_ADMIN},
		BOOKING_CANCELLED: {ROLE_USER, ROLE_ADMIN},
	},
}

// CanTransition reports whether actor may move a booking from one status to
// another. A no-op transition (from == to) is not a transition and is refused.
func CanTransition(from, to BookingStatus, actor ActorRole) bool {
	roles, ok := statusTransitions[from][to]
	if !ok {
		return false
	}
	for _, role := range roles {
		if role == actor {
			return true
		}
	}
	return false
}

// CheckTransition returns a typed error describing the refused change, or nil.
// A transition the table knows about but the actor may not trigger is reported
// as ErrForbidden rather than an illegal transition.
func CheckTransition(from, to BookingStatus, actor ActorRole) error {
	roles, ok := statusTransitions[from][to]
	if !ok {
		return &IllegalTransitionError{From: from, To: to}
	}
	for _, role := range roles {
		if role == actor {
			return nil
		}
	}
	return ErrForbidden
}
