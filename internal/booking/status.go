package booking

// Booking lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPickedUp  = "picked_up"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusExpired   = "expired"
)

var statusTransitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusConfirmed: {},
		StatusCanceled:  {},
		StatusExpired:   {},
	},
	StatusConfirmed: {
		StatusPickedUp:  {},
		StatusCanceled:  {},
		StatusCompleted: {},
	},
	StatusPickedUp: {
		StatusCompleted: {},
	},
	StatusCompleted: {},
	StatusCanceled:  {},
	StatusExpired:   {},
}

// CanTransition reports whether a booking may move between the two statuses.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}
