package booking

import "errors"

var (
	// ErrServiceNotFound indicates the referenced service does not exist.
	ErrServiceNotFound = errors.New("service not found")
	// ErrBookingNotFound indicates the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrDealInactive indicates the deal is switched off or the listing
	// was removed.
	ErrDealInactive = errors.New("deal is no longer available")
	// ErrCapacityExceeded indicates all slots in the requested pool are
	// taken.
	ErrCapacityExceeded = errors.New("all slots for this deal are taken")
	// ErrInvalidStatus indicates a status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrTerminalStatus indicates a transition out of a terminal state.
	ErrTerminalStatus = errors.New("booking is already finalized")
	// ErrNotAuthorized indicates the actor is neither the customer nor
	// provider-authorized for the booking.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrCustomerCancelOnly indicates a customer-only actor requested a
	// transition other than cancellation.
	ErrCustomerCancelOnly = errors.New("customers can only cancel bookings")
	// ErrRescheduleTimeRequired indicates a reschedule without a new time.
	ErrRescheduleTimeRequired = errors.New("rescheduling requires a new time")
	// ErrMissingFields indicates a malformed creation request.
	ErrMissingFields = errors.New("missing required booking fields")
)
