package errs

import "errors"

// Error kinds shared by every layer. Concrete sentinels are marked with one of these
// so handlers can map on the kind without knowing every sentinel.
var (
	// a mandatory reference is missing or an input value is unusable
	ErrValidation = errors.New("validation error")
	// deletion of a reservation that already carries a confirmation code
	ErrHasReservations = errors.New("has reservations")
	// an identifier does not resolve
	ErrNotFound = errors.New("not found")
	// a transactional operation failed and was rolled back
	ErrTransactionFailure = errors.New("transaction failure")
)
