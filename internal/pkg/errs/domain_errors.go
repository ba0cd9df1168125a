package errs

import "errors"

// Sentinels shared by the usecase and handler layers. Usecases mark the
// underlying error with one of these; handlers map them to HTTP responses.
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")
	ErrNotListingOwner = errors.New("caller does not own listing")

	// Food request errors
	ErrFoodRequestNotFound = errors.New("food request not found")
	ErrRequestNotPending   = errors.New("food request is not pending")
	ErrListingMismatch     = errors.New("food request does not reference listing")

	// Input errors
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrCallerEmailRequired = errors.New("caller email required")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
