package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Deal errors
	ErrDealNotFound    = errors.New("deal not found")
	ErrDealExpired     = errors.New("deal expired")
	ErrUnknownDealKind = errors.New("unknown deal kind")

	// Availability errors
	ErrDateUnavailable   = errors.New("date unavailable")
	ErrPeriodUnavailable = errors.New("period unavailable")
	ErrSlotUnavailable   = errors.New("time slot unavailable")
	ErrNoCapacity        = errors.New("no remaining capacity")

	// Draft / submission errors
	ErrSubmissionInFlight  = errors.New("submission already in flight")
	ErrDraftNotSubmittable = errors.New("draft not submittable")
	ErrBackendValidation   = errors.New("backend rejected submission")

	// Payment errors
	ErrPaymentPreparation = errors.New("payment preparation failed")
	ErrMethodNotEnabled   = errors.New("payment method not enabled for deal")

	// Reconciliation errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Operation errors
	ErrBackendOperationFailed = errors.New("backend operation failed")
	ErrStoreOperationFailed   = errors.New("store operation failed")
)
