// Package apperr defines the error kinds the services report.
// Handlers map each kind to a response status; batch callers match
// with errors.Is and continue.
package apperr

import "errors"

var (
	// ErrInvalidSymbol reports a blank or unknown symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidDateRange reports an unparseable date or a start date
	// after the end date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNoData reports a well-formed request for which the provider or
	// store legitimately has nothing.
	ErrNoData = errors.New("no data available")

	// ErrProvider reports a failed upstream call or a structurally
	// invalid provider payload.
	ErrProvider = errors.New("provider error")
)
