package vacation

import (
	"fmt"

	"vacation-desk/internal/pkg/errs"
)

// Validation failures, in the order Validator checks them.
var (
	ErrMissingDates         = errs.New("start and end dates are required")
	ErrStartDateInPast      = errs.New("start date is in the past")
	ErrEndDateNotAfterStart = errs.New("end date must be after start date")
	ErrBelowMinimumPeriod   = errs.New("requested period is below the minimum")
	ErrAboveMaximumPeriod   = errs.New("requested period is above the maximum")
	ErrInsufficientBalance  = errs.New("insufficient vacation balance")
	ErrOverlappingRequest   = errs.New("overlaps an existing vacation request")
)

var (
	ErrInvalidStatus           = errs.New("invalid vacation request status")
	ErrAlreadyDecided          = errs.New("vacation request has already been decided")
	ErrRejectionReasonRequired = errs.New("rejection reason is required")
	ErrNotesTooLong            = errs.New("notes exceed maximum length")
	ErrInvalidPolicy           = errs.New("invalid vacation policy")
	ErrInvalidDateRange        = errs.New("invalid date range")
)

type InsufficientBalanceError struct {
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: requested %d days, %d available", ErrInsufficientBalance.Error(), e.Requested, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type OverlapError struct {
	Existing *Request
}

func (e *OverlapError) Error() string {
	p := e.Existing.Period()
	return fmt.Sprintf("%s %s (%s)", ErrOverlappingRequest.Error(), p.String(), e.Existing.Status())
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlappingRequest
}
