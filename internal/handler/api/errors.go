package api

import (
	"errors"
	"fmt"
	"net/http"

	"vacation-desk/internal/domain/vacation"
	reqdto "vacation-desk/internal/handler/dto/request"
	resdto "vacation-desk/internal/handler/dto/response"
	"vacation-desk/internal/handler/httperr"
	"vacation-desk/internal/pkg/errs"
	"vacation-desk/internal/usecase/commands"
	"vacation-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgSaveFailed = "Could not save the request, please try again"
	msgLoadFailed = "Could not load vacation requests, please try again"
)

type InsufficientBalanceDetail struct {
	AvailableDays int `json:"availableDays"`
	RequestedDays int `json:"requestedDays"`
}

type OverlapDetail struct {
	Conflict *resdto.VacationRequestResponse `json:"conflict"`
}

type errorMapper struct {
	policy vacation.Policy
}

// write answers with the message matching err; unknown errors become a 500
// carrying fallback.
func (m errorMapper) write(c *gin.Context, err error, fallback string) {
	var balanceErr *vacation.InsufficientBalanceError
	var overlapErr *vacation.OverlapError

	switch {
	case errors.Is(err, vacation.ErrMissingDates):
		unprocessable(c, err, "MISSING_DATES", "Please provide both the start and the end date", nil)
	case errors.Is(err, vacation.ErrStartDateInPast):
		unprocessable(c, err, "START_DATE_IN_PAST", "The start date cannot be in the past", nil)
	case errors.Is(err, vacation.ErrEndDateNotAfterStart):
		unprocessable(c, err, "END_DATE_NOT_AFTER_START", "The end date must be after the start date", nil)
	case errors.Is(err, vacation.ErrBelowMinimumPeriod):
		unprocessable(c, err, "BELOW_MINIMUM_PERIOD", fmt.Sprintf("A vacation must last at least %d days", m.policy.MinDays), nil)
	case errors.Is(err, vacation.ErrAboveMaximumPeriod):
		unprocessable(c, err, "ABOVE_MAXIMUM_PERIOD", fmt.Sprintf("A vacation cannot last more than %d days", m.policy.MaxDays), nil)
	case errors.As(err, &balanceErr):
		unprocessable(c, err, "INSUFFICIENT_BALANCE",
			fmt.Sprintf("Insufficient balance: you have %d days available", balanceErr.Available),
			InsufficientBalanceDetail{AvailableDays: balanceErr.Available, RequestedDays: balanceErr.Requested})
	case errors.As(err, &overlapErr):
		period := overlapErr.Existing.Period()
		conflict, _ := resdto.FromVacationRequestView(queries.ToView(overlapErr.Existing))
		unprocessable(c, err, "OVERLAPPING_REQUEST",
			fmt.Sprintf("You already have a request from %s to %s",
				period.Start().Format(reqdto.DisplayDateLayout), period.End().Format(reqdto.DisplayDateLayout)),
			OverlapDetail{Conflict: conflict})
	case errors.Is(err, vacation.ErrNotesTooLong):
		unprocessable(c, err, "NOTES_TOO_LONG", fmt.Sprintf("Notes cannot exceed %d characters", vacation.MaxNotesLength), nil)
	case errors.Is(err, vacation.ErrRejectionReasonRequired):
		unprocessable(c, err, "REJECTION_REASON_REQUIRED", "Please provide a reason for the rejection", nil)
	case errors.Is(err, vacation.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusConflict, err, "ALREADY_DECIDED", "This request has already been decided", nil)
	case errors.Is(err, commands.ErrSelfApproval):
		httperr.AbortWithError(c, http.StatusForbidden, err, "SELF_APPROVAL", "You cannot decide your own request", nil)
	case errors.Is(err, vacation.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_STATUS", "Unknown status filter", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_CURSOR", "Invalid pagination cursor", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "NOT_FOUND", "Vacation request not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "FORBIDDEN", "Insufficient permissions", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", fallback, nil)
	}
}

func unprocessable(c *gin.Context, err error, code, msg string, detail any) {
	httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, code, msg, detail)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", msg, nil)
}

var errMissingRequester = errs.New("requester missing from context")

func internalError(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errMissingRequester, "INTERNAL", "Internal server error", nil)
}
