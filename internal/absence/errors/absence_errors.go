package absenceerrors

import (
	"net/http"

	"go-people/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
	ErrInvalidDelegateID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid delegated_to id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidAbsenceType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid absence type",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrReasonTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"reason must not exceed 1000 characters",
		http.StatusBadRequest,
	)
	ErrHalfDayPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_period is required for half-day requests",
		http.StatusBadRequest,
	)
	ErrInvalidHalfDayPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_period must be MORNING or AFTERNOON",
		http.StatusBadRequest,
	)
	ErrApproverNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"approver does not exist",
		http.StatusBadRequest,
	)
	ErrDelegateNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"delegated_to employee does not exist",
		http.StatusBadRequest,
	)
	ErrAbsenceOverlap = apperror.New(
		apperror.CodeConflict,
		"an approved or pending absence already covers this period",
		http.StatusConflict,
	)
	ErrAbsenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence request not found",
		http.StatusNotFound,
	)
	ErrRequestImmutable = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be updated",
		http.StatusBadRequest,
	)
	ErrNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be cancelled",
		http.StatusBadRequest,
	)
	ErrAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be approved or rejected",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid status filter",
		http.StatusBadRequest,
	)
)
