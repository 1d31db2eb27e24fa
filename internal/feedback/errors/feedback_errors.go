package feedbackerrors

import (
	"net/http"

	"go-people/internal/shared/apperror"
)

var (
	ErrInvalidFeedbackID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid feedback id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidGiverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid giver id",
		http.StatusBadRequest,
	)
	ErrInvalidFeedbackType = apperror.New(
		apperror.CodeInvalidInput,
		"feedback type must be PRAISE, CONSTRUCTIVE or GENERAL",
		http.StatusBadRequest,
	)
	ErrInvalidRating = apperror.New(
		apperror.CodeInvalidInput,
		"rating must be between 1 and 5",
		http.StatusBadRequest,
	)
	ErrSearchTermRequired = apperror.New(
		apperror.CodeInvalidInput,
		"search term is required",
		http.StatusBadRequest,
	)
	ErrFeedbackNotFound = apperror.New(
		apperror.CodeNotFound,
		"feedback not found",
		http.StatusNotFound,
	)
	ErrFeedbackArchived = apperror.New(
		apperror.CodeInvalidState,
		"archived feedback cannot be modified",
		http.StatusBadRequest,
	)
	ErrEnhancerUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"the enhancement service is unavailable",
		http.StatusServiceUnavailable,
	)
)
