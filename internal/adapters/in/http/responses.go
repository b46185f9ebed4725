package http

import (
	"errors"
	"net/http"

	"verification/internal/core/domain/model/order"
	"verification/internal/pkg/apperr"
	"verification/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body of the API. Data is set on success;
// message and code describe the failure otherwise.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, Envelope{Success: true, Data: data})
}

// respondError translates domain and application failures to HTTP statuses.
// Coded application errors carry their own status; rejected status moves map
// to 422 with the business-rule code, validation failures from the command
// constructors to 400 and missing objects to 404.
func respondError(ctx echo.Context, err error) error {
	var appErr apperr.AppError
	if errors.As(err, &appErr) {
		return ctx.JSON(appErr.HTTPCode(), Envelope{
			Success: false,
			Message: err.Error(),
			Code:    string(appErr.ErrorCode()),
		})
	}

	if errors.Is(err, order.ErrStatusTransitionNotAllowed) {
		return ctx.JSON(http.StatusUnprocessableEntity, Envelope{
			Success: false,
			Message: err.Error(),
			Code:    string(apperr.CodeBusinessRuleViolation),
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Envelope{
			Success: false,
			Message: err.Error(),
			Code:    string(apperr.CodeNotFound),
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: err.Error(),
			Code:    string(apperr.CodeValidationError),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: err.Error(),
		Code:    string(apperr.CodeServerError),
	})
}
