package handlers

import (
	"accounts-service/internal/errors"
	"accounts-service/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request into req and validates it.
// On failure the 400 response has already been written and ok is false.
func bindAndValidate(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		if fieldErrors := validation.FieldErrors(err); fieldErrors != nil {
			return false, SendValidationError(c, fieldErrors)
		}
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	return true, nil
}

// parseIDParam reads a UUID path parameter, answering 400 with invalidCode when malformed
func parseIDParam(c echo.Context, name string, invalidCode errors.ErrorCode) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, SendError(c, invalidCode)
	}
	return id, true, nil
}
