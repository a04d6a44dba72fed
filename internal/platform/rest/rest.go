// Package rest carries the response envelope and error taxonomy shared by
// every clinic API handler.
package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Body is the wire envelope of every non-entity response.
type Body struct {
	Message string `json:"message"`
}

// Message writes the standard {"message": ...} envelope.
func Message(c echo.Context, code int, msg string) error {
	return c.JSON(code, Body{Message: msg})
}

// ValidationError is a recoverable request defect, rejected before any write.
type ValidationError struct {
	Field string // offending field, empty when the defect is structural
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

// MissingField reports a required field absent from the payload.
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Msg: "Missing required field: " + field}
}

// Invalid reports a structural payload defect.
func Invalid(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// NotFoundError marks an empty read result. Not a fault.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// NotFound builds a NotFoundError for the given entity kind.
func NotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ServiceError maps a service-layer error onto the wire: validation failures
// become 400 with the offending field named, empty reads become 404, and
// anything else is logged with entity kind and key, then surfaced as a
// generic 500 without internal detail.
func ServiceError(c echo.Context, logger zerolog.Logger, entity, key string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return Message(c, http.StatusBadRequest, ve.Error())
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return Message(c, http.StatusNotFound, nf.Error())
	}
	logger.Error().
		Err(err).
		Str("entity", entity).
		Str("key", key).
		Msg("storage failure")
	return Message(c, http.StatusInternalServerError, "Internal server error")
}

// Options answers verb introspection with an Allow header listing the
// methods a resource supports.
func Options(verbs ...string) echo.HandlerFunc {
	allow := strings.Join(verbs, ", ")
	return func(c echo.Context) error {
		c.Response().Header().Set("Allow", allow)
		return c.NoContent(http.StatusNoContent)
	}
}
