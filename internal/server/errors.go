package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	contractdomain "github.com/smallbiznis/lockerdocs/internal/contract/domain"
	"github.com/smallbiznis/lockerdocs/internal/document/compose"
	"github.com/smallbiznis/lockerdocs/internal/document/layout"
	obscontext "github.com/smallbiznis/lockerdocs/internal/observability/context"
)

var ErrNotFound = errors.New("not_found")

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e apiError) Error() string { return e.Message }

func invalidRequestError() apiError {
	return apiError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body could not be parsed",
	}
}

func newValidationError(field, code, message string) apiError {
	return apiError{
		Status:  http.StatusUnprocessableEntity,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// AbortWithError maps domain errors onto the API error envelope.
func AbortWithError(c *gin.Context, err error) {
	var api apiError
	if errors.As(err, &api) {
		respond(c, api)
		return
	}

	switch {
	case errors.Is(err, contractdomain.ErrInvalidContractID):
		respond(c, apiError{Status: http.StatusBadRequest, Code: "invalid_contract_id", Message: "contract id is not valid"})
	case errors.Is(err, contractdomain.ErrContractNotFound), errors.Is(err, ErrNotFound):
		respond(c, apiError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"})
	case errors.Is(err, contractdomain.ErrMissingMemberName),
		errors.Is(err, contractdomain.ErrMissingMemberPhone),
		errors.Is(err, contractdomain.ErrInvalidPeriod),
		errors.Is(err, contractdomain.ErrInvalidAmount),
		errors.Is(err, compose.ErrInvalidInput):
		respond(c, apiError{Status: http.StatusUnprocessableEntity, Code: err.Error(), Message: "validation failed"})
	case errors.Is(err, layout.ErrGeometry), errors.Is(err, layout.ErrBlockOverflow):
		respond(c, apiError{Status: http.StatusInternalServerError, Code: "document_configuration", Message: "document geometry is misconfigured"})
	default:
		respond(c, apiError{Status: http.StatusInternalServerError, Code: "internal", Message: "internal error"})
	}
}

func respond(c *gin.Context, api apiError) {
	c.AbortWithStatusJSON(api.Status, gin.H{
		"error":      api,
		"request_id": obscontext.RequestIDFromGin(c),
	})
}
