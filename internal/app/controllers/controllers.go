// Package controllers exposes the HTTP handlers for the campus registry API.
// Controllers bind and validate payloads, parse query filters, and translate
// service errors into responses; they hold no state of their own.
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/middleware"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// queryValue returns a pointer to the query parameter value, or nil when the
// parameter is absent. Presence matters: an empty value is a real filter.
func queryValue(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

// parsePathID parses the id path parameter as a UUID, writing a 400 response
// and returning false on malformed input.
func parsePathID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid "+resource+" ID").
			WithCode(string(dto.ErrorCodeResourceInvalid)).
			WithDetails(map[string]interface{}{"id": c.Param("id")}))
		return uuid.Nil, false
	}
	return id, true
}

// bindError wraps a request binding failure so the error middleware renders
// it as a validation response with the decoder's reason attached.
func bindError(resource string, err error) error {
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid "+resource+" data").
		WithDetails(map[string]interface{}{"reason": err.Error()})
}
