package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// HandleAPIError turns service and repository errors into the standard error
// response. Not-found maps to 404; a duplicate address ID maps to 400 to stay
// on the published contract. The response message is the error's own message,
// so services that construct errors naming the resource and ID surface that
// context to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrAddressNotFound, apperrors.ErrPersonNotFound, apperrors.ErrCourseNotFound):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(applyCustomContext(detail, err)))
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrResourceAlreadyExists, apperrors.ErrAddressAlreadyExists):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(applyCustomContext(detail, err)))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).
			WithSeverity(dto.ErrorSeverityWarning)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(applyCustomContext(detail, err)))
	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}

// applyCustomContext lifts the code and details carried on a CustomError onto
// the response detail, leaving the branch defaults in place otherwise.
func applyCustomContext(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		return detail
	}
	if customErr.Code != "" {
		detail.Code = dto.ErrorCode(customErr.Code)
	}
	if customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}
	return detail
}
