package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		SendBadRequest(c, "Invalid "+paramName)
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeInvalidInput),
	})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeNotFound),
	})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeInternal),
	})
}

// SendAppError writes err using its AppError code and status. Other errors
// become internal errors.
func SendAppError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		SendInternalError(c, err.Error())
		return
	}
	c.JSON(appErr.GetHTTPCode(), ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
