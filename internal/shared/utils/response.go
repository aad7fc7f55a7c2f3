package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/shared/errors"
)

// APIResponse represents a standard API response structure. List endpoints
// additionally carry TotalRecords at the top level, matching the envelope
// the console expects.
type APIResponse struct {
	Success      bool        `json:"success"`
	Data         interface{} `json:"data,omitempty"`
	TotalRecords *int64      `json:"totalRecords,omitempty"`
	Error        *ErrorInfo  `json:"error,omitempty"`
	Message      string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in an API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: "Resource created successfully",
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(http.StatusCreated, response)
}

// ListSuccessResponse sends a successful list response with the record
// total at the top level of the envelope.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64) {
	c.JSON(http.StatusOK, APIResponse{
		Success:      true,
		Data:         items,
		TotalRecords: &total,
	})
}

// ErrorResponse sends an error response with an explicit status code
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
		Message: message,
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	var statusCode int
	var errorInfo ErrorInfo

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.Code
		errorInfo = ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	} else {
		// Do not expose internal error details.
		statusCode = http.StatusInternalServerError
		errorInfo = ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		}
	}

	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &errorInfo,
		Message: errorInfo.Message,
	})
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
