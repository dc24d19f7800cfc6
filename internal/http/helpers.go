package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // field problems for validation errors
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidation = "validation_failed"
	CodeDuplicate  = "duplicate_key"
	CodeNotFound   = "not_found"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps store failures onto status codes:
// validation 400, duplicate key 409, not found 404, anything else 500.
func respondStoreError(c *gin.Context, err error, resource, context string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   verr.Error(),
			Code:    CodeValidation,
			Details: verr.Fields,
		})
	case errors.Is(err, dberrors.ErrDuplicateKey):
		c.JSON(http.StatusConflict, ErrorResponse{Error: resource + " already exists", Code: CodeDuplicate})
	case errors.Is(err, dberrors.ErrNotFound):
		respondNotFound(c, resource)
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts a non-blank string ID from URL parameters.
// Responds with a 400 error and returns "", false when it is missing.
func parseIDParam(c *gin.Context, paramName string) (string, bool) {
	id := strings.TrimSpace(c.Param(paramName))
	if id == "" {
		respondBadRequest(c, "invalid "+paramName)
		return "", false
	}
	return id, true
}

// requireQuery extracts a required query parameter and checks it with valid.
// Responds with a 400 error and returns "", false when it is missing or rejected.
func requireQuery(c *gin.Context, paramName string, valid func(string) bool) (string, bool) {
	value := c.Query(paramName)
	if value == "" {
		respondBadRequest(c, paramName+" is required")
		return "", false
	}
	if valid != nil && !valid(value) {
		respondBadRequest(c, "invalid "+paramName)
		return "", false
	}
	return value, true
}

// optionalQuery returns the query parameter or fallback when it is absent.
// Responds with a 400 error and returns "", false when it is present but rejected.
func optionalQuery(c *gin.Context, paramName, fallback string, valid func(string) bool) (string, bool) {
	value := c.Query(paramName)
	if value == "" {
		return fallback, true
	}
	if valid != nil && !valid(value) {
		respondBadRequest(c, "invalid "+paramName)
		return "", false
	}
	return value, true
}
