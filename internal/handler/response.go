package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"basesync/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound, "FILE_NOT_FOUND", "spreadsheet file not found"
	case errors.Is(err, domain.ErrSheetNotFound):
		return http.StatusNotFound, "SHEET_NOT_FOUND", "sheet not found in workbook"
	case errors.Is(err, domain.ErrRetrievalFailed):
		return http.StatusBadGateway, "RETRIEVAL_FAILED", "file retrieval from remote store failed"
	case errors.Is(err, domain.ErrUnknownDomain):
		return http.StatusBadRequest, "UNKNOWN_DOMAIN", "unknown domain; allowed: cadastro, produtos, saida"
	case errors.Is(err, domain.ErrMissingTerm):
		return http.StatusBadRequest, "MISSING_TERM", "query parameter 'term' is required"
	case errors.Is(err, domain.ErrSyncBusy):
		return http.StatusConflict, "SYNC_BUSY", "a sync or search pass is already in progress; retry shortly"
	case errors.Is(err, domain.ErrSyncUnsupported):
		return http.StatusBadRequest, "SYNC_UNSUPPORTED", "sync is only defined for the cadastro sheet"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
