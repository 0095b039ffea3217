package web

import (
	"errors"
	"net/http"

	"face-gallery/internal/catalog"
)

var (
	ErrCatalogUnavailable     = errors.New("gallery data could not be loaded")
	ErrLookupImageUnavailable = errors.New("face reference image is not available")
)

type ErrorResponse struct {
	StatusCode int
	Message    string
}

// GetErrorResponse returns appropriate HTTP response for an error
func GetErrorResponse(err error) ErrorResponse {
	switch {
	case errors.Is(err, catalog.ErrDirectoryUnavailable),
		errors.Is(err, catalog.ErrIndexUnavailable),
		errors.Is(err, ErrCatalogUnavailable):
		return ErrorResponse{http.StatusServiceUnavailable, "Gallery data could not be loaded. Please try again later."}
	case errors.Is(err, ErrLookupImageUnavailable):
		return ErrorResponse{http.StatusNotFound, "Face reference image is not available."}
	default:
		return ErrorResponse{http.StatusInternalServerError, "An unexpected error occurred. Please try again."}
	}
}
