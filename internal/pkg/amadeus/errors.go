package amadeus

import (
	"net/http"

	"github.com/ptorres/flight-tracker/internal/pkg/exception"
)

var ErrProviderUnavailable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "flight data provider unavailable",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

var ErrAirlineNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "airline not found",
}
