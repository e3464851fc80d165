package service

import (
	"net/http"

	"github.com/ptorres/flight-tracker/internal/pkg/exception"
)

var ErrMalformedOffers = exception.ApplicationError{
	Message:    "provider returned a malformed offer",
	StatusCode: http.StatusUnprocessableEntity,
}
