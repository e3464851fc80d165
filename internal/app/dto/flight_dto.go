package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ptorres/flight-tracker/internal/pkg/exception"
)

const dateLayout = "2006-01-02"

// SearchCriteria is a flight search definition: used both for one-off
// searches and, verbatim, as the payload of an auto-tracking request.
type SearchCriteria struct {
	Origin        string   `json:"origin" validate:"required,len=3,alpha"`
	Destination   string   `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate string   `json:"departure_date" validate:"required"`
	Adults        int      `json:"adults" validate:"required,min=1,max=9"`
	MaxResults    int      `json:"max_results" validate:"required,min=1,max=250"`
	AirlineCodes  []string `json:"airline_codes,omitempty" validate:"omitempty,min=1,dive,len=2,alpha"`
}

// Bind normalizes location and carrier codes to uppercase before
// validating, so mixed-case input is accepted but never forwarded.
func (s *SearchCriteria) Bind(_ *http.Request) error {
	s.Origin = strings.ToUpper(s.Origin)
	s.Destination = strings.ToUpper(s.Destination)
	for i, code := range s.AirlineCodes {
		s.AirlineCodes[i] = strings.ToUpper(code)
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.Origin == s.Destination {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "origin and destination must differ",
		}
	}

	departure, err := time.Parse(dateLayout, s.DepartureDate)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "departure_date must be a calendar date formatted YYYY-MM-DD",
		}
	}

	// the provider rejects past dates with an opaque error, catch it here
	today, _ := time.Parse(dateLayout, time.Now().UTC().Format(dateLayout))
	if departure.Before(today) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "departure_date must not be in the past",
		}
	}

	return nil
}

// Airline names a carrier; Name is best-effort and empty when reference
// data could not resolve the code.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// Price keeps the provider's decimal string untouched. No arithmetic is
// ever done on it.
type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// DisplayRecord is one row of the flattened search result. Type is either
// "summary" (one per offer) or "leg" (one per segment). Summary rows carry
// offer-level fields, leg rows carry the per-segment ones.
type DisplayRecord struct {
	Type             string   `json:"type"`
	OfferID          string   `json:"offer_id,omitempty"`
	Stops            *int     `json:"stops,omitempty"`
	Leg              int      `json:"leg,omitempty"`
	DepartureAirport string   `json:"departure_airport"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalAirport   string   `json:"arrival_airport"`
	ArrivalTime      string   `json:"arrival_time"`
	Duration         string   `json:"duration"`
	DurationDisplay  string   `json:"duration_display,omitempty"`
	Airline          *Airline `json:"airline,omitempty"`
	CarrierCode      string   `json:"carrier_code,omitempty"`
	FlightNumber     string   `json:"flight_number,omitempty"`
	Price            *Price   `json:"price,omitempty"`
	BookableSeats    int      `json:"bookable_seats,omitempty"`
}

type Metadata struct {
	TotalOffers    int    `json:"total_offers"`
	TotalRecords   int    `json:"total_records"`
	ProviderFailed bool   `json:"provider_failed"`
	SearchTimeMs   int    `json:"search_time_ms"`
	ArchivePath    string `json:"archive_path,omitempty"`
}

// SearchFlightsResponse is the response of the search endpoint.
type SearchFlightsResponse struct {
	SearchCriteria SearchCriteria  `json:"search_criteria"`
	Metadata       Metadata        `json:"metadata"`
	Records        []DisplayRecord `json:"records"`
}

// TrackSearchResponse acknowledges a persisted search definition.
type TrackSearchResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
