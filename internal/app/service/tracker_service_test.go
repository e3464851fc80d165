//go:build unit

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ptorres/flight-tracker/internal/app/dto"
	"github.com/ptorres/flight-tracker/internal/pkg/amadeus"
	"github.com/ptorres/flight-tracker/internal/pkg/exception"
	"github.com/ptorres/flight-tracker/internal/pkg/tracking"
)

type mockField struct {
	searcher *MockOfferSearcher
	resolver *MockNameResolver
	archiver *MockOfferArchiver
	store    *MockTrackedSearchStore
}

func newMocks(t *testing.T) mockField {
	return mockField{
		searcher: NewMockOfferSearcher(t),
		resolver: NewMockNameResolver(t),
		archiver: NewMockOfferArchiver(t),
		store:    NewMockTrackedSearchStore(t),
	}
}

func newService(m mockField, lenient bool) *TrackerService {
	return NewTrackerService(m.searcher, m.resolver, m.archiver, m.store, lenient)
}

func testCriteria() dto.SearchCriteria {
	return dto.SearchCriteria{
		Origin:        "RDU",
		Destination:   "MIA",
		DepartureDate: "2026-01-19",
		Adults:        1,
		MaxResults:    5,
		AirlineCodes:  []string{"UA"},
	}
}

func testQuery() amadeus.SearchQuery {
	return amadeus.SearchQuery{
		Origin:        "RDU",
		Destination:   "MIA",
		DepartureDate: "2026-01-19",
		Adults:        1,
		MaxResults:    5,
		AirlineCodes:  []string{"UA"},
	}
}

func testOffer() amadeus.Offer {
	return amadeus.Offer{
		ID: "1",
		Itineraries: []amadeus.Itinerary{
			{
				Duration: "PT1H30M",
				Segments: []amadeus.Segment{
					{
						Departure:   amadeus.FlightPoint{IATACode: "RDU", At: "2026-01-19T08:00:00"},
						Arrival:     amadeus.FlightPoint{IATACode: "MIA", At: "2026-01-19T09:30:00"},
						Duration:    "PT1H30M",
						CarrierCode: "UA",
						Number:      "123",
					},
				},
			},
		},
		ValidatingAirlineCodes: []string{"UA"},
		Price:                  amadeus.Price{Currency: "USD", GrandTotal: "210.50"},
		NumberOfBookableSeats:  4,
	}
}

func malformedOffer() amadeus.Offer {
	return amadeus.Offer{
		ID:          "9",
		Itineraries: []amadeus.Itinerary{{Duration: "PT1H"}},
	}
}

func ptrInt(i int) *int { return &i }

func TestTrackerService_SearchFlights(t *testing.T) {
	criteria := testCriteria()
	query := testQuery()

	expectedRecords := []dto.DisplayRecord{
		{
			Type:             "summary",
			OfferID:          "1",
			Stops:            ptrInt(0),
			DepartureAirport: "RDU",
			DepartureTime:    "2026-01-19T08:00:00",
			ArrivalAirport:   "MIA",
			ArrivalTime:      "2026-01-19T09:30:00",
			Duration:         "PT1H30M",
			DurationDisplay:  "1h 30m",
			Airline:          &dto.Airline{Code: "UA", Name: "UNITED AIRLINES"},
			Price:            &dto.Price{Amount: "210.50", Currency: "USD"},
			BookableSeats:    4,
		},
		{
			Type:             "leg",
			Leg:              1,
			DepartureAirport: "RDU",
			DepartureTime:    "2026-01-19T08:00:00",
			ArrivalAirport:   "MIA",
			ArrivalTime:      "2026-01-19T09:30:00",
			Duration:         "PT1H30M",
			DurationDisplay:  "1h 30m",
			CarrierCode:      "UA",
			FlightNumber:     "123",
		},
	}

	t.Run("success", func(t *testing.T) {
		m := newMocks(t)
		m.searcher.On("SearchOffers", mock.Anything, query).Return([]amadeus.Offer{testOffer()}, nil)
		m.archiver.On("Write", mock.Anything, query, []amadeus.Offer{testOffer()}).
			Return("archive/flight_offers_RDU_MIA.json", nil)
		m.resolver.On("Resolve", mock.Anything, "UA").Return("UNITED AIRLINES", true)

		got, err := newService(m, false).SearchFlights(context.Background(), criteria)
		assert.NoError(t, err)

		got.Metadata.SearchTimeMs = 0
		want := dto.SearchFlightsResponse{
			SearchCriteria: criteria,
			Records:        expectedRecords,
			Metadata: dto.Metadata{
				TotalOffers:  1,
				TotalRecords: 2,
				ArchivePath:  "archive/flight_offers_RDU_MIA.json",
			},
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("SearchFlights() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("provider_failure_degrades_to_no_data", func(t *testing.T) {
		m := newMocks(t)
		m.searcher.On("SearchOffers", mock.Anything, query).
			Return(nil, errors.New("provider unavailable"))

		got, err := newService(m, false).SearchFlights(context.Background(), criteria)
		assert.NoError(t, err)
		assert.Empty(t, got.Records)
		assert.True(t, got.Metadata.ProviderFailed)
		assert.Zero(t, got.Metadata.TotalOffers)

		m.archiver.AssertNotCalled(t, "Write")
		m.resolver.AssertNotCalled(t, "Resolve")
	})

	t.Run("archive_failure_is_non_fatal", func(t *testing.T) {
		m := newMocks(t)
		m.searcher.On("SearchOffers", mock.Anything, query).Return([]amadeus.Offer{testOffer()}, nil)
		m.archiver.On("Write", mock.Anything, query, mock.Anything).
			Return("", errors.New("disk full"))
		m.resolver.On("Resolve", mock.Anything, "UA").Return("UNITED AIRLINES", true)

		got, err := newService(m, false).SearchFlights(context.Background(), criteria)
		assert.NoError(t, err)
		assert.Empty(t, got.Metadata.ArchivePath)
		assert.Len(t, got.Records, 2)
	})

	t.Run("malformed_offer_rejected_in_strict_mode", func(t *testing.T) {
		m := newMocks(t)
		m.searcher.On("SearchOffers", mock.Anything, query).
			Return([]amadeus.Offer{testOffer(), malformedOffer()}, nil)
		m.archiver.On("Write", mock.Anything, query, mock.Anything).Return("archive/a.json", nil)

		_, err := newService(m, false).SearchFlights(context.Background(), criteria)
		assert.Error(t, err)

		var appErr exception.ApplicationError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)
		assert.Contains(t, appErr.Message, `"9"`)
	})

	t.Run("malformed_offer_skipped_in_lenient_mode", func(t *testing.T) {
		m := newMocks(t)
		m.searcher.On("SearchOffers", mock.Anything, query).
			Return([]amadeus.Offer{testOffer(), malformedOffer()}, nil)
		m.archiver.On("Write", mock.Anything, query, mock.Anything).Return("archive/a.json", nil)
		m.resolver.On("Resolve", mock.Anything, "UA").Return("UNITED AIRLINES", true)

		got, err := newService(m, true).SearchFlights(context.Background(), criteria)
		assert.NoError(t, err)
		assert.Len(t, got.Records, 2)
		assert.Equal(t, 2, got.Metadata.TotalOffers)
		assert.Equal(t, 2, got.Metadata.TotalRecords)
	})

	t.Run("unresolved_airline_falls_back_to_code", func(t *testing.T) {
		m := newMocks(t)
		m.searcher.On("SearchOffers", mock.Anything, query).Return([]amadeus.Offer{testOffer()}, nil)
		m.archiver.On("Write", mock.Anything, query, mock.Anything).Return("archive/a.json", nil)
		m.resolver.On("Resolve", mock.Anything, "UA").Return("", false)

		got, err := newService(m, false).SearchFlights(context.Background(), criteria)
		assert.NoError(t, err)

		summary := got.Records[0]
		assert.Equal(t, "UA", summary.Airline.Code)
		assert.Empty(t, summary.Airline.Name)
	})
}

func TestTrackerService_TrackSearch(t *testing.T) {
	criteria := testCriteria()

	t.Run("success", func(t *testing.T) {
		m := newMocks(t)
		m.store.On("Insert", mock.Anything, mock.MatchedBy(func(search tracking.TrackedSearch) bool {
			return search.ID != "" &&
				search.Origin == "RDU" &&
				search.Destination == "MIA" &&
				search.DepartureDate == "2026-01-19" &&
				search.Adults == 1 &&
				search.MaxResults == 5
		})).Return(nil)

		got, err := newService(m, false).TrackSearch(context.Background(), criteria)
		assert.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("store_failure", func(t *testing.T) {
		m := newMocks(t)
		m.store.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		_, err := newService(m, false).TrackSearch(context.Background(), criteria)
		assert.Error(t, err)
	})
}
