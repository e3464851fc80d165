//go:build unit

package itinerary

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ptorres/flight-tracker/internal/pkg/amadeus"
)

func directOffer() amadeus.Offer {
	return amadeus.Offer{
		ID: "7",
		Itineraries: []amadeus.Itinerary{
			{
				Duration: "PT2H",
				Segments: []amadeus.Segment{
					{
						Departure:   amadeus.FlightPoint{IATACode: "JFK", At: "2026-03-02T07:00:00"},
						Arrival:     amadeus.FlightPoint{IATACode: "ORD", At: "2026-03-02T09:00:00"},
						Duration:    "PT2H",
						CarrierCode: "AA",
						Number:      "300",
					},
				},
			},
		},
		ValidatingAirlineCodes: []string{"AA"},
		Price:                  amadeus.Price{Currency: "USD", GrandTotal: "129.99"},
		NumberOfBookableSeats:  2,
	}
}

func connectingOffer() amadeus.Offer {
	return amadeus.Offer{
		ID: "1",
		Itineraries: []amadeus.Itinerary{
			{
				Duration: "PT3H10M",
				Segments: []amadeus.Segment{
					{
						Departure:   amadeus.FlightPoint{IATACode: "RDU", At: "2026-01-19T08:00:00"},
						Arrival:     amadeus.FlightPoint{IATACode: "MIA", At: "2026-01-19T09:30:00"},
						Duration:    "PT1H30M",
						CarrierCode: "UA",
						Number:      "123",
					},
					{
						Departure:   amadeus.FlightPoint{IATACode: "MIA", At: "2026-01-19T10:10:00"},
						Arrival:     amadeus.FlightPoint{IATACode: "SJU", At: "2026-01-19T11:10:00"},
						Duration:    "PT1H",
						CarrierCode: "UA",
						Number:      "456",
					},
				},
			},
		},
		ValidatingAirlineCodes: []string{"UA"},
		Price:                  amadeus.Price{Currency: "USD", GrandTotal: "210.50"},
		NumberOfBookableSeats:  4,
	}
}

func TestFlatten(t *testing.T) {
	flattenOffers := func(offers []amadeus.Offer, want []Record, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := Flatten(offers)

			if wantErr != nil {
				assert.Error(t, err)

				var malformed MalformedOfferError
				if errors.As(wantErr, &malformed) {
					var gotMalformed MalformedOfferError
					if !errors.As(err, &gotMalformed) {
						t.Fatalf("expected MalformedOfferError, got %v", err)
					}
					assert.Equal(t, malformed.OfferID, gotMalformed.OfferID)
				}

				return
			}

			assert.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("empty_input", flattenOffers(nil, []Record{}, nil))

	t.Run("direct_flight", flattenOffers(
		[]amadeus.Offer{directOffer()},
		[]Record{
			SummaryRecord{
				OfferID:           "7",
				Stops:             0,
				DepartureAirport:  "JFK",
				DepartureTime:     "2026-03-02T07:00:00",
				ArrivalAirport:    "ORD",
				ArrivalTime:       "2026-03-02T09:00:00",
				Duration:          "PT2H",
				ValidatingCarrier: "AA",
				Price:             "129.99",
				Currency:          "USD",
				BookableSeats:     2,
			},
			LegRecord{
				Leg:              1,
				DepartureAirport: "JFK",
				DepartureTime:    "2026-03-02T07:00:00",
				ArrivalAirport:   "ORD",
				ArrivalTime:      "2026-03-02T09:00:00",
				Duration:         "PT2H",
				CarrierCode:      "AA",
				FlightNumber:     "300",
			},
		},
		nil,
	))

	t.Run("one_stop_flight", flattenOffers(
		[]amadeus.Offer{connectingOffer()},
		[]Record{
			SummaryRecord{
				OfferID:           "1",
				Stops:             1,
				DepartureAirport:  "RDU",
				DepartureTime:     "2026-01-19T08:00:00",
				ArrivalAirport:    "SJU",
				ArrivalTime:       "2026-01-19T11:10:00",
				Duration:          "PT3H10M",
				ValidatingCarrier: "UA",
				Price:             "210.50",
				Currency:          "USD",
				BookableSeats:     4,
			},
			LegRecord{
				Leg:              1,
				DepartureAirport: "RDU",
				DepartureTime:    "2026-01-19T08:00:00",
				ArrivalAirport:   "MIA",
				ArrivalTime:      "2026-01-19T09:30:00",
				Duration:         "PT1H30M",
				CarrierCode:      "UA",
				FlightNumber:     "123",
			},
			LegRecord{
				Leg:              2,
				DepartureAirport: "MIA",
				DepartureTime:    "2026-01-19T10:10:00",
				ArrivalAirport:   "SJU",
				ArrivalTime:      "2026-01-19T11:10:00",
				Duration:         "PT1H",
				CarrierCode:      "UA",
				FlightNumber:     "456",
			},
		},
		nil,
	))

	t.Run("no_segments_fails_batch", flattenOffers(
		[]amadeus.Offer{
			directOffer(),
			{ID: "9", Itineraries: []amadeus.Itinerary{{Duration: "PT1H"}}},
		},
		nil,
		MalformedOfferError{OfferID: "9"},
	))

	t.Run("no_itineraries_fails_batch", flattenOffers(
		[]amadeus.Offer{{ID: "11"}},
		nil,
		MalformedOfferError{OfferID: "11"},
	))
}

func TestFlatten_OfferOrderPreserved(t *testing.T) {
	records, err := Flatten([]amadeus.Offer{connectingOffer(), directOffer()})
	assert.NoError(t, err)
	assert.Len(t, records, 5)

	// one summary followed by its legs, per offer, in input order
	first, ok := records[0].(SummaryRecord)
	assert.True(t, ok)
	assert.Equal(t, "1", first.OfferID)
	assert.Equal(t, KindLeg, records[1].Kind())
	assert.Equal(t, KindLeg, records[2].Kind())

	second, ok := records[3].(SummaryRecord)
	assert.True(t, ok)
	assert.Equal(t, "7", second.OfferID)
	assert.Equal(t, KindLeg, records[4].Kind())
}

func TestFlatten_RecordCountProperty(t *testing.T) {
	// 1 + N records for an offer with N segments
	for _, offer := range []amadeus.Offer{directOffer(), connectingOffer()} {
		records, err := Flatten([]amadeus.Offer{offer})
		assert.NoError(t, err)
		assert.Len(t, records, 1+len(offer.Itineraries[0].Segments))

		summary := records[0].(SummaryRecord)
		assert.Equal(t, len(offer.Itineraries[0].Segments)-1, summary.Stops)

		for i, record := range records[1:] {
			leg := record.(LegRecord)
			assert.Equal(t, i+1, leg.Leg)
		}
	}
}

func TestFlatten_MissingValidatingCarrier(t *testing.T) {
	offer := directOffer()
	offer.ValidatingAirlineCodes = nil

	records, err := Flatten([]amadeus.Offer{offer})
	assert.NoError(t, err)

	summary := records[0].(SummaryRecord)
	assert.Empty(t, summary.ValidatingCarrier)
}

func TestFlatten_OnlyFirstItinerarySurfaced(t *testing.T) {
	offer := connectingOffer()
	offer.Itineraries = append(offer.Itineraries, amadeus.Itinerary{
		Duration: "PT4H",
		Segments: []amadeus.Segment{
			{
				Departure:   amadeus.FlightPoint{IATACode: "SJU", At: "2026-01-26T12:00:00"},
				Arrival:     amadeus.FlightPoint{IATACode: "RDU", At: "2026-01-26T16:00:00"},
				Duration:    "PT4H",
				CarrierCode: "UA",
				Number:      "789",
			},
		},
	})

	records, err := Flatten([]amadeus.Offer{offer})
	assert.NoError(t, err)

	// the return itinerary contributes no records
	assert.Len(t, records, 3)
	summary := records[0].(SummaryRecord)
	assert.Equal(t, "PT3H10M", summary.Duration)
	assert.Equal(t, "SJU", summary.ArrivalAirport)
}

func TestFlattenLenient_BatchIsolation(t *testing.T) {
	offers := []amadeus.Offer{
		connectingOffer(),
		{ID: "9", Itineraries: []amadeus.Itinerary{{Duration: "PT1H"}}},
		directOffer(),
	}

	records := FlattenLenient(context.Background(), offers)

	// the malformed offer is dropped, both well-formed offers survive
	assert.Len(t, records, 5)
	assert.Equal(t, "1", records[0].(SummaryRecord).OfferID)
	assert.Equal(t, "7", records[3].(SummaryRecord).OfferID)
}
