// Package itinerary flattens nested flight offers (offer -> itineraries ->
// segments) into a uniform display sequence: one SummaryRecord per offer
// followed by one LegRecord per segment.
package itinerary

import (
	"context"
	"log/slog"

	"github.com/ptorres/flight-tracker/internal/pkg/amadeus"
)

// Flatten converts raw offers into display records, preserving offer order.
// An empty input yields an empty output. An offer whose first itinerary has
// no segments aborts the whole batch with a MalformedOfferError.
func Flatten(offers []amadeus.Offer) ([]Record, error) {
	records := make([]Record, 0, 2*len(offers))

	for _, offer := range offers {
		offerRecords, err := flattenOffer(offer)
		if err != nil {
			return nil, err
		}

		records = append(records, offerRecords...)
	}

	return records, nil
}

// FlattenLenient is Flatten with per-offer isolation: malformed offers are
// skipped and logged instead of failing the batch.
func FlattenLenient(ctx context.Context, offers []amadeus.Offer) []Record {
	records := make([]Record, 0, 2*len(offers))

	for _, offer := range offers {
		offerRecords, err := flattenOffer(offer)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed offer",
				slog.String("offer_id", offer.ID),
				slog.String("error", err.Error()))

			continue
		}

		records = append(records, offerRecords...)
	}

	return records
}

func flattenOffer(offer amadeus.Offer) ([]Record, error) {
	if len(offer.Itineraries) == 0 {
		return nil, MalformedOfferError{OfferID: offer.ID, Reason: "offer has no itineraries"}
	}

	// only the first itinerary is surfaced; round-trip offers carry a
	// second itinerary that this engine does not model
	leg := offer.Itineraries[0]
	if len(leg.Segments) == 0 {
		return nil, MalformedOfferError{OfferID: offer.ID, Reason: "itinerary has no segments"}
	}

	segments := leg.Segments
	first := segments[0]
	last := segments[len(segments)-1]

	// a missing validating carrier degrades to an empty code rather than
	// failing the offer
	var validating string
	if len(offer.ValidatingAirlineCodes) > 0 {
		validating = offer.ValidatingAirlineCodes[0]
	}

	records := make([]Record, 0, 1+len(segments))
	records = append(records, SummaryRecord{
		OfferID:           offer.ID,
		Stops:             len(segments) - 1,
		DepartureAirport:  first.Departure.IATACode,
		DepartureTime:     first.Departure.At,
		ArrivalAirport:    last.Arrival.IATACode,
		ArrivalTime:       last.Arrival.At,
		Duration:          leg.Duration,
		ValidatingCarrier: validating,
		Price:             offer.Price.GrandTotal,
		Currency:          offer.Price.Currency,
		BookableSeats:     offer.NumberOfBookableSeats,
	})

	for i, segment := range segments {
		records = append(records, LegRecord{
			Leg:              i + 1,
			DepartureAirport: segment.Departure.IATACode,
			DepartureTime:    segment.Departure.At,
			ArrivalAirport:   segment.Arrival.IATACode,
			ArrivalTime:      segment.Arrival.At,
			Duration:         segment.Duration,
			CarrierCode:      segment.CarrierCode,
			FlightNumber:     segment.Number,
		})
	}

	return records, nil
}
