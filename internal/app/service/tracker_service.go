package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ptorres/flight-tracker/internal/app/dto"
	"github.com/ptorres/flight-tracker/internal/pkg/amadeus"
	"github.com/ptorres/flight-tracker/internal/pkg/exception"
	"github.com/ptorres/flight-tracker/internal/pkg/itinerary"
	"github.com/ptorres/flight-tracker/internal/pkg/tracking"
	"github.com/ptorres/flight-tracker/internal/pkg/utils"
)

// OfferSearcher fetches raw flight offers from the external provider.
type OfferSearcher interface {
	SearchOffers(ctx context.Context, query amadeus.SearchQuery) ([]amadeus.Offer, error)
}

// NameResolver resolves a carrier code to an airline name, best-effort.
type NameResolver interface {
	Resolve(ctx context.Context, code string) (string, bool)
}

// OfferArchiver persists the raw offer payload for audit.
type OfferArchiver interface {
	Write(ctx context.Context, query amadeus.SearchQuery, offers []amadeus.Offer) (string, error)
}

// TrackedSearchStore persists search definitions for auto-tracking.
type TrackedSearchStore interface {
	Insert(ctx context.Context, search tracking.TrackedSearch) error
}

// TrackerService runs flight searches end to end: provider query, raw
// payload archival, itinerary flattening, airline name resolution. It also
// saves search definitions for auto-tracking. All collaborators are
// injected; the service itself holds no mutable state.
type TrackerService struct {
	Searcher OfferSearcher
	Resolver NameResolver
	Archiver OfferArchiver
	Store    TrackedSearchStore

	// LenientNormalization skips malformed offers instead of rejecting
	// the whole result set.
	LenientNormalization bool
}

func NewTrackerService(searcher OfferSearcher, resolver NameResolver,
	archiver OfferArchiver, store TrackedSearchStore, lenient bool) *TrackerService {
	return &TrackerService{
		Searcher:             searcher,
		Resolver:             resolver,
		Archiver:             archiver,
		Store:                store,
		LenientNormalization: lenient,
	}
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search flight offers and return the flattened display records
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchFlightsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *TrackerService) SearchFlights(
	ctx context.Context,
	req dto.SearchCriteria,
) (dto.SearchFlightsResponse, error) {
	startTime := time.Now()
	query := toSearchQuery(req)

	providerFailed := false

	offers, err := s.Searcher.SearchOffers(ctx, query)
	if err != nil {
		// a provider failure means no data for this query, not a failed
		// request
		slog.WarnContext(ctx, "offer search failed",
			slog.String("origin", query.Origin),
			slog.String("destination", query.Destination),
			slog.String("error", err.Error()))

		providerFailed = true
		offers = nil
	}

	var archivePath string
	if len(offers) > 0 {
		archivePath, err = s.Archiver.Write(ctx, query, offers)
		if err != nil {
			slog.WarnContext(ctx, "failed to archive raw offers",
				slog.String("error", err.Error()))

			archivePath = ""
		}
	}

	records, err := s.flatten(ctx, offers)
	if err != nil {
		return dto.SearchFlightsResponse{}, err
	}

	displayRecords := s.toDisplayRecords(ctx, records)

	return dto.SearchFlightsResponse{
		SearchCriteria: req,
		Records:        displayRecords,
		Metadata: dto.Metadata{
			TotalOffers:    len(offers),
			TotalRecords:   len(displayRecords),
			ProviderFailed: providerFailed,
			SearchTimeMs:   int(time.Since(startTime).Milliseconds()),
			ArchivePath:    archivePath,
		},
	}, nil
}

// TrackSearch godoc
// @Summary      Save a search for auto-tracking
// @Tags         Flights
// @Description  Persist a search definition for later repeated execution
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      201      {object}  dto.TrackSearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/tracked-searches [post]
func (s *TrackerService) TrackSearch(
	ctx context.Context,
	req dto.SearchCriteria,
) (dto.TrackSearchResponse, error) {
	search := tracking.TrackedSearch{
		ID:            uuid.New().String(),
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Adults:        req.Adults,
		MaxResults:    req.MaxResults,
		AirlineCodes:  req.AirlineCodes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Store.Insert(ctx, search); err != nil {
		return dto.TrackSearchResponse{}, fmt.Errorf("persist tracked search: %w", err)
	}

	slog.InfoContext(ctx, "search definition tracked",
		slog.String("id", search.ID),
		slog.String("origin", search.Origin),
		slog.String("destination", search.Destination))

	return dto.TrackSearchResponse{
		ID:        search.ID,
		CreatedAt: search.CreatedAt,
	}, nil
}

func (s *TrackerService) flatten(ctx context.Context, offers []amadeus.Offer) ([]itinerary.Record, error) {
	if s.LenientNormalization {
		return itinerary.FlattenLenient(ctx, offers), nil
	}

	records, err := itinerary.Flatten(offers)
	if err != nil {
		var malformed itinerary.MalformedOfferError
		if errors.As(err, &malformed) {
			return nil, exception.ApplicationError{
				StatusCode: ErrMalformedOffers.StatusCode,
				Message:    malformed.Error(),
				Cause:      malformed,
			}
		}

		return nil, fmt.Errorf("flatten offers: %w", err)
	}

	return records, nil
}

func (s *TrackerService) toDisplayRecords(ctx context.Context, records []itinerary.Record) []dto.DisplayRecord {
	out := make([]dto.DisplayRecord, 0, len(records))

	for _, record := range records {
		switch rec := record.(type) {
		case itinerary.SummaryRecord:
			stops := rec.Stops

			var carrier *dto.Airline
			if rec.ValidatingCarrier != "" {
				carrier = &dto.Airline{Code: rec.ValidatingCarrier}
				if name, ok := s.Resolver.Resolve(ctx, rec.ValidatingCarrier); ok {
					carrier.Name = name
				}
			}

			out = append(out, dto.DisplayRecord{
				Type:             string(itinerary.KindSummary),
				OfferID:          rec.OfferID,
				Stops:            &stops,
				DepartureAirport: rec.DepartureAirport,
				DepartureTime:    rec.DepartureTime,
				ArrivalAirport:   rec.ArrivalAirport,
				ArrivalTime:      rec.ArrivalTime,
				Duration:         rec.Duration,
				DurationDisplay:  utils.FormatISODuration(rec.Duration),
				Airline:          carrier,
				Price: &dto.Price{
					Amount:   rec.Price,
					Currency: rec.Currency,
				},
				BookableSeats: rec.BookableSeats,
			})
		case itinerary.LegRecord:
			out = append(out, dto.DisplayRecord{
				Type:             string(itinerary.KindLeg),
				Leg:              rec.Leg,
				DepartureAirport: rec.DepartureAirport,
				DepartureTime:    rec.DepartureTime,
				ArrivalAirport:   rec.ArrivalAirport,
				ArrivalTime:      rec.ArrivalTime,
				Duration:         rec.Duration,
				DurationDisplay:  utils.FormatISODuration(rec.Duration),
				CarrierCode:      rec.CarrierCode,
				FlightNumber:     rec.FlightNumber,
			})
		}
	}

	return out
}

func toSearchQuery(req dto.SearchCriteria) amadeus.SearchQuery {
	return amadeus.SearchQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Adults:        req.Adults,
		MaxResults:    req.MaxResults,
		AirlineCodes:  req.AirlineCodes,
	}
}
