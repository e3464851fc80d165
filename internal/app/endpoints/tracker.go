package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/ptorres/flight-tracker/internal/app/dto"
)

// Endpoints aggregates all service endpoints exposed over HTTP.
type Endpoints struct {
	TrackerEndpoint TrackerEndpoint
}

type TrackerService interface {
	SearchFlights(ctx context.Context, req dto.SearchCriteria) (dto.SearchFlightsResponse, error)
	TrackSearch(ctx context.Context, req dto.SearchCriteria) (dto.TrackSearchResponse, error)
}

type TrackerEndpoint struct {
	SearchFlights endpoint.Endpoint
	TrackSearch   endpoint.Endpoint
}

func MakeTrackerEndpoint(service TrackerService) TrackerEndpoint {
	return TrackerEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service),
		TrackSearch:   makeTrackSearchEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service TrackerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("tracker service: %w", err)
		}

		return response, nil
	}
}

func makeTrackSearchEndpoint(service TrackerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.TrackSearch(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("tracker service: %w", err)
		}

		return response, nil
	}
}
