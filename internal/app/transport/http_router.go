package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ptorres/flight-tracker/internal/app/config"
	"github.com/ptorres/flight-tracker/internal/app/dto"
	"github.com/ptorres/flight-tracker/internal/app/endpoints"
	httptransport "github.com/ptorres/flight-tracker/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	_ *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.TrackerEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchCriteria],
			httptransport.ResponseWithBody,
		))

		router.Post("/tracked-searches", httptransport.MakeHandlerFunc(
			endpts.TrackerEndpoint.TrackSearch,
			httptransport.DecodeRequest[dto.SearchCriteria],
			httptransport.CreatedResponseWithBody,
		))
	})

	return router
}
