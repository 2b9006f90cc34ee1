package application

import (
	"compress/flate"
	"context"
	"io"
	"net/http"

	"github.com/diwise/api-infraquality/internal/pkg/application/datasets"
	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraquality"
	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraservices"
	"github.com/diwise/api-infraquality/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type infraqualityAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, datasetSource string, mappingsConfig io.Reader) API {
	return newInfraQualityAPI(r, ctx, datasetSource, mappingsConfig)
}

func newInfraQualityAPI(r chi.Router, ctx context.Context, datasetSource string, mappingsConfig io.Reader) *infraqualityAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"text/csv", "application/json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-infraquality", otelchi.WithChiRoutes(r)))

	a := &infraqualityAPI{
		router: r,
		log:    log,
	}

	registry := newServiceRegistry(log, mappingsConfig)

	svc := infraquality.NewInfraQualityService(ctx, log, datasetSource, datasets.NewLoader(log), registry)
	svc.Start()

	a.addQualityHandlers(r, log, svc)
	a.addProbeHandlers(r)

	return a
}

func newServiceRegistry(log zerolog.Logger, mappingsConfig io.Reader) infraservices.Registry {
	if mappingsConfig == nil {
		return infraservices.DefaultRegistry()
	}

	registry, err := infraservices.NewRegistry(mappingsConfig)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse service mappings, using defaults")
		return infraservices.DefaultRegistry()
	}

	return registry
}

func (a *infraqualityAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-infraquality on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *infraqualityAPI) addQualityHandlers(r chi.Router, log zerolog.Logger, svc infraquality.InfraQualityService) {
	r.Get(
		"/api/regions",
		handlers.NewRetrieveRegionsHandler(log, svc),
	)
	r.Get(
		"/api/indicators",
		handlers.NewRetrieveIndicatorsHandler(log, svc),
	)
	r.Get(
		"/api/quality/regions",
		handlers.NewRetrieveRegionQualityHandler(log, svc),
	)
	r.Get(
		"/api/transport/sums",
		handlers.NewRetrieveTransportSumsHandler(log, svc),
	)
	r.Get(
		"/api/services/badness",
		handlers.NewRetrieveServiceBadnessHandler(log, svc),
	)
	r.Get(
		"/api/services/coverage",
		handlers.NewRetrieveServiceCoverageHandler(log, svc),
	)
	r.Get(
		"/api/insights",
		handlers.NewRetrieveInsightsHandler(log, svc),
	)
}

func (a *infraqualityAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
