package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraquality"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

// NewRetrieveServiceBadnessHandler reports the share of records with a bad
// indicator set, per mapped infrastructure service.
func NewRetrieveServiceBadnessHandler(logger zerolog.Logger, svc infraquality.InfraQualityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-service-badness")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stats := svc.ServiceBadness(regionSelection(r))

		responseBody, err := json.Marshal(stats)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal service badness to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		responseBody = []byte("{\"data\":" + string(responseBody) + "}")

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write(responseBody)
	})
}

// NewRetrieveServiceCoverageHandler is the counterpart for good indicators.
func NewRetrieveServiceCoverageHandler(logger zerolog.Logger, svc infraquality.InfraQualityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-service-coverage")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stats := svc.ServiceCoverage(regionSelection(r))

		responseBody, err := json.Marshal(stats)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal service coverage to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		responseBody = []byte("{\"data\":" + string(responseBody) + "}")

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write(responseBody)
	})
}
