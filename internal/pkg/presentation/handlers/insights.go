package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraquality"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

// NewRetrieveInsightsHandler summarises one indicator: best and worst region,
// dominant transport mode, and the correlation against one mode. An undefined
// correlation is reported by omitting the correlation field.
func NewRetrieveInsightsHandler(logger zerolog.Logger, svc infraquality.InfraQualityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-insights")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		indicator := r.URL.Query().Get("indicator")
		if indicator == "" {
			err = fmt.Errorf("no indicator is supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mode := r.URL.Query().Get("mode")

		summary := svc.Insights(regionSelection(r), indicator, mode)

		responseBody, err := json.Marshal(summary)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal insights to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		responseBody = []byte("{\"data\":" + string(responseBody) + "}")

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write(responseBody)
	})
}
