package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/diwise/api-infraquality/internal/pkg/application/aggregates"
	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraquality"
	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-infraquality/api")

func NewRetrieveRegionsHandler(logger zerolog.Logger, svc infraquality.InfraQualityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-regions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		responseBody, err := json.Marshal(svc.Regions())
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal regions to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		responseBody = []byte("{\"data\":" + string(responseBody) + "}")

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write(responseBody)
	})
}

// NewRetrieveRegionQualityHandler ranks the selected regions by the mean of
// the requested indicator. The ranking is also available as csv.
func NewRetrieveRegionQualityHandler(logger zerolog.Logger, svc infraquality.InfraQualityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-region-quality")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		indicator := r.URL.Query().Get("indicator")
		if indicator == "" {
			err = fmt.Errorf("no indicator is supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		ranked := svc.RegionMeans(regionSelection(r), indicator)

		if strings.Contains(r.Header.Get("Accept"), "text/csv") {
			w.Header().Add("Content-Type", "text/csv")
			w.Header().Add("Cache-Control", "max-age=600")
			w.Write(regionQualityAsCSV(ranked))
			return
		}

		responseBody, err := json.Marshal(ranked)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal region quality to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		responseBody = []byte("{\"data\":" + string(responseBody) + "}")

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write(responseBody)
	})
}

func regionQualityAsCSV(ranked []domain.RegionValue) []byte {
	csv := bytes.NewBufferString("region;value")

	for _, rv := range ranked {
		csv.WriteString(fmt.Sprintf("\r\n%s;%g", rv.Region, rv.Value))
	}

	return csv.Bytes()
}

// regionSelection builds the region filter from the request. An absent
// regions parameter selects all regions, a present but empty one explicitly
// selects nothing.
func regionSelection(r *http.Request) aggregates.Selection {
	values, present := r.URL.Query()["regions"]
	if !present {
		return aggregates.AllRegions()
	}

	names := []string{}
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}
	}

	return aggregates.Regions(names...)
}
