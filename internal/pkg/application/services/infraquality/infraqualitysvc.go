package infraquality

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/diwise/api-infraquality/internal/pkg/application/aggregates"
	"github.com/diwise/api-infraquality/internal/pkg/application/datasets"
	"github.com/diwise/api-infraquality/internal/pkg/application/insights"
	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraservices"
	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-infraquality/svcs/infraquality")

//go:generate moq -rm -out infraqualitysvc_mock.go . InfraQualityService

type InfraQualityService interface {
	Start()
	Shutdown()

	Source() string
	Synthetic() bool

	Regions() []string
	Indicators() []string

	RegionMeans(sel aggregates.Selection, indicator string) []domain.RegionValue
	TransportSums(sel aggregates.Selection) domain.TransportSums
	ServiceBadness(sel aggregates.Selection) []domain.ServiceStat
	ServiceCoverage(sel aggregates.Selection) []domain.ServiceStat
	Insights(sel aggregates.Selection, indicator, mode string) domain.InsightSummary
}

func NewInfraQualityService(ctx context.Context, logger zerolog.Logger, source string, loader datasets.Loader, registry infraservices.Registry) InfraQualityService {
	return &infraqualitySvc{
		source:   source,
		loader:   loader,
		registry: registry,

		ctx:         ctx,
		log:         logger,
		keepRunning: true,
	}
}

type infraqualitySvc struct {
	source   string
	loader   datasets.Loader
	registry infraservices.Registry

	dataMutex sync.Mutex
	dataset   *domain.Dataset
	synthetic bool

	ctx context.Context
	log zerolog.Logger

	keepRunning bool
}

func (svc *infraqualitySvc) Start() {
	svc.log.Info().Msg("starting infraquality service")

	// the first refresh is synchronous so that data is available as soon
	// as the service has started
	err := svc.refresh()
	if err != nil {
		svc.log.Warn().Err(err).Msg("dataset source not available on startup")
	}

	// TODO: Prevent multiple starts on the same service
	go svc.run(err == nil)
}

func (svc *infraqualitySvc) Shutdown() {
	svc.log.Info().Msg("shutting down infraquality service")
	svc.keepRunning = false
}

func (svc *infraqualitySvc) Source() string {
	return svc.source
}

func (svc *infraqualitySvc) Synthetic() bool {
	svc.dataMutex.Lock()
	defer svc.dataMutex.Unlock()

	return svc.synthetic
}

func (svc *infraqualitySvc) Regions() []string {
	ds := svc.currentDataset()
	if ds == nil {
		return []string{}
	}

	return ds.Regions
}

func (svc *infraqualitySvc) Indicators() []string {
	ds := svc.currentDataset()
	if ds == nil {
		return []string{}
	}

	return ds.IndicatorColumns()
}

func (svc *infraqualitySvc) RegionMeans(sel aggregates.Selection, indicator string) []domain.RegionValue {
	ds := svc.currentDataset()
	if ds == nil {
		return []domain.RegionValue{}
	}

	return aggregates.RegionMeans(ds, sel, indicator)
}

func (svc *infraqualitySvc) TransportSums(sel aggregates.Selection) domain.TransportSums {
	ds := svc.currentDataset()
	if ds == nil {
		return domain.TransportSums{}
	}

	return aggregates.TransportSums(ds, sel, svc.registry.TransportModes())
}

func (svc *infraqualitySvc) ServiceBadness(sel aggregates.Selection) []domain.ServiceStat {
	ds := svc.currentDataset()
	if ds == nil {
		return []domain.ServiceStat{}
	}

	return aggregates.ServiceBadness(ds, sel, svc.registry.Services())
}

func (svc *infraqualitySvc) ServiceCoverage(sel aggregates.Selection) []domain.ServiceStat {
	ds := svc.currentDataset()
	if ds == nil {
		return []domain.ServiceStat{}
	}

	return aggregates.ServiceCoverage(ds, sel, svc.registry.Services())
}

// Insights composes the derived observations for one indicator: best and
// worst region from the ranked means, the dominant transport mode, and the
// correlation between the means and one mode's per region sums. When no mode
// is named the dominant one is used.
func (svc *infraqualitySvc) Insights(sel aggregates.Selection, indicator, mode string) domain.InsightSummary {
	summary := domain.InsightSummary{Indicator: indicator}

	ds := svc.currentDataset()
	if ds == nil {
		return summary
	}

	ranked := aggregates.RegionMeans(ds, sel, indicator)

	if best, ok := insights.Best(ranked); ok {
		summary.BestRegion = &best
	}

	if worst, ok := insights.Worst(ranked); ok {
		summary.WorstRegion = &worst
	}

	sums := aggregates.TransportSums(ds, sel, svc.registry.TransportModes())

	totals := map[string]float64{}
	for _, modeSums := range sums {
		for name, v := range modeSums {
			totals[name] += v
		}
	}

	if dominant, ok := insights.Dominant(totals); ok {
		summary.DominantTransport = dominant

		if mode == "" {
			mode = dominant
		}
	}

	if mode != "" {
		a := make([]float64, 0, len(ranked))
		b := make([]float64, 0, len(ranked))

		for _, rv := range ranked {
			a = append(a, rv.Value)
			b = append(b, sums[rv.Region][mode])
		}

		if r, err := insights.Correlation(a, b); err == nil {
			summary.Correlation = &domain.Correlation{
				Against:     mode,
				Coefficient: r,
				Strength:    insights.Strength(r),
			}
		}
	}

	return summary
}

func (svc *infraqualitySvc) run(refreshedOnStart bool) {
	nextRefreshTime := time.Now().Add(10 * time.Second)
	if refreshedOnStart {
		nextRefreshTime = time.Now().Add(5 * time.Minute)
	}

	for svc.keepRunning {
		if time.Now().After(nextRefreshTime) {
			svc.log.Info().Msg("refreshing quality dataset")
			err := svc.refresh()

			if err != nil {
				svc.log.Error().Err(err).Msg("failed to refresh quality dataset")
				// Retry every 10 seconds on error
				nextRefreshTime = time.Now().Add(10 * time.Second)
			} else {
				// Refresh every 5 minutes on success
				nextRefreshTime = time.Now().Add(5 * time.Minute)
			}
		}

		// TODO: Use blocking channels instead of sleeps
		time.Sleep(1 * time.Second)
	}

	svc.log.Info().Msg("infraquality service exiting")
}

func (svc *infraqualitySvc) refresh() error {
	var err error
	ctx, span := tracer.Start(svc.ctx, "refresh-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	// URL sources have no modification time to revalidate against, so force
	// a re-download on every refresh
	if strings.HasPrefix(svc.source, "http://") || strings.HasPrefix(svc.source, "https://") {
		svc.loader.Invalidate(svc.source)
	}

	var ds *domain.Dataset
	ds, err = svc.loader.Load(ctx, svc.source)
	if err != nil {
		if svc.currentDataset() == nil {
			logger.Warn().Err(err).Msg("dataset unavailable, falling back to synthetic demonstration data")
			svc.storeDataset(datasets.Synthetic(), true)
		} else {
			logger.Warn().Err(err).Msg("dataset unavailable, keeping previously loaded data")
		}

		return err
	}

	svc.storeDataset(ds, false)

	return nil
}

func (svc *infraqualitySvc) currentDataset() *domain.Dataset {
	svc.dataMutex.Lock()
	defer svc.dataMutex.Unlock()

	return svc.dataset
}

func (svc *infraqualitySvc) storeDataset(ds *domain.Dataset, synthetic bool) {
	svc.dataMutex.Lock()
	defer svc.dataMutex.Unlock()

	svc.dataset = ds
	svc.synthetic = synthetic
}
