package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/diwise/api-infraquality/internal/pkg/application/aggregates"
	"github.com/diwise/api-infraquality/internal/pkg/application/datasets"
	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraquality"
	"github.com/diwise/api-infraquality/internal/pkg/application/services/infraservices"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	datasetSourceName       string
	serviceMappingsFileName string
	indicatorName           string
	transportModeName       string
	regionNames             string
)

func main() {
	// pick up DATASET_SOURCE and MAPPINGS_FILEPATH from a local .env, if any
	godotenv.Load()

	ctx, log, cleanup := o11y.Init(context.Background(), "infraquality-report", buildinfo.SourceVersion())
	defer cleanup()

	flag.StringVar(&datasetSourceName, "dataset", env.GetVariableOrDefault(log, "DATASET_SOURCE", ""), "A delimited survey file, or a URL, to report on")
	flag.StringVar(&serviceMappingsFileName, "mappings", env.GetVariableOrDefault(log, "MAPPINGS_FILEPATH", ""), "A yaml file mapping indicator columns to infrastructure services")
	flag.StringVar(&indicatorName, "indicator", "", "The indicator column to rank regions by (defaults to the first indicator in the dataset)")
	flag.StringVar(&transportModeName, "mode", "", "The transport mode to correlate against (defaults to the dominant mode)")
	flag.StringVar(&regionNames, "regions", "", "A comma separated list of regions to restrict the report to")
	flag.Parse()

	registry := loadServiceRegistry(log, serviceMappingsFileName)

	svc := infraquality.NewInfraQualityService(ctx, log, datasetSourceName, datasets.NewLoader(log), registry)
	svc.Start()
	defer svc.Shutdown()

	if svc.Synthetic() {
		log.Warn().Msg("dataset unavailable, reporting on the built-in demonstration data")
	}

	indicator := indicatorName
	if indicator == "" {
		indicators := svc.Indicators()
		if len(indicators) == 0 {
			log.Fatal().Msg("the dataset has no indicator columns to report on")
		}
		indicator = indicators[0]
	}

	sel := regionSelection(regionNames)

	fmt.Println("Quality by region")
	fmt.Println(qualityTable(indicator, svc.RegionMeans(sel, indicator)))

	fmt.Println()
	fmt.Println("Public transport")
	fmt.Println(transportTable(svc.Regions(), registry.TransportModes(), svc.TransportSums(sel)))

	fmt.Println()
	fmt.Println("Service coverage")
	fmt.Println(serviceTable("Coverage", svc.ServiceCoverage(sel)))

	fmt.Println()
	fmt.Println("Service badness")
	fmt.Println(serviceTable("Badness", svc.ServiceBadness(sel)))

	fmt.Println()
	fmt.Println("Insights")
	fmt.Print(insightSummary(svc.Insights(sel, indicator, transportModeName)))
}

func loadServiceRegistry(log zerolog.Logger, path string) infraservices.Registry {
	if path == "" {
		return infraservices.DefaultRegistry()
	}

	mappingsfile, err := os.Open(path)
	if err != nil {
		log.Warn().Msgf("failed to open the service mappings file %s, using defaults", path)
		return infraservices.DefaultRegistry()
	}
	defer mappingsfile.Close()

	registry, err := infraservices.NewRegistry(mappingsfile)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse service mappings, using defaults")
		return infraservices.DefaultRegistry()
	}

	return registry
}

func regionSelection(commaSeparated string) aggregates.Selection {
	if commaSeparated == "" {
		return aggregates.AllRegions()
	}

	names := []string{}
	for _, name := range strings.Split(commaSeparated, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	return aggregates.Regions(names...)
}
