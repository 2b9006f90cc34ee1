package main

import (
	"context"
	"flag"
	"io"
	"os"

	application "github.com/diwise/api-infraquality/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

func openMappingsFile(ctx context.Context, path string) *os.File {
	log := logging.GetFromContext(ctx)
	mappingsfile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the service mappings file %s.", path)
		return nil
	}
	return mappingsfile
}

var datasetSourceName string
var serviceMappingsFileName string

func main() {
	serviceName := "api-infraquality"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&datasetSourceName, "dataset", "/opt/diwise/datasets/infraquality.csv", "A delimited survey file, or a URL, to serve quality data from")
	flag.StringVar(&serviceMappingsFileName, "mappings", "/opt/diwise/config/servicemappings.yaml", "A yaml file mapping indicator columns to infrastructure services")
	flag.Parse()

	mappingsfile := openMappingsFile(ctx, serviceMappingsFileName)

	var mappings io.Reader
	if mappingsfile != nil {
		defer mappingsfile.Close()
		mappings = mappingsfile
	}

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	r := chi.NewRouter()

	app := application.NewAPI(r, ctx, datasetSourceName, mappings)

	err := app.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
