package infraservices

import (
	"errors"
	"fmt"
	"io"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"gopkg.in/yaml.v2"
)

// Registry knows which indicator columns describe each infrastructure
// service and which columns count the transport modes. The mapping is
// external configuration, not code.
type Registry interface {
	Services() []domain.ServiceMapping
	TransportModes() []domain.TransportMode
}

func NewRegistry(input io.Reader) (Registry, error) {
	cfg := struct {
		Services  []domain.ServiceMapping `yaml:"services"`
		Transport []domain.TransportMode  `yaml:"transport"`
	}{}

	b, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping configuration: %s", err.Error())
	}

	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping configuration: %s", err.Error())
	}

	for _, svc := range cfg.Services {
		if svc.Name == "" {
			return nil, errors.New("service mappings must be named")
		}
		if svc.Good == "" && svc.Bad == "" {
			return nil, fmt.Errorf("service mapping %s needs a good or a bad indicator column", svc.Name)
		}
	}

	for _, mode := range cfg.Transport {
		if mode.Name == "" || mode.Column == "" {
			return nil, errors.New("transport modes need both a name and a column")
		}
	}

	return &registry{services: cfg.Services, transport: cfg.Transport}, nil
}

// DefaultRegistry returns the mapping matching the demonstration dataset,
// used when no configuration file is supplied.
func DefaultRegistry() Registry {
	return &registry{
		services: []domain.ServiceMapping{
			{Name: "main roads", Good: "State of the main roads - good", Bad: "State of the main roads - bad"},
			{Name: "secondary roads", Good: "State of the secondary roads - good"},
			{Name: "agricultural roads", Good: "State of agricultural roads - good"},
		},
		transport: []domain.TransportMode{
			{Name: "buses", Column: "The main means of public transport - buses"},
			{Name: "vans", Column: "The main means of public transport - vans"},
			{Name: "taxis", Column: "The main means of public transport - taxis"},
		},
	}
}

type registry struct {
	services  []domain.ServiceMapping
	transport []domain.TransportMode
}

func (r *registry) Services() []domain.ServiceMapping {
	return r.services
}

func (r *registry) TransportModes() []domain.TransportMode {
	return r.transport
}
