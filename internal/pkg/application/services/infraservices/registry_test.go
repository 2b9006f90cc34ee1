package infraservices

import (
	"bytes"
	"testing"

	"github.com/diwise/api-infraquality/internal/pkg/application/datasets"
	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)

	config := bytes.NewBufferString(configFile)
	reg, err := NewRegistry(config)
	is.NoErr(err)

	services := reg.Services()
	is.Equal(len(services), 2)
	is.Equal(services[0].Name, "main roads")
	is.Equal(services[0].Bad, "State of the main roads - bad")
	is.Equal(services[1].Good, "State of the water network - good")

	modes := reg.TransportModes()
	is.Equal(len(modes), 1)
	is.Equal(modes[0].Column, "The main means of public transport - taxis")
}

func TestLoadRejectsUnnamedServices(t *testing.T) {
	is := is.New(t)

	_, err := NewRegistry(bytes.NewBufferString(unnamedService))
	is.True(err != nil)
}

func TestLoadRejectsServicesWithoutIndicatorColumns(t *testing.T) {
	is := is.New(t)

	_, err := NewRegistry(bytes.NewBufferString(serviceWithoutColumns))
	is.True(err != nil)
}

func TestLoadRejectsTransportModesWithoutColumns(t *testing.T) {
	is := is.New(t)

	_, err := NewRegistry(bytes.NewBufferString(modeWithoutColumn))
	is.True(err != nil)
}

func TestDefaultRegistryCoversTheDemonstrationSchema(t *testing.T) {
	is := is.New(t)

	reg := DefaultRegistry()
	ds := datasets.Synthetic()

	for _, mode := range reg.TransportModes() {
		is.True(ds.HasColumn(mode.Column)) // every default mode maps to a column
	}

	for _, svc := range reg.Services() {
		if svc.Good != "" {
			is.True(ds.HasColumn(svc.Good))
		}
		if svc.Bad != "" {
			is.True(ds.HasColumn(svc.Bad))
		}
	}
}

const configFile string = `
services:
  - name: main roads
    good: State of the main roads - good
    bad: State of the main roads - bad
  - name: water network
    good: State of the water network - good
transport:
  - name: taxis
    column: The main means of public transport - taxis
`

const unnamedService string = `
services:
  - good: State of the main roads - good
`

const serviceWithoutColumns string = `
services:
  - name: main roads
`

const modeWithoutColumn string = `
transport:
  - name: taxis
`
