package domain

import "strings"

// Record is a single survey row. Region is derived at load time and is empty
// when the source row carries no usable region reference. Values holds the
// numeric cells keyed by canonical column name; empty and non numeric cells
// are absent.
type Record struct {
	Region string
	Values map[string]float64
}

// Dataset is an immutable collection of records together with the column
// schema they were read from.
type Dataset struct {
	Columns []string
	Regions []string
	Records []Record

	lookup     map[string]string
	indicators []string
}

// NewDataset computes the derived schema information that the aggregation
// layer consults before touching any values: a case and whitespace
// insensitive column lookup, the distinct regions in first seen order, and
// the set of indicator columns.
func NewDataset(columns []string, records []Record) *Dataset {
	ds := &Dataset{
		Columns: columns,
		Records: records,
		lookup:  make(map[string]string, len(columns)),
	}

	for _, col := range columns {
		ds.lookup[strings.ToLower(strings.TrimSpace(col))] = col
	}

	seen := map[string]bool{}
	for _, r := range records {
		if r.Region == "" || seen[r.Region] {
			continue
		}
		seen[r.Region] = true
		ds.Regions = append(ds.Regions, r.Region)
	}

	for _, col := range columns {
		if isIndicatorColumn(col, records) {
			ds.indicators = append(ds.indicators, col)
		}
	}

	return ds
}

// isIndicatorColumn reports whether every observed value in the column is 0
// or 1, with at least one value observed.
func isIndicatorColumn(column string, records []Record) bool {
	present := false
	for _, r := range records {
		v, ok := r.Values[column]
		if !ok {
			continue
		}
		if v != 0 && v != 1 {
			return false
		}
		present = true
	}
	return present
}

// ResolveColumn maps any case or whitespace variant of a column name to the
// canonical name from the file header.
func (ds *Dataset) ResolveColumn(name string) (string, bool) {
	col, ok := ds.lookup[strings.ToLower(strings.TrimSpace(name))]
	return col, ok
}

func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.ResolveColumn(name)
	return ok
}

// IndicatorColumns lists the columns holding 0/1 survey answers.
func (ds *Dataset) IndicatorColumns() []string {
	return ds.indicators
}

func (ds *Dataset) Len() int {
	return len(ds.Records)
}

// RegionValue is one entry of a ranked per region aggregate.
type RegionValue struct {
	Region string  `json:"region"`
	Value  float64 `json:"value"`
}

// ServiceStat describes the share of records reporting an indicator for one
// infrastructure service. Count is the number of affected records and
// Percentage is Count over the total record count of the filtered subset.
type ServiceStat struct {
	Service    string  `json:"service"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// TransportSums maps region to the summed value of each transport mode.
type TransportSums map[string]map[string]float64

// ServiceMapping ties one infrastructure service category to the indicator
// columns describing its condition. Either column name may be left empty when
// the dataset has no such indicator.
type ServiceMapping struct {
	Name string `json:"name" yaml:"name"`
	Good string `json:"good,omitempty" yaml:"good,omitempty"`
	Bad  string `json:"bad,omitempty" yaml:"bad,omitempty"`
}

// TransportMode names a public transport mode and the column counting it.
type TransportMode struct {
	Name   string `json:"name" yaml:"name"`
	Column string `json:"column" yaml:"column"`
}

type Correlation struct {
	Against     string  `json:"against"`
	Coefficient float64 `json:"coefficient"`
	Strength    string  `json:"strength"`
}

// InsightSummary collects the derived observations for one indicator. A nil
// Correlation means the coefficient is undefined for the selected data.
type InsightSummary struct {
	Indicator         string       `json:"indicator"`
	BestRegion        *RegionValue `json:"bestRegion,omitempty"`
	WorstRegion       *RegionValue `json:"worstRegion,omitempty"`
	DominantTransport string       `json:"dominantTransport,omitempty"`
	Correlation       *Correlation `json:"correlation,omitempty"`
}
