package aggregates

import (
	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

// Selection is an explicit region filter. Selecting no regions at all is a
// valid state that matches nothing; use AllRegions to opt out of filtering.
type Selection struct {
	all     bool
	regions map[string]struct{}
}

func AllRegions() Selection {
	return Selection{all: true}
}

// Regions selects exactly the named regions. Calling it with no names yields
// a selection that matches nothing.
func Regions(names ...string) Selection {
	s := Selection{regions: make(map[string]struct{}, len(names))}

	for _, name := range names {
		s.regions[name] = struct{}{}
	}

	return s
}

func (s Selection) Contains(region string) bool {
	if s.all {
		return true
	}

	_, ok := s.regions[region]
	return ok
}

// Nothing reports whether the selection explicitly matches no regions.
func (s Selection) Nothing() bool {
	return !s.all && len(s.regions) == 0
}

// RegionMeans computes the mean of the given column per selected region,
// ordered by value descending. Regions with equal means keep the order in
// which they first appear in the dataset. An unknown column yields an empty
// result, as does a selection matching no regions.
func RegionMeans(ds *domain.Dataset, sel Selection, column string) []domain.RegionValue {
	result := []domain.RegionValue{}

	col, ok := ds.ResolveColumn(column)
	if !ok {
		return result
	}

	sums := map[string]float64{}
	counts := map[string]int{}

	for _, rec := range ds.Records {
		if rec.Region == "" || !sel.Contains(rec.Region) {
			continue
		}

		v, ok := rec.Values[col]
		if !ok {
			continue
		}

		sums[rec.Region] += v
		counts[rec.Region]++
	}

	for _, region := range ds.Regions {
		if counts[region] == 0 {
			continue
		}

		result = append(result, domain.RegionValue{
			Region: region,
			Value:  sums[region] / float64(counts[region]),
		})
	}

	slices.SortStableFunc(result, func(a, b domain.RegionValue) bool {
		return a.Value > b.Value
	})

	return result
}

// TransportSums sums each transport mode per selected region. Modes whose
// column is absent from the schema are skipped.
func TransportSums(ds *domain.Dataset, sel Selection, modes []domain.TransportMode) domain.TransportSums {
	result := domain.TransportSums{}

	columns := map[string]string{}
	for _, mode := range modes {
		if col, ok := ds.ResolveColumn(mode.Column); ok {
			columns[mode.Name] = col
		}
	}

	if len(columns) == 0 {
		return result
	}

	for _, rec := range ds.Records {
		if rec.Region == "" || !sel.Contains(rec.Region) {
			continue
		}

		sums, ok := result[rec.Region]
		if !ok {
			sums = map[string]float64{}
			for name := range columns {
				sums[name] = 0
			}
			result[rec.Region] = sums
		}

		for name, col := range columns {
			if v, ok := rec.Values[col]; ok {
				sums[name] += v
			}
		}
	}

	return result
}

// ServiceBadness reports, per mapped service, how large a share of the
// filtered records have the bad indicator set. Services without a resolvable
// bad column are omitted.
func ServiceBadness(ds *domain.Dataset, sel Selection, services []domain.ServiceMapping) []domain.ServiceStat {
	return servicePercentages(ds, sel, services, func(m domain.ServiceMapping) string { return m.Bad })
}

// ServiceCoverage is the counterpart of ServiceBadness for good indicators.
func ServiceCoverage(ds *domain.Dataset, sel Selection, services []domain.ServiceMapping) []domain.ServiceStat {
	return servicePercentages(ds, sel, services, func(m domain.ServiceMapping) string { return m.Good })
}

func servicePercentages(ds *domain.Dataset, sel Selection, services []domain.ServiceMapping, indicator func(domain.ServiceMapping) string) []domain.ServiceStat {
	result := []domain.ServiceStat{}

	subset := []domain.Record{}
	for _, rec := range ds.Records {
		if !sel.Contains(rec.Region) {
			continue
		}

		subset = append(subset, rec)
	}

	if len(subset) == 0 {
		return result
	}

	for _, svc := range services {
		name := indicator(svc)
		if name == "" {
			continue
		}

		col, ok := ds.ResolveColumn(name)
		if !ok {
			continue
		}

		count := 0
		for _, rec := range subset {
			if rec.Values[col] == 1 {
				count++
			}
		}

		result = append(result, domain.ServiceStat{
			Service:    svc.Name,
			Percentage: float64(count) / float64(len(subset)) * 100,
			Count:      count,
		})
	}

	return result
}
