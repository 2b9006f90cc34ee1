package datasets

import (
	"math/rand"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
)

const (
	syntheticSeed          = 42
	syntheticRowsPerRegion = 50
)

var syntheticRegions = []string{
	"Marjeyoun_District",
	"Batroun_District",
	"Zgharta_District",
	"North_Governorate",
	"Matn_District",
	"Tyre_District",
	"Beqaa_Governorate",
	"Sidon_District",
}

// syntheticColumns pairs each survey indicator with its probability of
// reporting a 1.
var syntheticColumns = []struct {
	name string
	p    float64
}{
	{"The main means of public transport - buses", 0.1},
	{"The main means of public transport - vans", 0.3},
	{"The main means of public transport - taxis", 0.7},
	{"State of the main roads - good", 0.2},
	{"State of the main roads - bad", 0.3},
	{"State of the secondary roads - good", 0.25},
	{"State of agricultural roads - good", 0.4},
}

// Synthetic builds the demonstration dataset that callers substitute when the
// real source is unavailable. The generator is seeded with a fixed value, so
// repeated calls yield identical data.
func Synthetic() *domain.Dataset {
	rnd := rand.New(rand.NewSource(syntheticSeed))

	columns := []string{"Governorate"}
	for _, c := range syntheticColumns {
		columns = append(columns, c.name)
	}

	records := make([]domain.Record, 0, len(syntheticRegions)*syntheticRowsPerRegion)

	for _, region := range syntheticRegions {
		for i := 0; i < syntheticRowsPerRegion; i++ {
			rec := domain.Record{Region: region, Values: map[string]float64{}}

			for _, c := range syntheticColumns {
				v := 0.0
				if rnd.Float64() < c.p {
					v = 1.0
				}
				rec.Values[c.name] = v
			}

			records = append(records, rec)
		}
	}

	return domain.NewDataset(columns, records)
}
