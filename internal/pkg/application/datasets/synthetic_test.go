package datasets

import (
	"testing"

	"github.com/matryer/is"
)

func TestSyntheticIsDeterministic(t *testing.T) {
	is := is.New(t)

	first := Synthetic()
	second := Synthetic()

	is.Equal(first.Regions, second.Regions)
	is.Equal(first.Records, second.Records) // fixed seed, identical data
}

func TestSyntheticShape(t *testing.T) {
	is := is.New(t)

	ds := Synthetic()

	is.Equal(len(ds.Regions), 8)
	is.Equal(ds.Len(), 400) // 50 records per region
	is.Equal(len(ds.IndicatorColumns()), 7)
	is.True(ds.HasColumn("governorate"))
	is.True(ds.HasColumn("The main means of public transport - taxis"))
}
