package insights

import (
	"errors"
	"testing"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestCorrelationOfCovaryingSeriesIsPositive(t *testing.T) {
	is := is.New(t)

	r, err := Correlation([]float64{0.2, 0.8}, []float64{10, 90})
	is.NoErr(err)

	is.True(r > 0.3)
	is.Equal(Strength(r), StrengthPositive)
}

func TestCorrelationOfOpposedSeriesIsNegative(t *testing.T) {
	is := is.New(t)

	r, err := Correlation([]float64{1, 2, 3}, []float64{3, 2, 1})
	is.NoErr(err)

	is.True(r < -0.3)
	is.Equal(Strength(r), StrengthNegative)
}

func TestCorrelationIsSymmetric(t *testing.T) {
	is := is.New(t)
	a := []float64{0.1, 0.4, 0.9, 0.3}
	b := []float64{12, 7, 31, 2}

	rab, err := Correlation(a, b)
	is.NoErr(err)
	rba, err := Correlation(b, a)
	is.NoErr(err)

	is.Equal(rab, rba)
}

func TestCorrelationIsUndefinedForASinglePoint(t *testing.T) {
	is := is.New(t)

	_, err := Correlation([]float64{1}, []float64{2})
	is.True(errors.Is(err, ErrUndefinedCorrelation)) // a single region cannot correlate
}

func TestCorrelationIsUndefinedForMismatchedSeries(t *testing.T) {
	is := is.New(t)

	_, err := Correlation([]float64{1, 2}, []float64{1, 2, 3})
	is.True(errors.Is(err, ErrUndefinedCorrelation))
}

func TestCorrelationIsUndefinedForZeroVariance(t *testing.T) {
	is := is.New(t)

	_, err := Correlation([]float64{1, 1, 1}, []float64{1, 2, 3})
	is.True(errors.Is(err, ErrUndefinedCorrelation))
}

func TestStrengthBoundariesCountAsWeak(t *testing.T) {
	is := is.New(t)

	is.Equal(Strength(0.3), StrengthWeak)
	is.Equal(Strength(-0.3), StrengthWeak)
	is.Equal(Strength(0.31), StrengthPositive)
	is.Equal(Strength(-0.31), StrengthNegative)
	is.Equal(Strength(0), StrengthWeak)
}

func TestBestAndWorstAreTheEndsOfTheRanking(t *testing.T) {
	is := is.New(t)
	ranked := []domain.RegionValue{
		{Region: "Region_B", Value: 1},
		{Region: "Region_C", Value: 0.5},
		{Region: "Region_A", Value: 0.1},
	}

	best, ok := Best(ranked)
	is.True(ok)
	is.Equal(best.Region, "Region_B")

	worst, ok := Worst(ranked)
	is.True(ok)
	is.Equal(worst.Region, "Region_A")
}

func TestBestAndWorstOfAnEmptyRanking(t *testing.T) {
	is := is.New(t)

	_, ok := Best(nil)
	is.True(!ok)

	_, ok = Worst(nil)
	is.True(!ok)
}

func TestDominantPicksTheLargestTotal(t *testing.T) {
	is := is.New(t)

	dominant, ok := Dominant(map[string]float64{"buses": 12, "taxis": 48, "vans": 31})
	is.True(ok)
	is.Equal(dominant, "taxis")
}

func TestDominantResolvesTiesDeterministically(t *testing.T) {
	is := is.New(t)

	dominant, ok := Dominant(map[string]float64{"vans": 10, "buses": 10})
	is.True(ok)
	is.Equal(dominant, "buses") // lexicographically smallest key wins a tie
}

func TestDominantOfNothing(t *testing.T) {
	is := is.New(t)

	_, ok := Dominant(nil)
	is.True(!ok)
}
