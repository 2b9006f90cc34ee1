package insights

import (
	"errors"
	"math"
	"sort"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
)

// ErrUndefinedCorrelation is returned when no coefficient exists for the
// given series: fewer than two aligned points, mismatched lengths, or zero
// variance in either series.
var ErrUndefinedCorrelation = errors.New("correlation is undefined")

const (
	StrengthPositive = "positive"
	StrengthNegative = "negative"
	StrengthWeak     = "weak"
)

// Best returns the first entry of a ranked aggregate.
func Best(ranked []domain.RegionValue) (domain.RegionValue, bool) {
	if len(ranked) == 0 {
		return domain.RegionValue{}, false
	}

	return ranked[0], true
}

// Worst returns the last entry of a ranked aggregate.
func Worst(ranked []domain.RegionValue) (domain.RegionValue, bool) {
	if len(ranked) == 0 {
		return domain.RegionValue{}, false
	}

	return ranked[len(ranked)-1], true
}

// Dominant returns the key with the largest total. Ties resolve to the
// lexicographically smallest key so that the result is deterministic.
func Dominant(totals map[string]float64) (string, bool) {
	if len(totals) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dominant := keys[0]
	for _, k := range keys[1:] {
		if totals[k] > totals[dominant] {
			dominant = k
		}
	}

	return dominant, true
}

// Correlation computes the Pearson coefficient over two aligned series,
// clamped to [-1, 1]. Pairs with non finite values are skipped.
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrUndefinedCorrelation
	}

	var n, sumX, sumY, sumXX, sumYY, sumXY float64

	for i := range a {
		x, y := a[i], b[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}

		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}

	if n < 2 {
		return 0, ErrUndefinedCorrelation
	}

	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 || math.IsNaN(denom) {
		return 0, ErrUndefinedCorrelation
	}

	r := (n*sumXY - sumX*sumY) / denom

	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return r, nil
}

// Strength labels a coefficient. Values at the thresholds count as weak.
func Strength(r float64) string {
	switch {
	case r > 0.3:
		return StrengthPositive
	case r < -0.3:
		return StrengthNegative
	default:
		return StrengthWeak
	}
}
