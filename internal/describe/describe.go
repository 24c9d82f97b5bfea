package describe

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics for one feature. Std is NaN
// when fewer than two values are present.
type Summary struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Std    float64 `yaml:"std"`
	Min    float64 `yaml:"min"`
	Q1     float64 `yaml:"q1"`
	Median float64 `yaml:"median"`
	Q3     float64 `yaml:"q3"`
	Max    float64 `yaml:"max"`
}

// Bin is one histogram bin. High is exclusive except for the last bin.
type Bin struct {
	Low   float64 `yaml:"low"`
	High  float64 `yaml:"high"`
	Count int     `yaml:"count"`
}

// CategoryCount is one level of a binary/categorical feature.
type CategoryCount struct {
	Value int `yaml:"value"`
	Count int `yaml:"count"`
}

// Summarize computes the summary statistics for values. It does not
// modify its input. An empty input yields a zero-count summary with
// NaN statistics.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Summary{Count: 0, Mean: nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	std := math.NaN()
	if n >= 2 {
		std = stat.StdDev(values, nil)
	}

	return Summary{
		Count:  n,
		Mean:   stat.Mean(values, nil),
		Std:    std,
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[n-1],
	}
}

// Quantile returns the q-th quantile of sorted values using linear
// interpolation between order statistics. The input must be sorted
// ascending.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Histogram bins values into bins equal-width intervals spanning
// [min, max]. The final bin includes its upper edge. Returns nil for
// empty input or bins < 1.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins < 1 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]Bin, bins)
	width := (hi - lo) / float64(bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	if width == 0 {
		// All values identical: everything lands in the first bin.
		out[0].Count = len(values)
		return out
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// Categories counts occurrences of each distinct integer level,
// ordered by level. Intended for binary features.
func Categories(values []float64) []CategoryCount {
	counts := make(map[int]int)
	for _, v := range values {
		counts[int(v)]++
	}

	levels := make([]int, 0, len(counts))
	for k := range counts {
		levels = append(levels, k)
	}
	sort.Ints(levels)

	out := make([]CategoryCount, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, CategoryCount{Value: lvl, Count: counts[lvl]})
	}
	return out
}
