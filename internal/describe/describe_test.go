package describe

import (
	"math"
	"sort"
	"testing"
)

func TestSummarizeBasics(t *testing.T) {
	values := []float64{4, 1, 3, 2, 5}
	s := Summarize(values)

	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if s.Mean != 3 {
		t.Errorf("Mean = %v, want 3", s.Mean)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("Min/Max = %v/%v, want 1/5", s.Min, s.Max)
	}
	if s.Median != 3 {
		t.Errorf("Median = %v, want 3", s.Median)
	}
	if s.Q1 != 2 || s.Q3 != 4 {
		t.Errorf("Q1/Q3 = %v/%v, want 2/4", s.Q1, s.Q3)
	}
	// Sample std of 1..5 is sqrt(2.5).
	if math.Abs(s.Std-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("Std = %v, want %v", s.Std, math.Sqrt(2.5))
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Summarize mutated its input: %v", values)
	}
}

func TestSummarizeMeanWithinRange(t *testing.T) {
	values := []float64{-12.3, -4.1, -8.8, -15.0, -2.2, -6.6}
	s := Summarize(values)
	if s.Mean < s.Min || s.Mean > s.Max {
		t.Errorf("Mean %v outside [%v, %v]", s.Mean, s.Min, s.Max)
	}
}

func TestSummarizeStdUndefinedBelowTwoRows(t *testing.T) {
	s := Summarize([]float64{42})
	if !math.IsNaN(s.Std) {
		t.Errorf("Std with one value = %v, want NaN", s.Std)
	}
	if s.Mean != 42 || s.Min != 42 || s.Max != 42 || s.Median != 42 {
		t.Errorf("single-value summary wrong: %+v", s)
	}

	empty := Summarize(nil)
	if empty.Count != 0 || !math.IsNaN(empty.Std) || !math.IsNaN(empty.Mean) {
		t.Errorf("empty summary wrong: %+v", empty)
	}
}

func TestMedianEqualsMidQuantile(t *testing.T) {
	cases := [][]float64{
		{1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{0.1, 0.9, 0.4, 0.4, 0.7, 0.2},
		{-3, 10},
	}
	for _, values := range cases {
		s := Summarize(values)
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		if q := Quantile(sorted, 0.5); s.Median != q {
			t.Errorf("Summarize(%v).Median = %v, Quantile(0.5) = %v", values, s.Median, q)
		}
	}
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, c := range cases {
		if got := Quantile(sorted, c.q); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Quantile(%v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}
	bins := Histogram(values, 5)

	if len(bins) != 5 {
		t.Fatalf("Histogram returned %d bins, want 5", len(bins))
	}

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(values) {
		t.Errorf("histogram counts sum to %d, want %d", total, len(values))
	}
	if bins[0].Low != 0 || bins[4].High != 10 {
		t.Errorf("histogram range [%v, %v], want [0, 10]", bins[0].Low, bins[4].High)
	}
	// Max value lands in the final bin, not past it.
	if bins[4].Count == 0 {
		t.Error("final bin should contain the maximum value")
	}
}

func TestHistogramConstantValues(t *testing.T) {
	bins := Histogram([]float64{7, 7, 7}, 4)
	if len(bins) != 4 {
		t.Fatalf("Histogram returned %d bins, want 4", len(bins))
	}
	if bins[0].Count != 3 {
		t.Errorf("constant values: first bin has %d, want 3", bins[0].Count)
	}
}

func TestHistogramEmpty(t *testing.T) {
	if bins := Histogram(nil, 10); bins != nil {
		t.Errorf("Histogram(nil) = %v, want nil", bins)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories([]float64{1, 0, 1, 1, 0})
	if len(cats) != 2 {
		t.Fatalf("Categories returned %d levels, want 2", len(cats))
	}
	if cats[0].Value != 0 || cats[0].Count != 2 {
		t.Errorf("level 0: %+v, want {0 2}", cats[0])
	}
	if cats[1].Value != 1 || cats[1].Count != 3 {
		t.Errorf("level 1: %+v, want {1 3}", cats[1])
	}
}
