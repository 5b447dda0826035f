package domain

import "math"

// Stats summarizes one column of a series. Nil cells are skipped; when a
// column has no reported values at all, Count is 0 and the extremes are NaN.
type Stats struct {
	Count int
	Mean  float64
	Std   float64 // sample standard deviation
	Min   float64
	Max   float64
}

// Describe computes summary statistics over an optional-valued column.
func Describe(column []*float64) Stats {
	s := Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), Std: math.NaN()}
	var sum float64
	for _, v := range column {
		if v == nil {
			continue
		}
		if s.Count == 0 {
			s.Min, s.Max = *v, *v
		} else {
			s.Min = math.Min(s.Min, *v)
			s.Max = math.Max(s.Max, *v)
		}
		sum += *v
		s.Count++
	}
	if s.Count == 0 {
		return s
	}
	s.Mean = sum / float64(s.Count)

	if s.Count < 2 {
		s.Std = math.NaN()
		return s
	}
	var sq float64
	for _, v := range column {
		if v == nil {
			continue
		}
		d := *v - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(s.Count-1))
	return s
}

// Mean returns the mean of the reported values, or NaN if there are none.
func Mean(column []*float64) float64 { return Describe(column).Mean }

// Min returns the smallest reported value, or NaN if there are none.
func Min(column []*float64) float64 { return Describe(column).Min }

// Max returns the largest reported value, or NaN if there are none.
func Max(column []*float64) float64 { return Describe(column).Max }

// Sum totals the reported values. An all-nil column sums to 0, matching the
// "no precipitation recorded" reading of an empty rain column.
func Sum(column []*float64) float64 {
	var sum float64
	for _, v := range column {
		if v != nil {
			sum += *v
		}
	}
	return sum
}
