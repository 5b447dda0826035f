package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func column(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func TestDescribe(t *testing.T) {
	s := Describe(column(2, 4, 4, 4, 5, 5, 7, 9))

	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.13809, s.Std, 1e-4) // sample std dev
	assert.InDelta(t, 2.0, s.Min, 1e-9)
	assert.InDelta(t, 9.0, s.Max, 1e-9)
}

func TestDescribe_SkipsNilCells(t *testing.T) {
	col := column(10, 20)
	col = append(col, nil, nil)
	col = append(col, column(30)...)

	s := Describe(col)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 20.0, s.Mean, 1e-9)
	assert.InDelta(t, 10.0, s.Min, 1e-9)
	assert.InDelta(t, 30.0, s.Max, 1e-9)
}

func TestDescribe_EmptyColumn(t *testing.T) {
	s := Describe([]*float64{nil, nil})
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Min))
	assert.True(t, math.IsNaN(s.Max))
}

func TestDescribe_SingleValueHasNoStd(t *testing.T) {
	s := Describe(column(42))
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 42.0, s.Mean, 1e-9)
	assert.True(t, math.IsNaN(s.Std))
}

func TestSum(t *testing.T) {
	col := column(0.5, 1.25)
	col = append(col, nil)
	assert.InDelta(t, 1.75, Sum(col), 1e-9)
	assert.InDelta(t, 0.0, Sum([]*float64{nil}), 1e-9)
}
