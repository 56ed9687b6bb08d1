package service

import (
	"testing"

	"retail-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByLabel(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected []model.LabelCount
	}{
		{
			name:     "Empty input",
			labels:   nil,
			expected: []model.LabelCount{},
		},
		{
			name:   "Sorted by count descending",
			labels: []string{"a", "b", "b", "c", "c", "c"},
			expected: []model.LabelCount{
				{Label: "c", Count: 3},
				{Label: "b", Count: 2},
				{Label: "a", Count: 1},
			},
		},
		{
			name:   "Ties broken by label",
			labels: []string{"z", "a", "z", "a"},
			expected: []model.LabelCount{
				{Label: "a", Count: 2},
				{Label: "z", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countByLabel(tt.labels))
		})
	}
}

func TestCountByLabel_TotalMatchesInput(t *testing.T) {
	labels := []string{"x", "y", "x", "z", "x", "y"}

	total := 0
	for _, entry := range countByLabel(labels) {
		total += entry.Count
	}

	assert.Equal(t, len(labels), total)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, 0, distinct(nil))
	assert.Equal(t, 3, distinct([]string{"a", "b", "c", "a", "b"}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.5, mean([]float64{1, 2, 3, 4}))
}

func TestHistogram(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		assert.Nil(t, histogram(nil, 10))
	})

	t.Run("Single value collapses to one bucket", func(t *testing.T) {
		buckets := histogram([]float64{5, 5, 5}, 10)
		require.Len(t, buckets, 1)
		assert.Equal(t, 3, buckets[0].Count)
		assert.Equal(t, 5.0, buckets[0].Low)
		assert.Equal(t, 5.0, buckets[0].High)
	})

	t.Run("Counts sum to input size", func(t *testing.T) {
		values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		buckets := histogram(values, 4)
		require.Len(t, buckets, 4)

		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, len(values), total)
	})

	t.Run("Max value lands in last bucket", func(t *testing.T) {
		buckets := histogram([]float64{0, 10}, 5)
		require.Len(t, buckets, 5)
		assert.Equal(t, 1, buckets[0].Count)
		assert.Equal(t, 1, buckets[4].Count)
	})
}

func TestTopN(t *testing.T) {
	entries := []model.LabelCount{{Label: "a"}, {Label: "b"}, {Label: "c"}}

	assert.Len(t, topN(entries, 2), 2)
	assert.Len(t, topN(entries, 5), 3)
}
