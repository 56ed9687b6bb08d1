package service

import (
	"sort"

	"retail-analytics/internal/model"
)

// countByLabel tallies labels and returns entries sorted by count
// descending, ties broken by label for stable output.
func countByLabel(labels []string) []model.LabelCount {
	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}

	out := make([]model.LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, model.LabelCount{Label: label, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})

	return out
}

// distinct returns the number of unique values.
func distinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// mean returns the arithmetic mean, or 0 for an empty input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// histogram buckets values into bins fixed-width intervals spanning
// [min, max]. Values equal to max land in the last bucket.
func histogram(values []float64, bins int) []model.HistogramBucket {
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

	if lo == hi {
		return []model.HistogramBucket{{Low: lo, High: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	buckets := make([]model.HistogramBucket, bins)
	for i := range buckets {
		buckets[i].Low = lo + float64(i)*width
		buckets[i].High = lo + float64(i+1)*width
	}
	buckets[bins-1].High = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		buckets[idx].Count++
	}

	return buckets
}

// topN truncates a breakdown to its first n entries.
func topN(entries []model.LabelCount, n int) []model.LabelCount {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
