package metricstore

import (
	"sort"
	"time"

	"obsengine/models"
)

// SupportedWindows are the fixed aggregation buckets, smallest first.
var SupportedWindows = []time.Duration{
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	time.Hour,
	24 * time.Hour,
}

func IsSupportedWindow(windowSecs int) bool {
	for _, w := range SupportedWindows {
		if int(w/time.Second) == windowSecs {
			return true
		}
	}
	return false
}

// ComputeAggregate reduces raw points of one series within a closed window.
// Input order does not matter; the result is deterministic so a recompute
// from the same raw points reproduces the aggregate exactly.
func ComputeAggregate(name string, labels map[string]string, points []*models.MetricPoint, windowStart int64, windowSecs int) *models.AggregatedMetric {
	if len(points) == 0 {
		return nil
	}
	values := make([]float64, 0, len(points))
	for _, p := range points {
		values = append(values, p.Value)
	}
	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return &models.AggregatedMetric{
		Name:        name,
		Labels:      labels,
		WindowStart: windowStart,
		WindowSecs:  windowSecs,
		Count:       int64(len(values)),
		Sum:         sum,
		Min:         values[0],
		Max:         values[len(values)-1],
		P50:         percentile(values, 0.50),
		P90:         percentile(values, 0.90),
		P95:         percentile(values, 0.95),
		P99:         percentile(values, 0.99),
	}
}

// percentile is nearest-rank over an already sorted slice.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(q*float64(len(sorted))+0.5) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
