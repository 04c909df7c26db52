package models

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

type MetricType string

const (
	MetricTypeCounter   MetricType = "counter"
	MetricTypeGauge     MetricType = "gauge"
	MetricTypeHistogram MetricType = "histogram"
	MetricTypeSummary   MetricType = "summary"
)

// ResetMarkerLabel marks a counter point as an intentional reset so the
// store accepts a decreasing value and restarts the series baseline.
const ResetMarkerLabel = "__reset__"

type MetricPoint struct {
	CollectorId string            `json:"collector_id"`
	Name        string            `json:"name"`
	Value       float64           `json:"value"`
	Labels      map[string]string `json:"labels"`
	Timestamp   int64             `json:"timestamp"`
	Type        MetricType        `json:"type"`
}

func (p *MetricPoint) HasLabels(labels map[string]string) bool {
	for k, v := range labels {
		if p.Labels[k] != v {
			return false
		}
	}
	return true
}

func (p *MetricPoint) IsReset() bool {
	return p.Labels[ResetMarkerLabel] == "true"
}

// SeriesKey identifies the (name, label-set) series a point belongs to.
// Labels are sorted so key computation is order independent; the reset
// marker is excluded since it is transport metadata, not identity.
func (p *MetricPoint) SeriesKey() string {
	return SeriesKey(p.Name, p.Labels)
}

func SeriesKey(name string, labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		if k == ResetMarkerLabel {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(name)
	for _, k := range keys {
		b.WriteString("#")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(labels[k])
	}
	return b.String()
}

type LabelMatcher struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	IsRegex bool   `json:"is_regex"`
}

func (m *LabelMatcher) Matches(labels map[string]string) bool {
	v, ok := labels[m.Name]
	if !ok {
		return false
	}
	if !m.IsRegex {
		return v == m.Value
	}
	matched, err := regexp.MatchString(m.Value, v)
	return err == nil && matched
}

func MatchLabels(labels map[string]string, matchers []LabelMatcher) bool {
	for i := range matchers {
		if !matchers[i].Matches(labels) {
			return false
		}
	}
	return true
}

type AggregatedMetric struct {
	Name        string            `json:"name"`
	Labels      map[string]string `json:"labels"`
	WindowStart int64             `json:"window_start"`
	WindowSecs  int               `json:"window_secs"`
	Count       int64             `json:"count"`
	Sum         float64           `json:"sum"`
	Min         float64           `json:"min"`
	Max         float64           `json:"max"`
	P50         float64           `json:"p50"`
	P90         float64           `json:"p90"`
	P95         float64           `json:"p95"`
	P99         float64           `json:"p99"`
}

func (a *AggregatedMetric) WindowEnd() int64 {
	return a.WindowStart + int64(a.WindowSecs)*time.Second.Nanoseconds()
}

type CollectorStatus string

const (
	CollectorStatusHealthy  CollectorStatus = "healthy"
	CollectorStatusDegraded CollectorStatus = "degraded"
	CollectorStatusSilent   CollectorStatus = "silent"
)

type MetricCollector struct {
	Id                   string          `json:"id"`
	ExpectedIntervalSecs int             `json:"expected_interval_secs"`
	LastSeen             int64           `json:"last_seen"`
	Status               CollectorStatus `json:"status"`
}

func (c *MetricCollector) ExpectedInterval() time.Duration {
	return time.Duration(c.ExpectedIntervalSecs) * time.Second
}
