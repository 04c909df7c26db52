package models

import "time"

type IndicatorType string

const (
	IndicatorAvailability IndicatorType = "availability"
	IndicatorLatency      IndicatorType = "latency"
	IndicatorErrorRate    IndicatorType = "error-rate"
)

type SLOTarget struct {
	Id           string            `json:"id"`
	ServiceName  string            `json:"service_name"`
	Indicator    IndicatorType     `json:"indicator"`
	TargetRatio  float64           `json:"target_ratio"`
	WindowSecs   int               `json:"window_secs"`
	GoodMetric   string            `json:"good_metric"`
	TotalMetric  string            `json:"total_metric"`
	MetricLabels map[string]string `json:"metric_labels"`
}

func (t *SLOTarget) Window() time.Duration {
	return time.Duration(t.WindowSecs) * time.Second
}

type SLOMeasurement struct {
	TargetId        string  `json:"target_id"`
	WindowStart     int64   `json:"window_start"`
	WindowEnd       int64   `json:"window_end"`
	GoodEvents      int64   `json:"good_events"`
	TotalEvents     int64   `json:"total_events"`
	Compliance      float64 `json:"compliance"`
	Defined         bool    `json:"defined"`
	BudgetRemaining float64 `json:"budget_remaining"`
	BurnRate        float64 `json:"burn_rate"`
	Timestamp       int64   `json:"timestamp"`
}

// Derived series names the SLO engine writes back into the metric store.
const (
	BurnRateMetricName        = "slo.burn_rate"
	BudgetRemainingMetricName = "slo.budget_remaining"
	ExhaustionMetricName      = "capacity.exhaustion_epoch"
)
