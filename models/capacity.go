package models

type TrendModel string

const (
	TrendModelLinear      TrendModel = "linear"
	TrendModelExponential TrendModel = "exponential"
	TrendModelFlat        TrendModel = "flat"
)

type CapacityForecast struct {
	Resource           string     `json:"resource"`
	CurrentUtilization float64    `json:"current_utilization"`
	Capacity           float64    `json:"capacity"`
	Model              TrendModel `json:"model"`
	Residual           float64    `json:"residual"`
	// ExhaustionAt is zero when the fitted trend is flat or decreasing.
	ExhaustionAt int64 `json:"exhaustion_at,omitempty"`
	FittedAt     int64 `json:"fitted_at"`
}
