package models

import (
	"encoding/json"
	"time"
)

type AlertSeverity int

const (
	SeverityInfo AlertSeverity = iota + 1
	SeverityWarning
	SeverityCritical
)

func (s AlertSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

type EscalationStep struct {
	DelaySeconds int    `json:"delay_secs"`
	Channel      string `json:"channel"`
}

type AlertRule struct {
	Id               string            `json:"id"`
	Name             string            `json:"name"`
	Condition        json.RawMessage   `json:"condition"`
	EvalIntervalSecs int               `json:"eval_interval_secs"`
	ForDurationSecs  int               `json:"for_duration_secs"`
	Severity         AlertSeverity     `json:"severity"`
	Labels           map[string]string `json:"labels"`
	Escalation       []EscalationStep  `json:"escalation"`
	Invalid          bool              `json:"invalid"`
}

// ForDuration is how long the condition must hold before the alert fires.
// Zero means the alert fires on the first breach.
func (r *AlertRule) ForDuration() time.Duration {
	if r.ForDurationSecs <= 0 {
		return 0
	}
	return time.Duration(r.ForDurationSecs) * time.Second
}

type AlertState string

const (
	AlertStatePending      AlertState = "pending"
	AlertStateFiring       AlertState = "firing"
	AlertStateAcknowledged AlertState = "acknowledged"
	AlertStateResolved     AlertState = "resolved"
)

// AlertEvent is the per-fingerprint record the alert engine drives. Version
// is bumped on every transition; store updates are compare-and-swap on it so
// concurrent evaluation cycles cannot both win a transition.
type AlertEvent struct {
	Fingerprint    string            `json:"fingerprint"`
	RuleId         string            `json:"rule_id"`
	RuleName       string            `json:"rule_name"`
	State          AlertState        `json:"state"`
	Severity       AlertSeverity     `json:"severity"`
	Labels         map[string]string `json:"labels"`
	FirstTriggered int64             `json:"first_triggered"`
	LastEvaluated  int64             `json:"last_evaluated"`
	AckActor       string            `json:"ack_actor,omitempty"`
	AckAt          int64             `json:"ack_at,omitempty"`
	ResolvedAt     int64             `json:"resolved_at,omitempty"`
	EscalationStep int               `json:"escalation_step"`
	Version        int64             `json:"version"`
}

func (e *AlertEvent) IsActive() bool {
	return e.State == AlertStatePending || e.State == AlertStateFiring || e.State == AlertStateAcknowledged
}

func (e *AlertEvent) ServiceName() string {
	return e.Labels["service"]
}
