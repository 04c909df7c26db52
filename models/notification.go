package models

type DeliveryStatus string

const (
	DeliveryStatusSent     DeliveryStatus = "sent"
	DeliveryStatusFailed   DeliveryStatus = "failed"
	DeliveryStatusRetrying DeliveryStatus = "retrying"
)

type NotificationLog struct {
	Fingerprint string         `json:"fingerprint"`
	Channel     string         `json:"channel"`
	Attempt     int            `json:"attempt"`
	Status      DeliveryStatus `json:"status"`
	Timestamp   int64          `json:"timestamp"`
}

// NotificationPayload is what a channel receives. Fingerprint plus Attempt
// form the idempotency key downstream channels deduplicate on.
type NotificationPayload struct {
	Fingerprint string            `json:"fingerprint"`
	Attempt     int               `json:"attempt"`
	RuleName    string            `json:"rule_name"`
	State       AlertState        `json:"state"`
	Severity    AlertSeverity     `json:"severity"`
	Labels      map[string]string `json:"labels"`
	Timestamp   int64             `json:"timestamp"`
}
