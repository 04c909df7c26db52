package models

import "fmt"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError rejects a malformed point, rule or span synchronously.
// It is never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// TransientStoreError wraps a store failure; callers retry with backoff and
// evaluation loops skip the cycle instead of crashing.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %s", e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error {
	return e.Err
}

// ConfigurationError marks a rule invalid; the rule is excluded from
// evaluation until corrected.
type ConfigurationError struct {
	RuleId string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid rule configuration %s: %s", e.RuleId, e.Reason)
}

// DeliveryError reports a notification channel failure after retries; it
// drives fast-fail escalation.
type DeliveryError struct {
	Channel  string
	Attempts int
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to channel %s failed after %d attempts: %s", e.Channel, e.Attempts, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// CorrelationAmbiguity records that an alert matched more than one open
// incident; the merge picks the most recently opened and this is audited.
type CorrelationAmbiguity struct {
	Fingerprint string
	IncidentIds []string
}

func (e *CorrelationAmbiguity) Error() string {
	return fmt.Sprintf("alert %s matched %d open incidents", e.Fingerprint, len(e.IncidentIds))
}
