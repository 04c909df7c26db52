package models

type IncidentState string

const (
	IncidentStateDetected      IncidentState = "detected"
	IncidentStateInvestigating IncidentState = "investigating"
	IncidentStateMitigated     IncidentState = "mitigated"
	IncidentStateResolved      IncidentState = "resolved"
	IncidentStateClosed        IncidentState = "closed"
	IncidentStateReopened      IncidentState = "reopened"
)

var incidentTransitions = map[IncidentState][]IncidentState{
	IncidentStateDetected:      {IncidentStateInvestigating, IncidentStateMitigated, IncidentStateResolved},
	IncidentStateInvestigating: {IncidentStateMitigated, IncidentStateResolved},
	IncidentStateMitigated:     {IncidentStateResolved, IncidentStateInvestigating},
	IncidentStateResolved:      {IncidentStateClosed, IncidentStateReopened},
	IncidentStateClosed:        {IncidentStateReopened},
	IncidentStateReopened:      {IncidentStateInvestigating, IncidentStateMitigated, IncidentStateResolved},
}

func (s IncidentState) CanTransitionTo(next IncidentState) bool {
	for _, allowed := range incidentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s IncidentState) IsOpen() bool {
	return s != IncidentStateResolved && s != IncidentStateClosed
}

// Incident owns alert fingerprints, never alert objects; constituents are
// looked up by fingerprint when severity is recomputed.
type Incident struct {
	Id                string        `json:"id"`
	ServiceName       string        `json:"service_name"`
	AlertFingerprints []string      `json:"alert_fingerprints"`
	State             IncidentState `json:"state"`
	Severity          AlertSeverity `json:"severity"`
	OpenedAt          int64         `json:"opened_at"`
	LastAlertAt       int64         `json:"last_alert_at"`
	ResolvedAt        int64         `json:"resolved_at,omitempty"`
	ClosedAt          int64         `json:"closed_at,omitempty"`
	Owner             string        `json:"owner,omitempty"`
	PostmortemRef     string        `json:"postmortem_ref,omitempty"`
	Version           int64         `json:"version"`
}

func (i *Incident) HasAlert(fingerprint string) bool {
	for _, fp := range i.AlertFingerprints {
		if fp == fingerprint {
			return true
		}
	}
	return false
}
