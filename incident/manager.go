package incident

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/auditlog"
	"obsengine/db"
	"obsengine/helpers"
	"obsengine/models"
)

const systemActor = "incident-manager"

var errVersionConflict = errors.New("version conflict persisted across retries")

// Manager correlates firing alerts into incidents and owns the incident
// lifecycle. Correlation is service plus time proximity: a firing alert
// joins an open incident for the same service whose last alert falls
// inside the correlation window, otherwise it opens a new incident.
type Manager struct {
	logger            lager.Logger
	clock             clock.Clock
	incidentDB        db.IncidentDB
	alertDB           db.AlertDB
	audit             *auditlog.Store
	correlationWindow time.Duration
	reopenGrace       time.Duration

	lock sync.Mutex
}

func NewManager(logger lager.Logger, mclock clock.Clock, incidentDB db.IncidentDB, alertDB db.AlertDB,
	audit *auditlog.Store, correlationWindow time.Duration, reopenGrace time.Duration) *Manager {
	return &Manager{
		logger:            logger.Session("incident-manager"),
		clock:             mclock,
		incidentDB:        incidentDB,
		alertDB:           alertDB,
		audit:             audit,
		correlationWindow: correlationWindow,
		reopenGrace:       reopenGrace,
	}
}

// CorrelateAlert attaches a firing alert to an incident. When the alert
// matches more than one open incident it is merged into the most recently
// opened one and the ambiguity is audited rather than surfaced as an error.
func (m *Manager) CorrelateAlert(event *models.AlertEvent) (*models.Incident, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	serviceName := event.ServiceName()
	now := m.clock.Now().UnixNano()

	open, err := m.incidentDB.RetrieveOpenIncidents()
	if err != nil {
		return nil, &models.TransientStoreError{Op: "retrieve-open-incidents", Err: err}
	}

	candidates := []*models.Incident{}
	for _, incident := range open {
		if incident.ServiceName != serviceName {
			continue
		}
		if incident.HasAlert(event.Fingerprint) || now-incident.LastAlertAt <= m.correlationWindow.Nanoseconds() {
			candidates = append(candidates, incident)
		}
	}

	if len(candidates) == 0 {
		if incident, reopened, err := m.tryReopen(event, serviceName, now); err != nil {
			return nil, err
		} else if reopened {
			return incident, nil
		}
		return m.openIncident(event, serviceName, now)
	}

	target := mostRecentlyOpened(candidates)
	if len(candidates) > 1 {
		ids := make([]string, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.Id)
		}
		ambiguity := &models.CorrelationAmbiguity{Fingerprint: event.Fingerprint, IncidentIds: ids}
		m.logger.Info("correlation-ambiguity", lager.Data{"fingerprint": event.Fingerprint, "incident_ids": ids, "chosen": target.Id})
		if err := m.audit.RecordEvent(systemActor, "correlation-ambiguity", "incident", target.Id, ambiguity); err != nil {
			m.logger.Error("failed-to-audit-ambiguity", err)
		}
	}
	return m.attachAlert(target, event, now)
}

// tryReopen looks for a recently resolved incident for the service that
// still falls inside the reopen grace period. A match is reopened instead
// of opening a duplicate incident for the same outage.
func (m *Manager) tryReopen(event *models.AlertEvent, serviceName string, now int64) (*models.Incident, bool, error) {
	resolved, err := m.incidentDB.RetrieveIncidents([]models.IncidentState{models.IncidentStateResolved}, serviceName, now-m.reopenGrace.Nanoseconds(), now)
	if err != nil {
		return nil, false, &models.TransientStoreError{Op: "retrieve-resolved-incidents", Err: err}
	}
	var target *models.Incident
	for _, incident := range resolved {
		if now-incident.ResolvedAt > m.reopenGrace.Nanoseconds() {
			continue
		}
		if target == nil || incident.ResolvedAt > target.ResolvedAt {
			target = incident
		}
	}
	if target == nil {
		return nil, false, nil
	}

	before := *target
	target.State = models.IncidentStateReopened
	target.ResolvedAt = 0
	incident, err := m.applyAttach(target, event, now)
	if err != nil {
		return nil, false, err
	}
	m.logger.Info("incident-reopened", lager.Data{"incident_id": incident.Id, "fingerprint": event.Fingerprint})
	if err := m.audit.RecordChange(systemActor, "reopen-incident", "incident", incident.Id, &before, incident); err != nil {
		m.logger.Error("failed-to-audit-reopen", err)
	}
	return incident, true, nil
}

func (m *Manager) openIncident(event *models.AlertEvent, serviceName string, now int64) (*models.Incident, error) {
	id, err := helpers.GenerateGUID()
	if err != nil {
		return nil, err
	}
	incident := &models.Incident{
		Id:                id,
		ServiceName:       serviceName,
		AlertFingerprints: []string{event.Fingerprint},
		State:             models.IncidentStateDetected,
		Severity:          event.Severity,
		OpenedAt:          now,
		LastAlertAt:       now,
		Version:           1,
	}
	if err := m.incidentDB.CreateIncident(incident); err != nil {
		return nil, &models.TransientStoreError{Op: "create-incident", Err: err}
	}
	m.logger.Info("incident-opened", lager.Data{"incident_id": id, "service": serviceName, "fingerprint": event.Fingerprint})
	if err := m.audit.RecordChange(systemActor, "open-incident", "incident", id, nil, incident); err != nil {
		m.logger.Error("failed-to-audit-open", err)
	}
	return incident, nil
}

func (m *Manager) attachAlert(incident *models.Incident, event *models.AlertEvent, now int64) (*models.Incident, error) {
	updated, err := m.applyAttach(incident, event, now)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("alert-attached", lager.Data{"incident_id": updated.Id, "fingerprint": event.Fingerprint})
	return updated, nil
}

func (m *Manager) applyAttach(incident *models.Incident, event *models.AlertEvent, now int64) (*models.Incident, error) {
	if !incident.HasAlert(event.Fingerprint) {
		incident.AlertFingerprints = append(incident.AlertFingerprints, event.Fingerprint)
	}
	incident.LastAlertAt = now
	if event.Severity > incident.Severity {
		incident.Severity = event.Severity
	}
	return m.update(incident)
}

// update applies a versioned write, re-reading and retrying a bounded
// number of times when another writer got there first.
func (m *Manager) update(incident *models.Incident) (*models.Incident, error) {
	for attempt := 0; attempt < 3; attempt++ {
		applied, err := m.incidentDB.UpdateIncident(incident)
		if err != nil {
			return nil, &models.TransientStoreError{Op: "update-incident", Err: err}
		}
		if applied {
			return incident, nil
		}
		fresh, err := m.incidentDB.GetIncident(incident.Id)
		if err != nil || fresh == nil {
			return nil, &models.TransientStoreError{Op: "reload-incident", Err: err}
		}
		fresh.AlertFingerprints = mergeFingerprints(fresh.AlertFingerprints, incident.AlertFingerprints)
		if incident.LastAlertAt > fresh.LastAlertAt {
			fresh.LastAlertAt = incident.LastAlertAt
		}
		if incident.Severity > fresh.Severity {
			fresh.Severity = incident.Severity
		}
		incident = fresh
	}
	return nil, &models.TransientStoreError{Op: "update-incident", Err: errVersionConflict}
}

// AlertStateChanged recomputes an incident's severity after one of its
// constituent alerts changed. Severity is the maximum severity across the
// incident's still active alerts; it never drops below info.
func (m *Manager) AlertStateChanged(event *models.AlertEvent) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	open, err := m.incidentDB.RetrieveOpenIncidents()
	if err != nil {
		return &models.TransientStoreError{Op: "retrieve-open-incidents", Err: err}
	}
	for _, incident := range open {
		if !incident.HasAlert(event.Fingerprint) {
			continue
		}
		severity := models.SeverityInfo
		for _, fp := range incident.AlertFingerprints {
			alert, err := m.alertDB.GetAlertEvent(fp)
			if err != nil || alert == nil || !alert.IsActive() {
				continue
			}
			if alert.Severity > severity {
				severity = alert.Severity
			}
		}
		if severity == incident.Severity {
			return nil
		}
		incident.Severity = severity
		if _, err := m.update(incident); err != nil {
			return err
		}
		m.logger.Info("incident-severity-recomputed", lager.Data{"incident_id": incident.Id, "severity": severity})
		return nil
	}
	return nil
}

// Transition moves an incident through its lifecycle, rejecting moves the
// state machine does not allow.
func (m *Manager) Transition(incidentId string, next models.IncidentState, actor string) (*models.Incident, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	incident, err := m.incidentDB.GetIncident(incidentId)
	if err != nil {
		return nil, &models.TransientStoreError{Op: "get-incident", Err: err}
	}
	if incident == nil {
		return nil, &models.ValidationError{Field: "incident_id", Reason: "incident not found"}
	}
	if !incident.State.CanTransitionTo(next) {
		return nil, &models.ValidationError{Field: "state", Reason: string(incident.State) + " cannot transition to " + string(next)}
	}

	before := *incident
	now := m.clock.Now().UnixNano()
	incident.State = next
	switch next {
	case models.IncidentStateResolved:
		incident.ResolvedAt = now
	case models.IncidentStateClosed:
		incident.ClosedAt = now
	case models.IncidentStateReopened:
		incident.ResolvedAt = 0
		incident.ClosedAt = 0
	}

	updated, err := m.update(incident)
	if err != nil {
		return nil, err
	}
	m.logger.Info("incident-transitioned", lager.Data{"incident_id": incidentId, "from": before.State, "to": next, "actor": actor})
	if err := m.audit.RecordChange(actor, "transition-incident", "incident", incidentId, &before, updated); err != nil {
		m.logger.Error("failed-to-audit-transition", err)
	}
	return updated, nil
}

// AssignOwner records who is driving the incident.
func (m *Manager) AssignOwner(incidentId string, owner string, actor string) (*models.Incident, error) {
	return m.annotate(incidentId, actor, "assign-owner", func(incident *models.Incident) {
		incident.Owner = owner
	})
}

// SetPostmortem links the postmortem document to a resolved incident.
func (m *Manager) SetPostmortem(incidentId string, ref string, actor string) (*models.Incident, error) {
	return m.annotate(incidentId, actor, "set-postmortem", func(incident *models.Incident) {
		incident.PostmortemRef = ref
	})
}

func (m *Manager) annotate(incidentId string, actor string, action string, mutate func(*models.Incident)) (*models.Incident, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	incident, err := m.incidentDB.GetIncident(incidentId)
	if err != nil {
		return nil, &models.TransientStoreError{Op: "get-incident", Err: err}
	}
	if incident == nil {
		return nil, &models.ValidationError{Field: "incident_id", Reason: "incident not found"}
	}
	before := *incident
	mutate(incident)
	updated, err := m.update(incident)
	if err != nil {
		return nil, err
	}
	if err := m.audit.RecordChange(actor, action, "incident", incidentId, &before, updated); err != nil {
		m.logger.Error("failed-to-audit-annotation", err)
	}
	return updated, nil
}

func mostRecentlyOpened(incidents []*models.Incident) *models.Incident {
	target := incidents[0]
	for _, incident := range incidents[1:] {
		if incident.OpenedAt > target.OpenedAt {
			target = incident
		}
	}
	return target
}

func mergeFingerprints(existing []string, incoming []string) []string {
	seen := map[string]bool{}
	for _, fp := range existing {
		seen[fp] = true
	}
	for _, fp := range incoming {
		if !seen[fp] {
			existing = append(existing, fp)
			seen[fp] = true
		}
	}
	return existing
}
