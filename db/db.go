package db

import (
	"time"

	"obsengine/healthendpoint"
	"obsengine/models"
)

const PostgresDriverName = "postgres"
const MysqlDriverName = "mysql"

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)
const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

type MetricDB interface {
	healthendpoint.DatabaseStatus
	SaveMetric(point *models.MetricPoint) error
	SaveMetricsInBulk(points []*models.MetricPoint) error
	RetrieveMetrics(name string, matchers []models.LabelMatcher, start int64, end int64, orderType OrderType) ([]*models.MetricPoint, error)
	SaveAggregate(aggregate *models.AggregatedMetric) error
	RetrieveAggregates(name string, windowSecs int, start int64, end int64) ([]*models.AggregatedMetric, error)
	PruneMetrics(before int64) error
	Close() error
}

type CollectorDB interface {
	healthendpoint.DatabaseStatus
	UpsertCollector(collector *models.MetricCollector) error
	RetrieveCollectors() ([]*models.MetricCollector, error)
	Close() error
}

type SLODB interface {
	healthendpoint.DatabaseStatus
	RetrieveTargets() ([]*models.SLOTarget, error)
	SaveTarget(target *models.SLOTarget) error
	SaveMeasurement(measurement *models.SLOMeasurement) error
	RetrieveMeasurements(targetId string, start int64, end int64, orderType OrderType) ([]*models.SLOMeasurement, error)
	Close() error
}

type AlertDB interface {
	healthendpoint.DatabaseStatus
	SaveRule(rule *models.AlertRule) error
	GetRule(ruleId string) (*models.AlertRule, error)
	RetrieveRules() ([]*models.AlertRule, error)
	DeleteRule(ruleId string) error
	// CreateAlertEvent opens a fresh event, replacing a resolved event that
	// still holds the same fingerprint.
	CreateAlertEvent(event *models.AlertEvent) error
	// UpdateAlertEvent applies a versioned update; it reports false when the
	// stored version no longer matches event.Version-1 (another writer won).
	UpdateAlertEvent(event *models.AlertEvent) (bool, error)
	GetAlertEvent(fingerprint string) (*models.AlertEvent, error)
	RetrieveAlertEvents(states []models.AlertState, start int64, end int64) ([]*models.AlertEvent, error)
	Close() error
}

type NotificationDB interface {
	healthendpoint.DatabaseStatus
	SaveNotificationLog(log *models.NotificationLog) error
	RetrieveNotificationLogs(fingerprint string) ([]*models.NotificationLog, error)
	Close() error
}

type IncidentDB interface {
	healthendpoint.DatabaseStatus
	CreateIncident(incident *models.Incident) error
	// UpdateIncident is compare-and-swap on Version, like UpdateAlertEvent.
	UpdateIncident(incident *models.Incident) (bool, error)
	GetIncident(incidentId string) (*models.Incident, error)
	RetrieveOpenIncidents() ([]*models.Incident, error)
	RetrieveIncidents(states []models.IncidentState, serviceName string, start int64, end int64) ([]*models.Incident, error)
	Close() error
}

type TraceDB interface {
	healthendpoint.DatabaseStatus
	SaveSpan(span *models.TraceSpan) error
	SetSpanOrphaned(traceId string, spanId string, orphaned bool) error
	RetrieveSpans(traceId string) ([]*models.TraceSpan, error)
	RetrieveOrphanSpans(receivedBefore int64) ([]*models.TraceSpan, error)
	Close() error
}

type AuditDB interface {
	healthendpoint.DatabaseStatus
	SaveEntry(entry *models.AuditEntry) error
	RetrieveEntries(objectType string, start int64, end int64) ([]*models.AuditEntry, error)
	ArchiveEntries(before int64) (int64, error)
	Close() error
}
