package routes

import (
	"github.com/gorilla/mux"

	"net/http"
)

const (
	MetricsPath           = "/v1/metrics"
	IngestMetricsRoute    = "IngestMetrics"
	MetricHistoriesPath   = "/v1/metrics/{metricname}"
	GetMetricHistoryRoute = "GetMetricHistory"

	AggregatedMetricsPath     = "/v1/metrics/{metricname}/aggregated"
	GetAggregatedMetricsRoute = "GetAggregatedMetrics"

	CollectorsPath         = "/v1/collectors"
	ListCollectorsRoute    = "ListCollectors"
	RegisterCollectorRoute = "RegisterCollector"

	RulesPath       = "/v1/rules"
	ListRulesRoute  = "ListRules"
	CreateRuleRoute = "CreateRule"
	RulePath        = "/v1/rules/{ruleid}"
	GetRuleRoute    = "GetRule"
	UpdateRuleRoute = "UpdateRule"
	DeleteRuleRoute = "DeleteRule"

	AlertsPath                 = "/v1/alerts"
	ListAlertsRoute            = "ListAlerts"
	AlertAckPath               = "/v1/alerts/{fingerprint}/acknowledge"
	AckAlertRoute              = "AcknowledgeAlert"
	AlertResolvePath           = "/v1/alerts/{fingerprint}/resolve"
	ResolveAlertRoute          = "ResolveAlert"
	AlertNotificationsPath     = "/v1/alerts/{fingerprint}/notifications"
	GetAlertNotificationsRoute = "GetAlertNotifications"

	SLOTargetsPath          = "/v1/slos"
	ListSLOTargetsRoute     = "ListSLOTargets"
	CreateSLOTargetRoute    = "CreateSLOTarget"
	SLOMeasurementsPath     = "/v1/slos/{targetid}/measurements"
	GetSLOMeasurementsRoute = "GetSLOMeasurements"

	IncidentsPath           = "/v1/incidents"
	ListIncidentsRoute      = "ListIncidents"
	IncidentPath            = "/v1/incidents/{incidentid}"
	GetIncidentRoute        = "GetIncident"
	IncidentStatePath       = "/v1/incidents/{incidentid}/state"
	TransitionIncidentRoute = "TransitionIncident"

	TracesPath      = "/v1/traces"
	RecordSpanRoute = "RecordSpan"
	TracePath       = "/v1/traces/{traceid}"
	GetTraceRoute   = "GetTrace"

	ForecastsPath      = "/v1/forecasts"
	ListForecastsRoute = "ListForecasts"

	AuditPath            = "/v1/audit"
	GetAuditEntriesRoute = "GetAuditEntries"

	StreamPath  = "/v1/stream"
	StreamRoute = "Stream"

	HealthPath     = "/health"
	GetHealthRoute = "GetHealth"
)

type engineRoutes struct {
	apiRoutes    *mux.Router
	streamRoutes *mux.Router
}

var routeInstance = newRouters()

func newRouters() *engineRoutes {
	instance := &engineRoutes{
		apiRoutes:    mux.NewRouter(),
		streamRoutes: mux.NewRouter(),
	}

	instance.apiRoutes.Path(MetricsPath).Methods(http.MethodPost).Name(IngestMetricsRoute)
	instance.apiRoutes.Path(AggregatedMetricsPath).Methods(http.MethodGet).Name(GetAggregatedMetricsRoute)
	instance.apiRoutes.Path(MetricHistoriesPath).Methods(http.MethodGet).Name(GetMetricHistoryRoute)

	instance.apiRoutes.Path(CollectorsPath).Methods(http.MethodGet).Name(ListCollectorsRoute)
	instance.apiRoutes.Path(CollectorsPath).Methods(http.MethodPost).Name(RegisterCollectorRoute)

	instance.apiRoutes.Path(RulesPath).Methods(http.MethodGet).Name(ListRulesRoute)
	instance.apiRoutes.Path(RulesPath).Methods(http.MethodPost).Name(CreateRuleRoute)
	instance.apiRoutes.Path(RulePath).Methods(http.MethodGet).Name(GetRuleRoute)
	instance.apiRoutes.Path(RulePath).Methods(http.MethodPut).Name(UpdateRuleRoute)
	instance.apiRoutes.Path(RulePath).Methods(http.MethodDelete).Name(DeleteRuleRoute)

	instance.apiRoutes.Path(AlertsPath).Methods(http.MethodGet).Name(ListAlertsRoute)
	instance.apiRoutes.Path(AlertAckPath).Methods(http.MethodPost).Name(AckAlertRoute)
	instance.apiRoutes.Path(AlertResolvePath).Methods(http.MethodPost).Name(ResolveAlertRoute)
	instance.apiRoutes.Path(AlertNotificationsPath).Methods(http.MethodGet).Name(GetAlertNotificationsRoute)

	instance.apiRoutes.Path(SLOTargetsPath).Methods(http.MethodGet).Name(ListSLOTargetsRoute)
	instance.apiRoutes.Path(SLOTargetsPath).Methods(http.MethodPost).Name(CreateSLOTargetRoute)
	instance.apiRoutes.Path(SLOMeasurementsPath).Methods(http.MethodGet).Name(GetSLOMeasurementsRoute)

	instance.apiRoutes.Path(IncidentsPath).Methods(http.MethodGet).Name(ListIncidentsRoute)
	instance.apiRoutes.Path(IncidentPath).Methods(http.MethodGet).Name(GetIncidentRoute)
	instance.apiRoutes.Path(IncidentStatePath).Methods(http.MethodPut).Name(TransitionIncidentRoute)

	instance.apiRoutes.Path(TracesPath).Methods(http.MethodPost).Name(RecordSpanRoute)
	instance.apiRoutes.Path(TracePath).Methods(http.MethodGet).Name(GetTraceRoute)

	instance.apiRoutes.Path(ForecastsPath).Methods(http.MethodGet).Name(ListForecastsRoute)
	instance.apiRoutes.Path(AuditPath).Methods(http.MethodGet).Name(GetAuditEntriesRoute)
	instance.apiRoutes.Path(HealthPath).Methods(http.MethodGet).Name(GetHealthRoute)

	instance.streamRoutes.Path(StreamPath).Methods(http.MethodGet).Name(StreamRoute)

	return instance
}

func ApiRoutes() *mux.Router {
	return routeInstance.apiRoutes
}

func StreamRoutes() *mux.Router {
	return routeInstance.streamRoutes
}
