package server

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/cfhttp"
	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"

	"obsengine/alertengine"
	"obsengine/auditlog"
	"obsengine/capacity"
	"obsengine/config"
	"obsengine/db"
	"obsengine/healthendpoint"
	"obsengine/incident"
	"obsengine/metricstore"
	"obsengine/ratelimiter"
	"obsengine/routes"
	"obsengine/tracestore"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewServer(logger lager.Logger, conf *config.Config, metricStore *metricstore.Store, registry *metricstore.Registry,
	engine *alertengine.Engine, alertDB db.AlertDB, notificationDB db.NotificationDB, sloDB db.SLODB,
	manager *incident.Manager, incidentDB db.IncidentDB, traceStore *tracestore.Store, planner *capacity.Planner,
	audit *auditlog.Store, hub *Hub, rateLimiter ratelimiter.Limiter,
	httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	metricHandler := NewMetricHandler(logger, metricStore, registry)
	ruleHandler := NewRuleHandler(logger, alertDB, audit)
	alertHandler := NewAlertHandler(logger, engine, alertDB, notificationDB)
	sloHandler := NewSLOHandler(logger, sloDB)
	incidentHandler := NewIncidentHandler(logger, manager, incidentDB)
	traceHandler := NewTraceHandler(logger, traceStore)
	systemHandler := NewSystemHandler(logger, planner, audit)

	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)
	ingestRateLimiterMiddleware := ratelimiter.NewRateLimiterMiddlewareIPBased(rateLimiter, logger)

	r := routes.ApiRoutes()
	r.Use(httpStatusCollectMiddleware.Collect)

	r.Get(routes.IngestMetricsRoute).Handler(ingestRateLimiterMiddleware.CheckRateLimit(VarsFunc(metricHandler.IngestMetrics)))
	r.Get(routes.GetMetricHistoryRoute).Handler(VarsFunc(metricHandler.GetMetricHistory))
	r.Get(routes.GetAggregatedMetricsRoute).Handler(VarsFunc(metricHandler.GetAggregatedMetrics))
	r.Get(routes.ListCollectorsRoute).Handler(VarsFunc(metricHandler.ListCollectors))
	r.Get(routes.RegisterCollectorRoute).Handler(VarsFunc(metricHandler.RegisterCollector))

	r.Get(routes.ListRulesRoute).Handler(VarsFunc(ruleHandler.ListRules))
	r.Get(routes.CreateRuleRoute).Handler(VarsFunc(ruleHandler.CreateRule))
	r.Get(routes.GetRuleRoute).Handler(VarsFunc(ruleHandler.GetRule))
	r.Get(routes.UpdateRuleRoute).Handler(VarsFunc(ruleHandler.UpdateRule))
	r.Get(routes.DeleteRuleRoute).Handler(VarsFunc(ruleHandler.DeleteRule))

	r.Get(routes.ListAlertsRoute).Handler(VarsFunc(alertHandler.ListAlerts))
	r.Get(routes.AckAlertRoute).Handler(VarsFunc(alertHandler.AcknowledgeAlert))
	r.Get(routes.ResolveAlertRoute).Handler(VarsFunc(alertHandler.ResolveAlert))
	r.Get(routes.GetAlertNotificationsRoute).Handler(VarsFunc(alertHandler.GetAlertNotifications))

	r.Get(routes.ListSLOTargetsRoute).Handler(VarsFunc(sloHandler.ListTargets))
	r.Get(routes.CreateSLOTargetRoute).Handler(VarsFunc(sloHandler.CreateTarget))
	r.Get(routes.GetSLOMeasurementsRoute).Handler(VarsFunc(sloHandler.GetMeasurements))

	r.Get(routes.ListIncidentsRoute).Handler(VarsFunc(incidentHandler.ListIncidents))
	r.Get(routes.GetIncidentRoute).Handler(VarsFunc(incidentHandler.GetIncident))
	r.Get(routes.TransitionIncidentRoute).Handler(VarsFunc(incidentHandler.TransitionIncident))

	r.Get(routes.RecordSpanRoute).Handler(VarsFunc(traceHandler.RecordSpan))
	r.Get(routes.GetTraceRoute).Handler(VarsFunc(traceHandler.GetTrace))

	r.Get(routes.ListForecastsRoute).Handler(VarsFunc(systemHandler.ListForecasts))
	r.Get(routes.GetAuditEntriesRoute).Handler(VarsFunc(systemHandler.GetAuditEntries))
	r.Get(routes.GetHealthRoute).Handler(VarsFunc(systemHandler.GetHealth))

	sr := routes.StreamRoutes()
	sr.Get(routes.StreamRoute).Handler(http.HandlerFunc(hub.ServeStream))

	mainRouter := http.NewServeMux()
	mainRouter.Handle(routes.StreamPath, sr)
	mainRouter.Handle("/", r)

	addr := fmt.Sprintf("0.0.0.0:%d", conf.Server.Port)

	logger.Info("new-http-server", lager.Data{"serverConfig": conf.Server})

	if (conf.Server.TLS.KeyFile != "") && (conf.Server.TLS.CertFile != "") {
		tlsConfig, err := cfhttp.NewTLSConfig(conf.Server.TLS.CertFile, conf.Server.TLS.KeyFile, conf.Server.TLS.CACertFile)
		if err != nil {
			logger.Error("failed-new-server-new-tls-config", err, lager.Data{"tls": conf.Server.TLS})
			return nil, err
		}
		return http_server.NewTLSServer(addr, mainRouter, tlsConfig), nil
	}

	return http_server.New(addr, mainRouter), nil
}
