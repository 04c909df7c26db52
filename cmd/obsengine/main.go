package main

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"obsengine/alertengine"
	"obsengine/auditlog"
	"obsengine/capacity"
	"obsengine/config"
	"obsengine/db/sqldb"
	"obsengine/healthendpoint"
	"obsengine/helpers"
	"obsengine/incident"
	"obsengine/metricstore"
	"obsengine/models"
	"obsengine/notifier"
	"obsengine/ratelimiter"
	"obsengine/retention"
	"obsengine/server"
	"obsengine/sloengine"
	"obsengine/tracestore"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "obsengine")
	engineClock := clock.NewClock()

	metricDB, err := sqldb.NewMetricSQLDB(conf.Db.MetricDb, logger.Session("metric-db"))
	if err != nil {
		logger.Error("failed to connect metric database", err, lager.Data{"dbConfig": conf.Db.MetricDb})
		os.Exit(1)
	}
	defer metricDB.Close()

	collectorDB, err := sqldb.NewCollectorSQLDB(conf.Db.CollectorDb, logger.Session("collector-db"))
	if err != nil {
		logger.Error("failed to connect collector database", err, lager.Data{"dbConfig": conf.Db.CollectorDb})
		os.Exit(1)
	}
	defer collectorDB.Close()

	sloDB, err := sqldb.NewSLOSQLDB(conf.Db.SloDb, logger.Session("slo-db"))
	if err != nil {
		logger.Error("failed to connect slo database", err, lager.Data{"dbConfig": conf.Db.SloDb})
		os.Exit(1)
	}
	defer sloDB.Close()

	alertDB, err := sqldb.NewAlertSQLDB(conf.Db.AlertDb, logger.Session("alert-db"))
	if err != nil {
		logger.Error("failed to connect alert database", err, lager.Data{"dbConfig": conf.Db.AlertDb})
		os.Exit(1)
	}
	defer alertDB.Close()

	notificationDB, err := sqldb.NewNotificationSQLDB(conf.Db.NotificationDb, logger.Session("notification-db"))
	if err != nil {
		logger.Error("failed to connect notification database", err, lager.Data{"dbConfig": conf.Db.NotificationDb})
		os.Exit(1)
	}
	defer notificationDB.Close()

	incidentDB, err := sqldb.NewIncidentSQLDB(conf.Db.IncidentDb, logger.Session("incident-db"))
	if err != nil {
		logger.Error("failed to connect incident database", err, lager.Data{"dbConfig": conf.Db.IncidentDb})
		os.Exit(1)
	}
	defer incidentDB.Close()

	traceDB, err := sqldb.NewTraceSQLDB(conf.Db.TraceDb, logger.Session("trace-db"))
	if err != nil {
		logger.Error("failed to connect trace database", err, lager.Data{"dbConfig": conf.Db.TraceDb})
		os.Exit(1)
	}
	defer traceDB.Close()

	auditDB, err := sqldb.NewAuditSQLDB(conf.Db.AuditDb, logger.Session("audit-db"))
	if err != nil {
		logger.Error("failed to connect audit database", err, lager.Data{"dbConfig": conf.Db.AuditDb})
		os.Exit(1)
	}
	defer auditDB.Close()

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("obsengine", "api")
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "metricDB", metricDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "collectorDB", collectorDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "sloDB", sloDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "alertDB", alertDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "notificationDB", notificationDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "incidentDB", incidentDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "traceDB", traceDB),
		healthendpoint.NewDatabaseStatusCollector("obsengine", "api", "auditDB", auditDB),
		httpStatusCollector,
	}, true, logger.Session("obsengine-prometheus"))

	registry := metricstore.NewRegistry(logger, engineClock, collectorDB, conf.MetricStore.RegistryRefreshInterval)
	metricStore := metricstore.NewStore(logger, engineClock, metricDB, registry,
		conf.MetricStore.CacheSizePerSeries, conf.MetricStore.CardinalityCeiling, conf.MetricStore.CardinalityTTL)
	aggregator := metricstore.NewAggregator(logger, engineClock, conf.MetricStore.AggregationInterval, metricStore, metricDB)

	sloEngine := sloengine.NewEngine(logger, engineClock, conf.SLO.EvalInterval, conf.SLO.BurnRateLookback,
		sloDB, metricStore.Query, metricStore.Ingest)

	auditStore := auditlog.NewStore(logger, engineClock, auditDB)
	traceStore := tracestore.NewStore(logger, engineClock, traceDB)
	manager := incident.NewManager(logger, engineClock, incidentDB, alertDB, auditStore,
		conf.Incident.CorrelationWindow, conf.Incident.ReopenGrace)

	hub := server.NewHub(logger, conf.Stream.BufferSize)

	channels, err := createChannels(logger, conf)
	if err != nil {
		logger.Error("failed to create notification channels", err)
		os.Exit(1)
	}

	var alertEngine *alertengine.Engine
	var dispatcher *notifier.Dispatcher

	alertEngine = alertengine.NewEngine(logger, engineClock, conf.AlertEngine.EvaluationInterval,
		conf.AlertEngine.EscalationCheckInterval, conf.AlertEngine.EvaluatorCount, conf.AlertEngine.RuleChannelSize,
		alertDB, metricStore.Query, func(event *models.AlertEvent, channel string, step int) {
			dispatcher.Dispatch(event, channel, step)
		})
	dispatcher = notifier.NewDispatcher(logger, engineClock, notificationDB, channels,
		conf.Dispatcher.WorkerCount, conf.Dispatcher.QueueSize, conf.Dispatcher.MaxRetries,
		conf.Dispatcher.RetryInterval, conf.Dispatcher.ConsecutiveFailureCount, conf.Dispatcher.DedupTTL,
		alertEngine.EscalateNow)

	alertEngine.SetStateListener(func(event *models.AlertEvent) {
		hub.Publish("alert", event)
		if event.State == models.AlertStateFiring {
			inc, err := manager.CorrelateAlert(event)
			if err != nil {
				logger.Error("failed to correlate alert into incident", err, lager.Data{"fingerprint": event.Fingerprint})
				return
			}
			hub.Publish("incident", inc)
		} else {
			err := manager.AlertStateChanged(event)
			if err != nil {
				logger.Error("failed to propagate alert state to incident", err, lager.Data{"fingerprint": event.Fingerprint})
			}
		}
	})

	planner := capacity.NewPlanner(logger, engineClock, conf.Capacity.PlanInterval, conf.Capacity.Lookback,
		conf.Capacity.Resources, metricStore.Query, metricStore.Ingest)

	metricPruner := retention.NewRunner(
		retention.NewMetricPruner(logger, metricDB, conf.Retention.MetricCutoffDays, engineClock),
		"metric-pruner", conf.Retention.Interval, engineClock, logger)
	auditArchiver := retention.NewRunner(
		retention.NewAuditArchiver(logger, auditDB, conf.Retention.AuditArchiveDays, engineClock),
		"audit-archiver", conf.Retention.Interval, engineClock, logger)
	orphanSweeper := retention.NewRunner(
		retention.NewOrphanSweeper(logger, traceStore, conf.Retention.OrphanMaxAge),
		"orphan-sweeper", conf.Retention.Interval, engineClock, logger)

	engineRunner := ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		registry.Start()
		aggregator.Start()
		sloEngine.Start()
		dispatcher.Start()
		err := alertEngine.Start()
		if err != nil {
			return err
		}
		planner.Start()
		metricPruner.Start()
		auditArchiver.Start()
		orphanSweeper.Start()

		close(ready)

		<-signals
		orphanSweeper.Stop()
		auditArchiver.Stop()
		metricPruner.Stop()
		planner.Stop()
		alertEngine.Stop()
		dispatcher.Stop()
		sloEngine.Stop()
		aggregator.Stop()
		registry.Stop()

		return nil
	})

	rateLimiter := ratelimiter.NewRateLimiter(conf.RateLimit.MaxAmount, conf.RateLimit.ValidDuration,
		logger.Session("obsengine-ratelimiter"))

	httpServer, err := server.NewServer(logger.Session("http-server"), conf, metricStore, registry,
		alertEngine, alertDB, notificationDB, sloDB, manager, incidentDB, traceStore, planner,
		auditStore, hub, rateLimiter, httpStatusCollector)
	if err != nil {
		logger.Error("failed to create http server", err)
		os.Exit(1)
	}

	healthServer, err := healthendpoint.NewServer(logger.Session("health-server"), conf.Health.Port, promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}

	members := grouper.Members{
		{Name: "engine", Runner: engineRunner},
		{Name: "http_server", Runner: httpServer},
		{Name: "health_server", Runner: healthServer},
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))

	logger.Info("started")

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}

func createChannels(logger lager.Logger, conf *config.Config) ([]notifier.Channel, error) {
	channels := make([]notifier.Channel, 0, len(conf.Dispatcher.Channels)+1)
	for _, cc := range conf.Dispatcher.Channels {
		switch cc.Type {
		case "webhook":
			tls := cc.TLS
			webhook, err := notifier.NewWebhookChannel(logger, cc.Name, cc.URL, &tls)
			if err != nil {
				return nil, err
			}
			channels = append(channels, webhook)
		case "log":
			channels = append(channels, notifier.NewLogChannel(logger, cc.Name))
		default:
			return nil, fmt.Errorf("unsupported notification channel type %q", cc.Type)
		}
	}
	return channels, nil
}
