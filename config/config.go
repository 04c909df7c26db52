package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"obsengine/capacity"
	"obsengine/db"
	"obsengine/helpers"
	"obsengine/models"
)

const (
	DefaultLoggingLevel            = "info"
	DefaultServerPort              = 8080
	DefaultHealthPort              = 8081
	DefaultCacheSizePerSeries      = 100
	DefaultCardinalityCeiling      = 1000
	DefaultCardinalityTTL          = 1 * time.Hour
	DefaultAggregationInterval     = 1 * time.Minute
	DefaultRegistryRefreshInterval = 30 * time.Second
	DefaultSLOEvalInterval         = 1 * time.Minute
	DefaultBurnRateLookback        = 1 * time.Hour
	DefaultEvaluationInterval      = 30 * time.Second
	DefaultEscalationCheckInterval = 5 * time.Second
	DefaultEvaluatorCount          = 20
	DefaultRuleChannelSize         = 200
	DefaultWorkerCount             = 10
	DefaultQueueSize               = 200
	DefaultMaxRetries              = 3
	DefaultRetryInterval           = 10 * time.Second
	DefaultBreakerFailureCount     = 3
	DefaultDedupTTL                = 5 * time.Minute
	DefaultCorrelationWindow       = 60 * time.Second
	DefaultReopenGrace             = 10 * time.Minute
	DefaultPlanInterval            = 10 * time.Minute
	DefaultPlanLookback            = 24 * time.Hour
	DefaultMetricCutoffDays        = 30
	DefaultAuditArchiveDays        = 90
	DefaultOrphanMaxAge            = 30 * time.Minute
	DefaultRetentionInterval       = 1 * time.Hour
	DefaultStreamBufferSize        = 1024
	DefaultRateLimitMaxAmount      = 600
	DefaultRateLimitValidDuration  = 10 * time.Minute
)

type ServerConfig struct {
	Port int             `yaml:"port"`
	TLS  models.TLSCerts `yaml:"tls"`
}

var defaultServerConfig = ServerConfig{
	Port: DefaultServerPort,
}

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: DefaultLoggingLevel,
}

type DbConfig struct {
	MetricDb       db.DatabaseConfig `yaml:"metric_db"`
	CollectorDb    db.DatabaseConfig `yaml:"collector_db"`
	SloDb          db.DatabaseConfig `yaml:"slo_db"`
	AlertDb        db.DatabaseConfig `yaml:"alert_db"`
	NotificationDb db.DatabaseConfig `yaml:"notification_db"`
	IncidentDb     db.DatabaseConfig `yaml:"incident_db"`
	TraceDb        db.DatabaseConfig `yaml:"trace_db"`
	AuditDb        db.DatabaseConfig `yaml:"audit_db"`
}

type MetricStoreConfig struct {
	CacheSizePerSeries      int           `yaml:"cache_size_per_series"`
	CardinalityCeiling      int           `yaml:"cardinality_ceiling"`
	CardinalityTTL          time.Duration `yaml:"cardinality_ttl"`
	AggregationInterval     time.Duration `yaml:"aggregation_interval"`
	RegistryRefreshInterval time.Duration `yaml:"registry_refresh_interval"`
}

var defaultMetricStoreConfig = MetricStoreConfig{
	CacheSizePerSeries:      DefaultCacheSizePerSeries,
	CardinalityCeiling:      DefaultCardinalityCeiling,
	CardinalityTTL:          DefaultCardinalityTTL,
	AggregationInterval:     DefaultAggregationInterval,
	RegistryRefreshInterval: DefaultRegistryRefreshInterval,
}

type SLOConfig struct {
	EvalInterval     time.Duration `yaml:"eval_interval"`
	BurnRateLookback time.Duration `yaml:"burn_rate_lookback"`
}

var defaultSLOConfig = SLOConfig{
	EvalInterval:     DefaultSLOEvalInterval,
	BurnRateLookback: DefaultBurnRateLookback,
}

type AlertEngineConfig struct {
	EvaluationInterval      time.Duration `yaml:"evaluation_interval"`
	EscalationCheckInterval time.Duration `yaml:"escalation_check_interval"`
	EvaluatorCount          int           `yaml:"evaluator_count"`
	RuleChannelSize         int           `yaml:"rule_channel_size"`
}

var defaultAlertEngineConfig = AlertEngineConfig{
	EvaluationInterval:      DefaultEvaluationInterval,
	EscalationCheckInterval: DefaultEscalationCheckInterval,
	EvaluatorCount:          DefaultEvaluatorCount,
	RuleChannelSize:         DefaultRuleChannelSize,
}

type ChannelConfig struct {
	Name string          `yaml:"name"`
	Type string          `yaml:"type"`
	URL  string          `yaml:"url"`
	TLS  models.TLSCerts `yaml:"tls"`
}

type DispatcherConfig struct {
	WorkerCount             int             `yaml:"worker_count"`
	QueueSize               int             `yaml:"queue_size"`
	MaxRetries              int             `yaml:"max_retries"`
	RetryInterval           time.Duration   `yaml:"retry_interval"`
	ConsecutiveFailureCount int64           `yaml:"consecutive_failure_count"`
	DedupTTL                time.Duration   `yaml:"dedup_ttl"`
	Channels                []ChannelConfig `yaml:"channels"`
}

var defaultDispatcherConfig = DispatcherConfig{
	WorkerCount:             DefaultWorkerCount,
	QueueSize:               DefaultQueueSize,
	MaxRetries:              DefaultMaxRetries,
	RetryInterval:           DefaultRetryInterval,
	ConsecutiveFailureCount: DefaultBreakerFailureCount,
	DedupTTL:                DefaultDedupTTL,
}

type IncidentConfig struct {
	CorrelationWindow time.Duration `yaml:"correlation_window"`
	ReopenGrace       time.Duration `yaml:"reopen_grace"`
}

var defaultIncidentConfig = IncidentConfig{
	CorrelationWindow: DefaultCorrelationWindow,
	ReopenGrace:       DefaultReopenGrace,
}

type CapacityConfig struct {
	PlanInterval time.Duration       `yaml:"plan_interval"`
	Lookback     time.Duration       `yaml:"lookback"`
	Resources    []capacity.Resource `yaml:"resources"`
}

var defaultCapacityConfig = CapacityConfig{
	PlanInterval: DefaultPlanInterval,
	Lookback:     DefaultPlanLookback,
}

type RetentionConfig struct {
	MetricCutoffDays int           `yaml:"metric_cutoff_days"`
	AuditArchiveDays int           `yaml:"audit_archive_days"`
	OrphanMaxAge     time.Duration `yaml:"orphan_max_age"`
	Interval         time.Duration `yaml:"interval"`
}

var defaultRetentionConfig = RetentionConfig{
	MetricCutoffDays: DefaultMetricCutoffDays,
	AuditArchiveDays: DefaultAuditArchiveDays,
	OrphanMaxAge:     DefaultOrphanMaxAge,
	Interval:         DefaultRetentionInterval,
}

type StreamConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

var defaultStreamConfig = StreamConfig{
	BufferSize: DefaultStreamBufferSize,
}

var defaultRateLimitConfig = models.RateLimitConfig{
	MaxAmount:     DefaultRateLimitMaxAmount,
	ValidDuration: DefaultRateLimitValidDuration,
}

type Config struct {
	Logging     helpers.LoggingConfig  `yaml:"logging"`
	Server      ServerConfig           `yaml:"server"`
	Health      models.HealthConfig    `yaml:"health"`
	Db          DbConfig               `yaml:"db"`
	MetricStore MetricStoreConfig      `yaml:"metric_store"`
	SLO         SLOConfig              `yaml:"slo"`
	AlertEngine AlertEngineConfig      `yaml:"alert_engine"`
	Dispatcher  DispatcherConfig       `yaml:"dispatcher"`
	Incident    IncidentConfig         `yaml:"incident"`
	Capacity    CapacityConfig         `yaml:"capacity"`
	Retention   RetentionConfig        `yaml:"retention"`
	Stream      StreamConfig           `yaml:"stream"`
	RateLimit   models.RateLimitConfig `yaml:"rate_limit"`
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := &Config{
		Logging:     defaultLoggingConfig,
		Server:      defaultServerConfig,
		Health:      models.HealthConfig{Port: DefaultHealthPort},
		MetricStore: defaultMetricStoreConfig,
		SLO:         defaultSLOConfig,
		AlertEngine: defaultAlertEngineConfig,
		Dispatcher:  defaultDispatcherConfig,
		Incident:    defaultIncidentConfig,
		Capacity:    defaultCapacityConfig,
		Retention:   defaultRetentionConfig,
		Stream:      defaultStreamConfig,
		RateLimit:   defaultRateLimitConfig,
	}

	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(bytes, conf)
	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return conf, nil
}

func (c *Config) Validate() error {
	if c.Db.MetricDb.URL == "" {
		return fmt.Errorf("Configuration error: Metric DB url is empty")
	}
	if c.Db.CollectorDb.URL == "" {
		return fmt.Errorf("Configuration error: Collector DB url is empty")
	}
	if c.Db.SloDb.URL == "" {
		return fmt.Errorf("Configuration error: SLO DB url is empty")
	}
	if c.Db.AlertDb.URL == "" {
		return fmt.Errorf("Configuration error: Alert DB url is empty")
	}
	if c.Db.NotificationDb.URL == "" {
		return fmt.Errorf("Configuration error: Notification DB url is empty")
	}
	if c.Db.IncidentDb.URL == "" {
		return fmt.Errorf("Configuration error: Incident DB url is empty")
	}
	if c.Db.TraceDb.URL == "" {
		return fmt.Errorf("Configuration error: Trace DB url is empty")
	}
	if c.Db.AuditDb.URL == "" {
		return fmt.Errorf("Configuration error: Audit DB url is empty")
	}

	if c.MetricStore.CacheSizePerSeries <= 0 {
		return fmt.Errorf("Configuration error: metric_store.cache_size_per_series is less than or equal to 0")
	}
	if c.MetricStore.CardinalityCeiling <= 0 {
		return fmt.Errorf("Configuration error: metric_store.cardinality_ceiling is less than or equal to 0")
	}
	if c.MetricStore.AggregationInterval <= 0 {
		return fmt.Errorf("Configuration error: metric_store.aggregation_interval is less than or equal to 0")
	}
	if c.MetricStore.RegistryRefreshInterval <= 0 {
		return fmt.Errorf("Configuration error: metric_store.registry_refresh_interval is less than or equal to 0")
	}

	if c.SLO.EvalInterval <= 0 {
		return fmt.Errorf("Configuration error: slo.eval_interval is less than or equal to 0")
	}
	if c.SLO.BurnRateLookback <= 0 {
		return fmt.Errorf("Configuration error: slo.burn_rate_lookback is less than or equal to 0")
	}

	if c.AlertEngine.EvaluationInterval <= 0 {
		return fmt.Errorf("Configuration error: alert_engine.evaluation_interval is less than or equal to 0")
	}
	if c.AlertEngine.EscalationCheckInterval <= 0 {
		return fmt.Errorf("Configuration error: alert_engine.escalation_check_interval is less than or equal to 0")
	}
	if c.AlertEngine.EvaluatorCount <= 0 {
		return fmt.Errorf("Configuration error: alert_engine.evaluator_count is less than or equal to 0")
	}
	if c.AlertEngine.RuleChannelSize <= 0 {
		return fmt.Errorf("Configuration error: alert_engine.rule_channel_size is less than or equal to 0")
	}

	if c.Dispatcher.WorkerCount <= 0 {
		return fmt.Errorf("Configuration error: dispatcher.worker_count is less than or equal to 0")
	}
	if c.Dispatcher.QueueSize <= 0 {
		return fmt.Errorf("Configuration error: dispatcher.queue_size is less than or equal to 0")
	}
	if c.Dispatcher.MaxRetries <= 0 {
		return fmt.Errorf("Configuration error: dispatcher.max_retries is less than or equal to 0")
	}
	if c.Dispatcher.RetryInterval <= 0 {
		return fmt.Errorf("Configuration error: dispatcher.retry_interval is less than or equal to 0")
	}
	for _, ch := range c.Dispatcher.Channels {
		if ch.Name == "" {
			return fmt.Errorf("Configuration error: dispatcher channel name is empty")
		}
		if ch.Type != "webhook" && ch.Type != "log" {
			return fmt.Errorf("Configuration error: dispatcher channel %s has unsupported type %s", ch.Name, ch.Type)
		}
		if ch.Type == "webhook" && ch.URL == "" {
			return fmt.Errorf("Configuration error: dispatcher channel %s url is empty", ch.Name)
		}
	}

	if c.Incident.CorrelationWindow <= 0 {
		return fmt.Errorf("Configuration error: incident.correlation_window is less than or equal to 0")
	}
	if c.Incident.ReopenGrace <= 0 {
		return fmt.Errorf("Configuration error: incident.reopen_grace is less than or equal to 0")
	}

	if c.Capacity.PlanInterval <= 0 {
		return fmt.Errorf("Configuration error: capacity.plan_interval is less than or equal to 0")
	}
	if c.Capacity.Lookback <= 0 {
		return fmt.Errorf("Configuration error: capacity.lookback is less than or equal to 0")
	}
	for _, resource := range c.Capacity.Resources {
		if resource.Name == "" || resource.Metric == "" {
			return fmt.Errorf("Configuration error: capacity resource name and metric are required")
		}
		if resource.Capacity <= 0 {
			return fmt.Errorf("Configuration error: capacity resource %s capacity is less than or equal to 0", resource.Name)
		}
	}

	if c.Retention.MetricCutoffDays <= 0 {
		return fmt.Errorf("Configuration error: retention.metric_cutoff_days is less than or equal to 0")
	}
	if c.Retention.AuditArchiveDays <= 0 {
		return fmt.Errorf("Configuration error: retention.audit_archive_days is less than or equal to 0")
	}
	if c.Retention.OrphanMaxAge <= 0 {
		return fmt.Errorf("Configuration error: retention.orphan_max_age is less than or equal to 0")
	}
	if c.Retention.Interval <= 0 {
		return fmt.Errorf("Configuration error: retention.interval is less than or equal to 0")
	}

	if c.Stream.BufferSize <= 0 {
		return fmt.Errorf("Configuration error: stream.buffer_size is less than or equal to 0")
	}

	if c.RateLimit.MaxAmount <= 0 {
		return fmt.Errorf("Configuration error: rate_limit.max_amount is less than or equal to 0")
	}
	if c.RateLimit.ValidDuration <= 0*time.Nanosecond {
		return fmt.Errorf("Configuration error: rate_limit.valid_duration is less than or equal to 0 nanosecond")
	}

	return nil
}
