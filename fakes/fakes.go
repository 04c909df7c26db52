package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_metric_db.go ../db MetricDB
//counterfeiter:generate -o ./fake_collector_db.go ../db CollectorDB
//counterfeiter:generate -o ./fake_slo_db.go ../db SLODB
//counterfeiter:generate -o ./fake_alert_db.go ../db AlertDB
//counterfeiter:generate -o ./fake_notification_db.go ../db NotificationDB
//counterfeiter:generate -o ./fake_incident_db.go ../db IncidentDB
//counterfeiter:generate -o ./fake_trace_db.go ../db TraceDB
//counterfeiter:generate -o ./fake_audit_db.go ../db AuditDB
//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
//counterfeiter:generate -o ./fake_channel.go ../notifier Channel
