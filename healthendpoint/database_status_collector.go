package healthendpoint

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

type databaseStatusCollector struct {
	maxOpenConnectionsDesc *prometheus.Desc
	openConnectionsDesc    *prometheus.Desc
	inUseDesc              *prometheus.Desc
	idleDesc               *prometheus.Desc
	waitCountDesc          *prometheus.Desc
	waitDurationDesc       *prometheus.Desc

	dbStatus DatabaseStatus
}

func NewDatabaseStatusCollector(namespace, subSystem string, dbName string, dbStatus DatabaseStatus) prometheus.Collector {
	desc := func(name string, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, dbName+"_"+name), help, nil, nil)
	}
	return &databaseStatusCollector{
		maxOpenConnectionsDesc: desc("max_open_connections", "Maximum number of open connections to the database"),
		openConnectionsDesc:    desc("open_connections", "The number of established connections both in use and idle"),
		inUseDesc:              desc("in_use", "The number of connections currently in use"),
		idleDesc:               desc("idle", "The number of idle connections"),
		waitCountDesc:          desc("wait_count", "The total number of connections waited for"),
		waitDurationDesc:       desc("wait_duration", "The total time blocked waiting for a new connection"),
		dbStatus:               dbStatus,
	}
}

func (c *databaseStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.maxOpenConnectionsDesc
	ch <- c.openConnectionsDesc
	ch <- c.inUseDesc
	ch <- c.idleDesc
	ch <- c.waitCountDesc
	ch <- c.waitDurationDesc
}

func (c *databaseStatusCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.dbStatus.GetDBStatus()
	gauge := func(desc *prometheus.Desc, value float64) {
		m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, value)
		if err == nil {
			ch <- m
		}
	}
	gauge(c.maxOpenConnectionsDesc, float64(stats.MaxOpenConnections))
	gauge(c.openConnectionsDesc, float64(stats.OpenConnections))
	gauge(c.inUseDesc, float64(stats.InUse))
	gauge(c.idleDesc, float64(stats.Idle))
	gauge(c.waitCountDesc, float64(stats.WaitCount))
	gauge(c.waitDurationDesc, float64(stats.WaitDuration))
}
