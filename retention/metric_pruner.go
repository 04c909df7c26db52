package retention

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
)

// MetricPruner deletes raw metric points older than the cutoff. Aggregates
// are kept; only the raw samples age out.
type MetricPruner struct {
	logger     lager.Logger
	metricDB   db.MetricDB
	cutoffDays int
	clock      clock.Clock
}

func NewMetricPruner(logger lager.Logger, metricDB db.MetricDB, cutoffDays int, pclock clock.Clock) *MetricPruner {
	return &MetricPruner{
		logger:     logger.Session("metric-pruner"),
		metricDB:   metricDB,
		cutoffDays: cutoffDays,
		clock:      pclock,
	}
}

func (mp *MetricPruner) Run() {
	mp.logger.Debug("pruning-metrics", lager.Data{"cutoff_days": mp.cutoffDays})

	timestamp := mp.clock.Now().AddDate(0, 0, -mp.cutoffDays).UnixNano()

	err := mp.metricDB.PruneMetrics(timestamp)
	if err != nil {
		mp.logger.Error("prune-metrics", err)
		return
	}
}
