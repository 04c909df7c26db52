package retention

import (
	"time"

	"code.cloudfoundry.org/lager"

	"obsengine/tracestore"
)

// OrphanSweeper surfaces spans that have waited past the quarantine
// deadline for a parent that never arrived. The spans stay in the store
// flagged as orphans; the sweep only reports them.
type OrphanSweeper struct {
	logger     lager.Logger
	traceStore *tracestore.Store
	maxAge     time.Duration
}

func NewOrphanSweeper(logger lager.Logger, traceStore *tracestore.Store, maxAge time.Duration) *OrphanSweeper {
	return &OrphanSweeper{
		logger:     logger.Session("orphan-sweeper"),
		traceStore: traceStore,
		maxAge:     maxAge,
	}
}

func (os *OrphanSweeper) Run() {
	orphans, err := os.traceStore.StaleOrphans(os.maxAge.Nanoseconds())
	if err != nil {
		os.logger.Error("sweep-orphan-spans", err)
		return
	}
	if len(orphans) == 0 {
		return
	}

	byTrace := map[string]int{}
	for _, span := range orphans {
		byTrace[span.TraceId]++
	}
	os.logger.Info("stale-orphan-spans", lager.Data{"spans": len(orphans), "traces": len(byTrace)})
	for traceId, count := range byTrace {
		os.logger.Debug("broken-trace", lager.Data{"trace_id": traceId, "orphans": count})
	}
}
