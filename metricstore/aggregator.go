package metricstore

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/models"
)

// Aggregator recomputes closed window buckets from raw points on a fixed
// tick. Aggregates are a cache of the raw data, never authoritative; a
// bucket is recomputed idempotently whenever it is revisited, so lagging
// behind ingestion only delays aggregates and loses nothing.
type Aggregator struct {
	logger   lager.Logger
	clock    clock.Clock
	interval time.Duration
	store    *Store
	mdb      db.MetricDB
	doneChan chan bool

	lastClosed map[int]int64
}

func NewAggregator(logger lager.Logger, clock clock.Clock, interval time.Duration, store *Store, mdb db.MetricDB) *Aggregator {
	return &Aggregator{
		logger:     logger.Session("Aggregator"),
		clock:      clock,
		interval:   interval,
		store:      store,
		mdb:        mdb,
		doneChan:   make(chan bool),
		lastClosed: make(map[int]int64),
	}
}

func (a *Aggregator) Start() {
	go a.startAggregating()
	a.logger.Info("started", lager.Data{"interval": a.interval})
}

func (a *Aggregator) Stop() {
	close(a.doneChan)
	a.logger.Info("stopped")
}

func (a *Aggregator) startAggregating() {
	ticker := a.clock.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-a.doneChan:
			return
		case <-ticker.C():
			a.aggregateClosedWindows()
		}
	}
}

func (a *Aggregator) aggregateClosedWindows() {
	now := a.clock.Now()
	series := a.store.SeriesNames()
	for _, window := range SupportedWindows {
		windowSecs := int(window / time.Second)
		closedEnd := now.Truncate(window).UnixNano()
		if closedEnd <= a.lastClosed[windowSecs] {
			continue
		}
		windowStart := closedEnd - window.Nanoseconds()
		for _, info := range series {
			a.aggregateSeries(info, windowStart, closedEnd, windowSecs)
		}
		a.lastClosed[windowSecs] = closedEnd
	}
}

func (a *Aggregator) aggregateSeries(info SeriesInfo, windowStart int64, windowEnd int64, windowSecs int) {
	matchers := exactMatchers(info.Labels)
	points, err := a.store.Query(info.Name, matchers, windowStart, windowEnd-1)
	if err != nil {
		a.logger.Error("query-window-points", err, lager.Data{"name": info.Name, "windowSecs": windowSecs})
		return
	}
	aggregate := ComputeAggregate(info.Name, info.Labels, points, windowStart, windowSecs)
	if aggregate == nil {
		return
	}
	if err := a.mdb.SaveAggregate(aggregate); err != nil {
		a.logger.Error("save-aggregate", err, lager.Data{"name": info.Name, "windowSecs": windowSecs})
	}
}

func exactMatchers(labels map[string]string) []models.LabelMatcher {
	matchers := make([]models.LabelMatcher, 0, len(labels))
	for k, v := range labels {
		if k == models.ResetMarkerLabel {
			continue
		}
		matchers = append(matchers, models.LabelMatcher{Name: k, Value: v})
	}
	return matchers
}
