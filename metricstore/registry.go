package metricstore

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/models"
)

// Registry tracks the producers expected to emit metrics. A collector turns
// degraded when no point arrives within its expected interval and silent
// past three intervals; status is re-examined on every ingest and by the
// refresh loop.
type Registry struct {
	logger          lager.Logger
	clock           clock.Clock
	cdb             db.CollectorDB
	refreshInterval time.Duration
	doneChan        chan bool

	lock       sync.RWMutex
	collectors map[string]*models.MetricCollector
}

func NewRegistry(logger lager.Logger, clock clock.Clock, cdb db.CollectorDB, refreshInterval time.Duration) *Registry {
	return &Registry{
		logger:          logger.Session("CollectorRegistry"),
		clock:           clock,
		cdb:             cdb,
		refreshInterval: refreshInterval,
		doneChan:        make(chan bool),
		collectors:      make(map[string]*models.MetricCollector),
	}
}

func (r *Registry) Start() {
	if err := r.loadCollectors(); err != nil {
		r.logger.Error("load-collectors", err)
	}
	go r.startRefresh()
	r.logger.Info("started", lager.Data{"refreshInterval": r.refreshInterval})
}

func (r *Registry) Stop() {
	close(r.doneChan)
	r.logger.Info("stopped")
}

func (r *Registry) loadCollectors() error {
	collectors, err := r.cdb.RetrieveCollectors()
	if err != nil {
		return err
	}
	r.lock.Lock()
	for _, c := range collectors {
		r.collectors[c.Id] = c
	}
	r.lock.Unlock()
	return nil
}

func (r *Registry) startRefresh() {
	ticker := r.clock.NewTicker(r.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.doneChan:
			return
		case <-ticker.C():
			r.refreshStatuses()
		}
	}
}

func (r *Registry) refreshStatuses() {
	now := r.clock.Now().UnixNano()
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, c := range r.collectors {
		status := statusFor(c, now)
		if status != c.Status {
			r.logger.Info("collector-status-changed", lager.Data{"collectorId": c.Id, "from": c.Status, "to": status})
			c.Status = status
			r.persist(c)
		}
	}
}

func statusFor(c *models.MetricCollector, now int64) models.CollectorStatus {
	if c.ExpectedIntervalSecs <= 0 {
		return models.CollectorStatusHealthy
	}
	sinceLast := now - c.LastSeen
	interval := c.ExpectedInterval().Nanoseconds()
	switch {
	case sinceLast > 3*interval:
		return models.CollectorStatusSilent
	case sinceLast > interval:
		return models.CollectorStatusDegraded
	default:
		return models.CollectorStatusHealthy
	}
}

func (r *Registry) Register(id string, expectedInterval time.Duration) {
	collector := &models.MetricCollector{
		Id:                   id,
		ExpectedIntervalSecs: int(expectedInterval / time.Second),
		LastSeen:             r.clock.Now().UnixNano(),
		Status:               models.CollectorStatusHealthy,
	}
	r.lock.Lock()
	r.collectors[id] = collector
	r.persist(collector)
	r.lock.Unlock()
}

// Observe refreshes liveness for a collector on ingest; unknown collectors
// are admitted with no expected interval until registered explicitly.
func (r *Registry) Observe(id string, timestamp int64) {
	r.lock.Lock()
	c, exist := r.collectors[id]
	if !exist {
		c = &models.MetricCollector{Id: id}
		r.collectors[id] = c
	}
	if timestamp > c.LastSeen {
		c.LastSeen = timestamp
	}
	status := statusFor(c, r.clock.Now().UnixNano())
	changed := status != c.Status || !exist
	c.Status = status
	if changed {
		r.persist(c)
	}
	r.lock.Unlock()
}

// persist is best effort; registry state is reconstructable from ingest.
// Caller holds r.lock.
func (r *Registry) persist(c *models.MetricCollector) {
	if err := r.cdb.UpsertCollector(c); err != nil {
		r.logger.Error("upsert-collector", err, lager.Data{"collectorId": c.Id})
	}
}

func (r *Registry) GetCollector(id string) (*models.MetricCollector, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	c, exist := r.collectors[id]
	if !exist {
		return nil, false
	}
	copied := *c
	return &copied, true
}

func (r *Registry) Collectors() []*models.MetricCollector {
	r.lock.RLock()
	defer r.lock.RUnlock()
	result := make([]*models.MetricCollector, 0, len(r.collectors))
	for _, c := range r.collectors {
		copied := *c
		result = append(result, &copied)
	}
	return result
}
