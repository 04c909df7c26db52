package metricstore

import (
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	cache "github.com/patrickmn/go-cache"

	"obsengine/collection"
	"obsengine/db"
	"obsengine/models"
)

// QueryFunc is the read capability handed to the SLO engine, alert engine
// and capacity planner.
type QueryFunc func(name string, matchers []models.LabelMatcher, start int64, end int64) ([]*models.MetricPoint, error)

// IngestFunc is the write capability handed to components emitting derived
// series back into the store.
type IngestFunc func(point *models.MetricPoint) error

type seriesState struct {
	mu          sync.Mutex
	name        string
	labels      map[string]string
	cache       *collection.SeriesCache
	lastCounter float64
	hasCounter  bool
}

type Store struct {
	logger             lager.Logger
	clock              clock.Clock
	mdb                db.MetricDB
	registry           *Registry
	cacheSizePerSeries int
	cardinalityCeil    int

	lock        sync.RWMutex
	series      map[string]*seriesState
	cardinality *cache.Cache
	flagged     map[string]bool
}

func NewStore(logger lager.Logger, clock clock.Clock, mdb db.MetricDB, registry *Registry, cacheSizePerSeries int, cardinalityCeiling int, cardinalityTTL time.Duration) *Store {
	return &Store{
		logger:             logger.Session("MetricStore"),
		clock:              clock,
		mdb:                mdb,
		registry:           registry,
		cacheSizePerSeries: cacheSizePerSeries,
		cardinalityCeil:    cardinalityCeiling,
		series:             make(map[string]*seriesState),
		cardinality:        cache.New(cardinalityTTL, cardinalityTTL/2),
		flagged:            make(map[string]bool),
	}
}

func validatePoint(point *models.MetricPoint) *models.ValidationError {
	if point == nil {
		return &models.ValidationError{Field: "point", Reason: "missing"}
	}
	if point.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "empty"}
	}
	if point.CollectorId == "" {
		return &models.ValidationError{Field: "collector_id", Reason: "empty"}
	}
	if point.Timestamp <= 0 {
		return &models.ValidationError{Field: "timestamp", Reason: "not a positive unix-nano timestamp"}
	}
	if math.IsNaN(point.Value) || math.IsInf(point.Value, 0) {
		return &models.ValidationError{Field: "value", Reason: "not finite"}
	}
	switch point.Type {
	case models.MetricTypeCounter, models.MetricTypeGauge, models.MetricTypeHistogram, models.MetricTypeSummary:
	default:
		return &models.ValidationError{Field: "type", Reason: "unknown metric type"}
	}
	return nil
}

// Ingest validates, appends to the per-series cache, writes through to the
// durable store and refreshes collector liveness. Points for different
// series never contend on the same lock.
func (s *Store) Ingest(point *models.MetricPoint) error {
	if err := s.admit(point); err != nil {
		return err
	}
	if err := s.mdb.SaveMetric(point); err != nil {
		return &models.TransientStoreError{Op: "save-metric", Err: err}
	}
	s.observe(point)
	return nil
}

// IngestBatch admits each point on its own merits and persists the admitted
// ones with a single bulk write. The returned slice has one entry per input
// point; nil means accepted.
func (s *Store) IngestBatch(points []*models.MetricPoint) []error {
	errs := make([]error, len(points))
	admitted := make([]*models.MetricPoint, 0, len(points))
	indexes := make([]int, 0, len(points))
	for i, point := range points {
		if err := s.admit(point); err != nil {
			errs[i] = err
			continue
		}
		admitted = append(admitted, point)
		indexes = append(indexes, i)
	}
	if len(admitted) == 0 {
		return errs
	}

	if err := s.mdb.SaveMetricsInBulk(admitted); err != nil {
		for _, i := range indexes {
			errs[i] = &models.TransientStoreError{Op: "save-metrics-in-bulk", Err: err}
		}
		return errs
	}
	for _, point := range admitted {
		s.observe(point)
	}
	return errs
}

// admit validates the point and appends it to its series cache.
func (s *Store) admit(point *models.MetricPoint) error {
	if verr := validatePoint(point); verr != nil {
		return verr
	}

	state := s.getOrCreateSeries(point)

	state.mu.Lock()
	defer state.mu.Unlock()
	if point.Type == models.MetricTypeCounter && state.hasCounter && point.Value < state.lastCounter && !point.IsReset() {
		return &models.ValidationError{
			Field:  "value",
			Reason: "counter decreased from " + formatFloat(state.lastCounter) + " without reset marker",
		}
	}
	if point.Type == models.MetricTypeCounter {
		state.lastCounter = point.Value
		state.hasCounter = true
	}
	state.cache.Put(point)
	return nil
}

func (s *Store) observe(point *models.MetricPoint) {
	if s.registry != nil {
		s.registry.Observe(point.CollectorId, point.Timestamp)
	}
}

func (s *Store) getOrCreateSeries(point *models.MetricPoint) *seriesState {
	key := point.SeriesKey()

	s.lock.RLock()
	state, exist := s.series[key]
	s.lock.RUnlock()
	if exist {
		return state
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	state, exist = s.series[key]
	if exist {
		return state
	}
	state = &seriesState{
		name:   point.Name,
		labels: point.Labels,
		cache:  collection.NewSeriesCache(s.cacheSizePerSeries),
	}
	s.series[key] = state
	s.trackCardinality(point.Name, key)
	return state
}

// trackCardinality counts distinct label sets per metric name; crossing the
// ceiling flags the metric but never rejects ingestion. Caller holds s.lock.
func (s *Store) trackCardinality(name string, seriesKey string) {
	var set map[string]struct{}
	if v, found := s.cardinality.Get(name); found {
		set = v.(map[string]struct{})
	} else {
		set = make(map[string]struct{})
	}
	set[seriesKey] = struct{}{}
	s.cardinality.Set(name, set, cache.DefaultExpiration)

	if s.cardinalityCeil > 0 && len(set) > s.cardinalityCeil && !s.flagged[name] {
		s.flagged[name] = true
		s.logger.Info("high-cardinality-metric", lager.Data{"name": name, "distinctLabelSets": len(set), "ceiling": s.cardinalityCeil})
	}
}

func (s *Store) IsFlagged(name string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.flagged[name]
}

// Query returns time-ordered points for a metric. Exact-only matcher sets
// covered by the in-memory caches are served there; anything else falls back
// to the durable store.
func (s *Store) Query(name string, matchers []models.LabelMatcher, start int64, end int64) ([]*models.MetricPoint, error) {
	if end < 0 {
		end = s.clock.Now().UnixNano()
	}
	if points, ok := s.queryCache(name, matchers, start, end); ok {
		return points, nil
	}
	points, err := s.mdb.RetrieveMetrics(name, matchers, start, end, db.ASC)
	if err != nil {
		return nil, &models.TransientStoreError{Op: "retrieve-metrics", Err: err}
	}
	return points, nil
}

func (s *Store) queryCache(name string, matchers []models.LabelMatcher, start int64, end int64) ([]*models.MetricPoint, bool) {
	s.lock.RLock()
	states := []*seriesState{}
	for _, state := range s.series {
		if state.name == name && models.MatchLabels(state.labels, matchers) {
			states = append(states, state)
		}
	}
	s.lock.RUnlock()

	if len(states) == 0 {
		return nil, false
	}

	result := []*models.MetricPoint{}
	for _, state := range states {
		points, covered := state.cache.Query(start, end+1, nil)
		if !covered {
			return nil, false
		}
		result = append(result, points...)
	}
	sortPointsByTime(result)
	return result, true
}

// SeriesNames lists the distinct (name, labels) series currently cached;
// the aggregation runner walks it to recompute closed windows.
func (s *Store) SeriesNames() []SeriesInfo {
	s.lock.RLock()
	defer s.lock.RUnlock()
	infos := make([]SeriesInfo, 0, len(s.series))
	for _, state := range s.series {
		infos = append(infos, SeriesInfo{Name: state.name, Labels: state.labels})
	}
	return infos
}

type SeriesInfo struct {
	Name   string
	Labels map[string]string
}

// QueryAggregated serves pre-computed aggregates when the requested range
// aligns with a supported bucket, and computes on read otherwise.
func (s *Store) QueryAggregated(name string, matchers []models.LabelMatcher, start int64, end int64, windowSecs int) ([]*models.AggregatedMetric, error) {
	window := int64(windowSecs) * time.Second.Nanoseconds()
	if windowSecs <= 0 {
		return nil, &models.ValidationError{Field: "window_secs", Reason: "not positive"}
	}

	if IsSupportedWindow(windowSecs) && start%window == 0 && end%window == 0 {
		aggregates, err := s.mdb.RetrieveAggregates(name, windowSecs, start, end)
		if err != nil {
			return nil, &models.TransientStoreError{Op: "retrieve-aggregates", Err: err}
		}
		matched := []*models.AggregatedMetric{}
		for _, a := range aggregates {
			if models.MatchLabels(a.Labels, matchers) {
				matched = append(matched, a)
			}
		}
		if len(matched) > 0 {
			return matched, nil
		}
	}

	points, err := s.Query(name, matchers, start, end-1)
	if err != nil {
		return nil, err
	}

	bySeries := map[string][]*models.MetricPoint{}
	labelsBySeries := map[string]map[string]string{}
	for _, p := range points {
		key := p.SeriesKey()
		bySeries[key] = append(bySeries[key], p)
		labelsBySeries[key] = p.Labels
	}

	result := []*models.AggregatedMetric{}
	for key, seriesPoints := range bySeries {
		byBucket := map[int64][]*models.MetricPoint{}
		for _, p := range seriesPoints {
			bucket := p.Timestamp - p.Timestamp%window
			byBucket[bucket] = append(byBucket[bucket], p)
		}
		for bucketStart, bucketPoints := range byBucket {
			if a := ComputeAggregate(name, labelsBySeries[key], bucketPoints, bucketStart, windowSecs); a != nil {
				result = append(result, a)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WindowStart < result[j].WindowStart
	})
	return result, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortPointsByTime(points []*models.MetricPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
}
