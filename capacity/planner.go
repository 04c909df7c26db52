package capacity

import (
	"math"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/metricstore"
	"obsengine/models"
)

// Resource binds a utilization metric to its hard capacity limit.
type Resource struct {
	Name     string  `yaml:"name"`
	Metric   string  `yaml:"metric"`
	Capacity float64 `yaml:"capacity"`
}

// Planner fits growth trends to resource utilization and projects when
// each resource exhausts its capacity. Both a linear and an exponential
// curve are fitted over the lookback window; the one with the smaller
// residual wins. A non-growing trend never projects an exhaustion time.
type Planner struct {
	logger    lager.Logger
	clock     clock.Clock
	interval  time.Duration
	lookback  time.Duration
	resources []Resource
	query     metricstore.QueryFunc
	ingest    metricstore.IngestFunc

	lock      sync.RWMutex
	forecasts map[string]*models.CapacityForecast

	doneChan chan bool
}

func NewPlanner(logger lager.Logger, pclock clock.Clock, interval time.Duration, lookback time.Duration,
	resources []Resource, query metricstore.QueryFunc, ingest metricstore.IngestFunc) *Planner {
	return &Planner{
		logger:    logger.Session("capacity-planner"),
		clock:     pclock,
		interval:  interval,
		lookback:  lookback,
		resources: resources,
		query:     query,
		ingest:    ingest,
		forecasts: map[string]*models.CapacityForecast{},
		doneChan:  make(chan bool),
	}
}

func (p *Planner) Start() {
	go p.run()
	p.logger.Info("started", lager.Data{"interval": p.interval.String(), "resources": len(p.resources)})
}

func (p *Planner) Stop() {
	close(p.doneChan)
	p.logger.Info("stopped")
}

func (p *Planner) run() {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.doneChan:
			return
		case <-ticker.C():
			p.planAll()
		}
	}
}

func (p *Planner) planAll() {
	for _, resource := range p.resources {
		forecast, err := p.Plan(resource)
		if err != nil {
			p.logger.Error("failed-to-plan", err, lager.Data{"resource": resource.Name})
			continue
		}
		p.lock.Lock()
		p.forecasts[resource.Name] = forecast
		p.lock.Unlock()
		p.publishForecast(resource, forecast)
	}
}

// Plan fits the trend for one resource from the samples in the lookback
// window and projects its exhaustion time.
func (p *Planner) Plan(resource Resource) (*models.CapacityForecast, error) {
	now := p.clock.Now()
	points, err := p.query(resource.Metric, nil, now.Add(-p.lookback).UnixNano(), now.UnixNano())
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, &models.ValidationError{Field: "metric", Reason: "not enough samples to fit a trend"}
	}

	origin := points[0].Timestamp
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = float64(pt.Timestamp-origin) / float64(time.Second)
		ys[i] = pt.Value
	}

	forecast := &models.CapacityForecast{
		Resource:           resource.Name,
		CurrentUtilization: ys[len(ys)-1],
		Capacity:           resource.Capacity,
		FittedAt:           now.UnixNano(),
	}

	linIntercept, linSlope, linResidual := fitLinear(xs, ys)
	expIntercept, expSlope, expResidual, expOK := fitExponential(xs, ys)

	if expOK && expResidual < linResidual {
		forecast.Model = models.TrendModelExponential
		forecast.Residual = expResidual
		if expSlope > 0 && forecast.CurrentUtilization < resource.Capacity {
			offset := (math.Log(resource.Capacity) - expIntercept) / expSlope
			forecast.ExhaustionAt = projectEpoch(origin, offset)
		}
	} else {
		forecast.Model = models.TrendModelLinear
		forecast.Residual = linResidual
		if linSlope > 0 && forecast.CurrentUtilization < resource.Capacity {
			offset := (resource.Capacity - linIntercept) / linSlope
			forecast.ExhaustionAt = projectEpoch(origin, offset)
		}
	}
	if forecast.ExhaustionAt == 0 && forecast.CurrentUtilization < resource.Capacity {
		forecast.Model = models.TrendModelFlat
	}

	p.logger.Debug("fitted", lager.Data{
		"resource":      resource.Name,
		"model":         forecast.Model,
		"residual":      forecast.Residual,
		"exhaustion_at": forecast.ExhaustionAt,
	})
	return forecast, nil
}

// GetForecast returns the latest forecast for a resource, or nil when none
// has been computed yet.
func (p *Planner) GetForecast(resource string) *models.CapacityForecast {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.forecasts[resource]
}

func (p *Planner) GetForecasts() []*models.CapacityForecast {
	p.lock.RLock()
	defer p.lock.RUnlock()
	forecasts := make([]*models.CapacityForecast, 0, len(p.forecasts))
	for _, f := range p.forecasts {
		forecasts = append(forecasts, f)
	}
	return forecasts
}

// publishForecast writes the projected exhaustion epoch back into the
// metric store so alert rules can watch it like any other series.
func (p *Planner) publishForecast(resource Resource, forecast *models.CapacityForecast) {
	if forecast.ExhaustionAt == 0 {
		return
	}
	point := &models.MetricPoint{
		CollectorId: "capacity-planner",
		Name:        models.ExhaustionMetricName,
		Value:       float64(forecast.ExhaustionAt) / float64(time.Second),
		Labels:      map[string]string{"resource": resource.Name, "model": string(forecast.Model)},
		Timestamp:   forecast.FittedAt,
		Type:        models.MetricTypeGauge,
	}
	if err := p.ingest(point); err != nil {
		p.logger.Error("failed-to-publish-forecast", err, lager.Data{"resource": resource.Name})
	}
}

// fitLinear is ordinary least squares; it returns intercept, slope and the
// root mean squared residual.
func fitLinear(xs []float64, ys []float64) (float64, float64, float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		mean := sumY / n
		return mean, 0, rmse(xs, ys, func(float64) float64 { return mean })
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	return intercept, slope, rmse(xs, ys, func(x float64) float64 { return intercept + slope*x })
}

// fitExponential fits ln(y) linearly. It requires strictly positive samples;
// the residual is computed back in the original space so the two models
// compare on equal terms.
func fitExponential(xs []float64, ys []float64) (float64, float64, float64, bool) {
	logs := make([]float64, len(ys))
	for i, y := range ys {
		if y <= 0 {
			return 0, 0, 0, false
		}
		logs[i] = math.Log(y)
	}
	intercept, slope, _ := fitLinear(xs, logs)
	residual := rmse(xs, ys, func(x float64) float64 { return math.Exp(intercept + slope*x) })
	return intercept, slope, residual, true
}

func rmse(xs []float64, ys []float64, predict func(float64) float64) float64 {
	var sq float64
	for i := range xs {
		diff := predict(xs[i]) - ys[i]
		sq += diff * diff
	}
	return math.Sqrt(sq / float64(len(xs)))
}

func projectEpoch(origin int64, offsetSecs float64) int64 {
	if math.IsInf(offsetSecs, 0) || math.IsNaN(offsetSecs) || offsetSecs < 0 {
		return 0
	}
	return origin + int64(offsetSecs*float64(time.Second))
}
