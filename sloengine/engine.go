package sloengine

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/metricstore"
	"obsengine/models"
)

const derivedCollectorId = "sloengine"

// Engine recomputes compliance and error budget for every active SLO target
// on a fixed tick. Burn rate is written back into the metric store as a
// derived series, so the alert engine consumes it like any other input.
type Engine struct {
	logger           lager.Logger
	clock            clock.Clock
	interval         time.Duration
	burnRateLookback time.Duration
	slodb            db.SLODB
	query            metricstore.QueryFunc
	ingest           metricstore.IngestFunc
	doneChan         chan bool
}

func NewEngine(logger lager.Logger, clock clock.Clock, interval time.Duration, burnRateLookback time.Duration,
	slodb db.SLODB, query metricstore.QueryFunc, ingest metricstore.IngestFunc) *Engine {
	return &Engine{
		logger:           logger.Session("SLOEngine"),
		clock:            clock,
		interval:         interval,
		burnRateLookback: burnRateLookback,
		slodb:            slodb,
		query:            query,
		ingest:           ingest,
		doneChan:         make(chan bool),
	}
}

func (e *Engine) Start() {
	go e.startEvaluation()
	e.logger.Info("started", lager.Data{"interval": e.interval})
}

func (e *Engine) Stop() {
	close(e.doneChan)
	e.logger.Info("stopped")
}

func (e *Engine) startEvaluation() {
	ticker := e.clock.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-e.doneChan:
			return
		case <-ticker.C():
			e.evaluateTargets()
		}
	}
}

func (e *Engine) evaluateTargets() {
	targets, err := e.slodb.RetrieveTargets()
	if err != nil {
		e.logger.Error("retrieve-slo-targets", err)
		return
	}
	for _, target := range targets {
		measurement, err := e.ComputeMeasurement(target)
		if err != nil {
			e.logger.Error("compute-measurement", err, lager.Data{"targetId": target.Id})
			continue
		}
		if err := e.slodb.SaveMeasurement(measurement); err != nil {
			e.logger.Error("save-measurement", err, lager.Data{"targetId": target.Id})
		}
		e.publishDerivedSeries(target, measurement)
	}
}

// ComputeMeasurement evaluates one target over its rolling window ending
// now. Point values are event-count deltas, so event totals are plain sums.
func (e *Engine) ComputeMeasurement(target *models.SLOTarget) (*models.SLOMeasurement, error) {
	now := e.clock.Now()
	windowEnd := now.UnixNano()
	windowStart := now.Add(-target.Window()).UnixNano()

	good, err := e.sumSeries(target.GoodMetric, target.MetricLabels, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	total, err := e.sumSeries(target.TotalMetric, target.MetricLabels, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	measurement := &models.SLOMeasurement{
		TargetId:    target.Id,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		GoodEvents:  good,
		TotalEvents: total,
		Timestamp:   windowEnd,
	}

	if total == 0 {
		// no traffic: compliance is undefined, not 100% and not 0%
		measurement.Defined = false
		return measurement, nil
	}

	measurement.Defined = true
	measurement.Compliance = float64(good) / float64(total)

	allowed := (1 - target.TargetRatio) * float64(total)
	violations := float64(total - good)
	measurement.BudgetRemaining = allowed - violations

	burnRate, err := e.computeBurnRate(target, allowed)
	if err != nil {
		return nil, err
	}
	measurement.BurnRate = burnRate
	return measurement, nil
}

// computeBurnRate normalizes budget consumption over the short look-back
// against the full window: a value above 1 projects budget exhaustion
// before the compliance window closes.
func (e *Engine) computeBurnRate(target *models.SLOTarget, allowed float64) (float64, error) {
	if allowed <= 0 {
		return 0, nil
	}
	now := e.clock.Now()
	lookbackStart := now.Add(-e.burnRateLookback).UnixNano()
	goodShort, err := e.sumSeries(target.GoodMetric, target.MetricLabels, lookbackStart, now.UnixNano())
	if err != nil {
		return 0, err
	}
	totalShort, err := e.sumSeries(target.TotalMetric, target.MetricLabels, lookbackStart, now.UnixNano())
	if err != nil {
		return 0, err
	}
	violationsShort := float64(totalShort - goodShort)
	windowRatio := float64(target.Window()) / float64(e.burnRateLookback)
	return violationsShort / allowed * windowRatio, nil
}

func (e *Engine) sumSeries(name string, labels map[string]string, start int64, end int64) (int64, error) {
	matchers := make([]models.LabelMatcher, 0, len(labels))
	for k, v := range labels {
		matchers = append(matchers, models.LabelMatcher{Name: k, Value: v})
	}
	points, err := e.query(name, matchers, start, end)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return int64(sum + 0.5), nil
}

func (e *Engine) publishDerivedSeries(target *models.SLOTarget, measurement *models.SLOMeasurement) {
	if !measurement.Defined {
		return
	}
	labels := map[string]string{"service": target.ServiceName, "slo": target.Id}
	for _, derived := range []struct {
		name  string
		value float64
	}{
		{models.BurnRateMetricName, measurement.BurnRate},
		{models.BudgetRemainingMetricName, measurement.BudgetRemaining},
	} {
		point := &models.MetricPoint{
			CollectorId: derivedCollectorId,
			Name:        derived.name,
			Value:       derived.value,
			Labels:      labels,
			Timestamp:   measurement.Timestamp,
			Type:        models.MetricTypeGauge,
		}
		if err := e.ingest(point); err != nil {
			e.logger.Error("publish-derived-series", err, lager.Data{"name": derived.name, "targetId": target.Id})
		}
	}
}
