package sloengine_test

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/fakes"
	"obsengine/models"
	"obsengine/sloengine"
)

var _ = Describe("Engine", func() {
	var (
		engine   *sloengine.Engine
		slodb    *fakes.FakeSLODB
		fclock   *fakeclock.FakeClock
		logger   *lagertest.TestLogger
		baseTime time.Time

		seriesPoints map[string][]*models.MetricPoint
		ingested     []*models.MetricPoint
		ingestedLock sync.Mutex

		target *models.SLOTarget
	)

	const (
		evalInterval = time.Minute
		lookback     = 30 * time.Minute
	)

	query := func(name string, matchers []models.LabelMatcher, start int64, end int64) ([]*models.MetricPoint, error) {
		result := []*models.MetricPoint{}
		for _, p := range seriesPoints[name] {
			if p.Timestamp >= start && p.Timestamp <= end && models.MatchLabels(p.Labels, matchers) {
				result = append(result, p)
			}
		}
		return result, nil
	}

	ingest := func(point *models.MetricPoint) error {
		ingestedLock.Lock()
		defer ingestedLock.Unlock()
		ingested = append(ingested, point)
		return nil
	}

	ingestedPoints := func() []*models.MetricPoint {
		ingestedLock.Lock()
		defer ingestedLock.Unlock()
		return append([]*models.MetricPoint{}, ingested...)
	}

	addPoint := func(name string, value float64, at time.Time) {
		seriesPoints[name] = append(seriesPoints[name], &models.MetricPoint{
			CollectorId: "collector-1",
			Name:        name,
			Value:       value,
			Labels:      map[string]string{"service": "checkout"},
			Timestamp:   at.UnixNano(),
			Type:        models.MetricTypeCounter,
		})
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("SLOEngine-test")
		baseTime = time.Unix(0, 0).Add(1000 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		slodb = &fakes.FakeSLODB{}
		seriesPoints = map[string][]*models.MetricPoint{}
		ingested = nil

		target = &models.SLOTarget{
			Id:           "slo-checkout",
			ServiceName:  "checkout",
			Indicator:    models.IndicatorAvailability,
			TargetRatio:  0.99,
			WindowSecs:   3600,
			GoodMetric:   "requests_good",
			TotalMetric:  "requests_total",
			MetricLabels: map[string]string{"service": "checkout"},
		}

		engine = sloengine.NewEngine(logger, fclock, evalInterval, lookback, slodb, query, ingest)
	})

	Describe("ComputeMeasurement", func() {
		Context("with traffic fully inside the window", func() {
			BeforeEach(func() {
				addPoint("requests_good", 900, baseTime.Add(-45*time.Minute))
				addPoint("requests_total", 900, baseTime.Add(-45*time.Minute))
				addPoint("requests_good", 90, baseTime.Add(-10*time.Minute))
				addPoint("requests_total", 100, baseTime.Add(-10*time.Minute))
			})

			It("computes compliance as good over total", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.Defined).To(BeTrue())
				Expect(m.GoodEvents).To(Equal(int64(990)))
				Expect(m.TotalEvents).To(Equal(int64(1000)))
				Expect(m.Compliance).To(BeNumerically("~", 0.99, 1e-9))
			})

			It("computes the remaining error budget", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.BudgetRemaining).To(BeNumerically("~", 0, 1e-6))
			})

			It("normalizes recent violations into the burn rate", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.BurnRate).To(BeNumerically("~", 2.0, 1e-6))
			})
		})

		Context("when violations exceed the budget", func() {
			BeforeEach(func() {
				addPoint("requests_good", 900, baseTime.Add(-45*time.Minute))
				addPoint("requests_total", 1000, baseTime.Add(-45*time.Minute))
			})

			It("reports a negative budget instead of clamping", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.Compliance).To(BeNumerically("~", 0.9, 1e-9))
				Expect(m.BudgetRemaining).To(BeNumerically("~", -90, 1e-6))
			})
		})

		Context("when the window saw no traffic", func() {
			It("leaves compliance undefined", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.Defined).To(BeFalse())
				Expect(m.TotalEvents).To(Equal(int64(0)))
				Expect(m.Compliance).To(BeZero())
			})
		})

		Context("when the target allows no violations at all", func() {
			BeforeEach(func() {
				target.TargetRatio = 1.0
				addPoint("requests_good", 99, baseTime.Add(-10*time.Minute))
				addPoint("requests_total", 100, baseTime.Add(-10*time.Minute))
			})

			It("reports a zero burn rate", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.BurnRate).To(BeZero())
				Expect(m.BudgetRemaining).To(BeNumerically("~", -1, 1e-6))
			})
		})

		Context("with points outside the window", func() {
			BeforeEach(func() {
				addPoint("requests_good", 500, baseTime.Add(-2*time.Hour))
				addPoint("requests_total", 500, baseTime.Add(-2*time.Hour))
				addPoint("requests_good", 10, baseTime.Add(-10*time.Minute))
				addPoint("requests_total", 10, baseTime.Add(-10*time.Minute))
			})

			It("only counts events inside the rolling window", func() {
				m, err := engine.ComputeMeasurement(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.TotalEvents).To(Equal(int64(10)))
			})
		})
	})

	Describe("periodic evaluation", func() {
		BeforeEach(func() {
			slodb.RetrieveTargetsReturns([]*models.SLOTarget{target}, nil)
			addPoint("requests_good", 90, baseTime.Add(-10*time.Minute))
			addPoint("requests_total", 100, baseTime.Add(-10*time.Minute))
			engine.Start()
		})

		AfterEach(func() {
			engine.Stop()
		})

		It("saves a measurement per target on each tick", func() {
			fclock.WaitForWatcherAndIncrement(evalInterval)
			Eventually(slodb.SaveMeasurementCallCount).Should(Equal(1))
			m := slodb.SaveMeasurementArgsForCall(0)
			Expect(m.TargetId).To(Equal("slo-checkout"))
			Expect(m.Defined).To(BeTrue())
		})

		It("publishes burn rate and budget as derived series", func() {
			fclock.WaitForWatcherAndIncrement(evalInterval)
			Eventually(func() int { return len(ingestedPoints()) }).Should(Equal(2))
			points := ingestedPoints()
			names := []string{points[0].Name, points[1].Name}
			Expect(names).To(ConsistOf(models.BurnRateMetricName, models.BudgetRemainingMetricName))
			for _, p := range points {
				Expect(p.CollectorId).To(Equal("sloengine"))
				Expect(p.Labels).To(Equal(map[string]string{"service": "checkout", "slo": "slo-checkout"}))
			}
		})
	})
})
