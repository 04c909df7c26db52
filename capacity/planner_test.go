package capacity_test

import (
	"errors"
	"math"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/capacity"
	"obsengine/models"
)

var _ = Describe("Planner", func() {
	const (
		planInterval = 10 * time.Minute
		lookback     = time.Hour
	)

	var (
		logger  *lagertest.TestLogger
		pclock  *fakeclock.FakeClock
		planner *capacity.Planner

		seriesLock sync.Mutex
		series     map[string][]*models.MetricPoint
		queryErr   error

		ingestLock sync.Mutex
		ingested   []*models.MetricPoint

		diskResource capacity.Resource
	)

	// samples every minute over the last ten minutes, newest at now
	seedSeries := func(metric string, valueAt func(xSecs float64) float64) int64 {
		seriesLock.Lock()
		defer seriesLock.Unlock()
		origin := pclock.Now().Add(-10 * time.Minute).UnixNano()
		points := []*models.MetricPoint{}
		for i := 0; i <= 10; i++ {
			ts := origin + int64(i)*time.Minute.Nanoseconds()
			points = append(points, &models.MetricPoint{
				Name:      metric,
				Value:     valueAt(float64(i * 60)),
				Timestamp: ts,
			})
		}
		series[metric] = points
		return origin
	}

	ingestedPoints := func() []*models.MetricPoint {
		ingestLock.Lock()
		defer ingestLock.Unlock()
		return append([]*models.MetricPoint{}, ingested...)
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("planner-test")
		pclock = fakeclock.NewFakeClock(time.Unix(0, 0).Add(4000 * time.Hour))
		series = map[string][]*models.MetricPoint{}
		queryErr = nil
		ingested = []*models.MetricPoint{}

		diskResource = capacity.Resource{Name: "disk", Metric: "disk.used_percent", Capacity: 100}

		query := func(name string, matchers []models.LabelMatcher, start int64, end int64) ([]*models.MetricPoint, error) {
			seriesLock.Lock()
			defer seriesLock.Unlock()
			if queryErr != nil {
				return nil, queryErr
			}
			result := []*models.MetricPoint{}
			for _, p := range series[name] {
				if p.Timestamp >= start && p.Timestamp <= end {
					result = append(result, p)
				}
			}
			return result, nil
		}
		ingest := func(point *models.MetricPoint) error {
			ingestLock.Lock()
			defer ingestLock.Unlock()
			ingested = append(ingested, point)
			return nil
		}

		planner = capacity.NewPlanner(logger, pclock, planInterval, lookback,
			[]capacity.Resource{diskResource}, query, ingest)
	})

	Describe("Plan", func() {
		It("fits a linear trend and projects the exhaustion time", func() {
			origin := seedSeries("disk.used_percent", func(x float64) float64 { return 10 + 0.1*x })

			forecast, err := planner.Plan(diskResource)
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.Resource).To(Equal("disk"))
			Expect(forecast.Model).To(Equal(models.TrendModelLinear))
			Expect(forecast.Capacity).To(Equal(100.0))
			Expect(forecast.CurrentUtilization).To(BeNumerically("~", 70, 1e-9))
			Expect(forecast.Residual).To(BeNumerically("~", 0, 1e-6))
			// 10 + 0.1x reaches 100 at x = 900s past the first sample
			Expect(forecast.ExhaustionAt).To(BeNumerically("~", origin+900*time.Second.Nanoseconds(), time.Second.Nanoseconds()))
		})

		It("prefers the exponential fit when it explains the data better", func() {
			origin := seedSeries("disk.used_percent", func(x float64) float64 { return math.Exp(0.005 * x) })

			forecast, err := planner.Plan(diskResource)
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.Model).To(Equal(models.TrendModelExponential))
			// e^(0.005x) reaches 100 at x = ln(100)/0.005
			expected := origin + int64(math.Log(100)/0.005*float64(time.Second))
			Expect(forecast.ExhaustionAt).To(BeNumerically("~", expected, time.Second.Nanoseconds()))
		})

		It("marks a steady resource flat and projects nothing", func() {
			seedSeries("disk.used_percent", func(x float64) float64 { return 42 })

			forecast, err := planner.Plan(diskResource)
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.Model).To(Equal(models.TrendModelFlat))
			Expect(forecast.ExhaustionAt).To(BeZero())
		})

		It("marks a shrinking resource flat", func() {
			seedSeries("disk.used_percent", func(x float64) float64 { return 80 - 0.05*x })

			forecast, err := planner.Plan(diskResource)
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.Model).To(Equal(models.TrendModelFlat))
			Expect(forecast.ExhaustionAt).To(BeZero())
		})

		It("needs at least two samples to fit anything", func() {
			seriesLock.Lock()
			series["disk.used_percent"] = []*models.MetricPoint{
				{Name: "disk.used_percent", Value: 10, Timestamp: pclock.Now().UnixNano()},
			}
			seriesLock.Unlock()

			_, err := planner.Plan(diskResource)
			var validationErr *models.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("metric"))
		})

		It("passes query failures through", func() {
			seriesLock.Lock()
			queryErr = errors.New("store down")
			seriesLock.Unlock()

			_, err := planner.Plan(diskResource)
			Expect(err).To(MatchError("store down"))
		})
	})

	Describe("the planning loop", func() {
		AfterEach(func() {
			planner.Stop()
		})

		It("refreshes forecasts on every tick and publishes the exhaustion series", func() {
			seedSeries("disk.used_percent", func(x float64) float64 { return 10 + 0.1*x })
			planner.Start()

			Expect(planner.GetForecast("disk")).To(BeNil())

			pclock.WaitForWatcherAndIncrement(planInterval)
			Eventually(func() *models.CapacityForecast { return planner.GetForecast("disk") }).ShouldNot(BeNil())
			Expect(planner.GetForecasts()).To(HaveLen(1))

			Eventually(ingestedPoints).Should(HaveLen(1))
			point := ingestedPoints()[0]
			Expect(point.Name).To(Equal(models.ExhaustionMetricName))
			Expect(point.CollectorId).To(Equal("capacity-planner"))
			Expect(point.Type).To(Equal(models.MetricTypeGauge))
			Expect(point.Labels).To(HaveKeyWithValue("resource", "disk"))
			Expect(point.Labels).To(HaveKeyWithValue("model", string(models.TrendModelLinear)))

			forecast := planner.GetForecast("disk")
			Expect(point.Value).To(Equal(float64(forecast.ExhaustionAt) / float64(time.Second)))
		})

		It("does not publish a series for a flat forecast", func() {
			seedSeries("disk.used_percent", func(x float64) float64 { return 42 })
			planner.Start()

			pclock.WaitForWatcherAndIncrement(planInterval)
			Eventually(func() *models.CapacityForecast { return planner.GetForecast("disk") }).ShouldNot(BeNil())
			Consistently(ingestedPoints).Should(BeEmpty())
		})

		It("keeps the previous forecast when a plan cycle fails", func() {
			seedSeries("disk.used_percent", func(x float64) float64 { return 10 + 0.1*x })
			planner.Start()

			pclock.WaitForWatcherAndIncrement(planInterval)
			Eventually(func() *models.CapacityForecast { return planner.GetForecast("disk") }).ShouldNot(BeNil())
			first := planner.GetForecast("disk")

			seriesLock.Lock()
			queryErr = errors.New("store down")
			seriesLock.Unlock()

			pclock.WaitForWatcherAndIncrement(planInterval)
			Consistently(func() *models.CapacityForecast { return planner.GetForecast("disk") }).Should(Equal(first))
		})
	})
})
