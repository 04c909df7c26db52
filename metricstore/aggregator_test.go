package metricstore_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/fakes"
	"obsengine/metricstore"
	"obsengine/models"
)

var _ = Describe("Aggregator", func() {
	var (
		aggregator *metricstore.Aggregator
		store      *metricstore.Store
		metricDB   *fakes.FakeMetricDB
		fclock     *fakeclock.FakeClock
		logger     *lagertest.TestLogger
		baseTime   time.Time
	)

	const interval = 20 * time.Second

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("Aggregator-test")
		baseTime = time.Unix(0, 0).Add(100 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		metricDB = &fakes.FakeMetricDB{}
		store = metricstore.NewStore(logger, fclock, metricDB, nil, 10, 100, time.Hour)
		aggregator = metricstore.NewAggregator(logger, fclock, interval, store, metricDB)
	})

	AfterEach(func() {
		aggregator.Stop()
	})

	It("persists aggregates for closed windows of known series", func() {
		point := &models.MetricPoint{
			CollectorId: "collector-1",
			Name:        "latency",
			Value:       12,
			Labels:      map[string]string{"service": "api"},
			Timestamp:   baseTime.UnixNano(),
			Type:        models.MetricTypeGauge,
		}
		Expect(store.Ingest(point)).To(Succeed())
		metricDB.RetrieveMetricsReturns([]*models.MetricPoint{point}, nil)

		aggregator.Start()
		fclock.WaitForWatcherAndIncrement(interval)

		Eventually(metricDB.SaveAggregateCallCount).Should(BeNumerically(">=", 1))
		saved := metricDB.SaveAggregateArgsForCall(0)
		Expect(saved.Name).To(Equal("latency"))
		Expect(saved.Labels).To(Equal(map[string]string{"service": "api"}))
		Expect(saved.Count).To(Equal(int64(1)))
		Expect(saved.Sum).To(Equal(12.0))
	})

	It("does not persist anything when a window holds no points", func() {
		point := &models.MetricPoint{
			CollectorId: "collector-1",
			Name:        "latency",
			Value:       12,
			Timestamp:   baseTime.UnixNano(),
			Type:        models.MetricTypeGauge,
		}
		Expect(store.Ingest(point)).To(Succeed())
		metricDB.RetrieveMetricsReturns(nil, nil)

		aggregator.Start()
		fclock.WaitForWatcherAndIncrement(interval)

		Consistently(metricDB.SaveAggregateCallCount).Should(Equal(0))
	})

	It("skips a window bucket that was already computed", func() {
		point := &models.MetricPoint{
			CollectorId: "collector-1",
			Name:        "latency",
			Value:       12,
			Timestamp:   baseTime.UnixNano(),
			Type:        models.MetricTypeGauge,
		}
		Expect(store.Ingest(point)).To(Succeed())
		metricDB.RetrieveMetricsReturns([]*models.MetricPoint{point}, nil)

		aggregator.Start()
		fclock.WaitForWatcherAndIncrement(interval)
		Eventually(metricDB.SaveAggregateCallCount).Should(BeNumerically(">=", 1))

		count := metricDB.SaveAggregateCallCount()
		fclock.WaitForWatcherAndIncrement(interval)
		Consistently(metricDB.SaveAggregateCallCount).Should(Equal(count))
	})
})
