package metricstore_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/fakes"
	"obsengine/metricstore"
	"obsengine/models"
)

var _ = Describe("Registry", func() {
	var (
		registry    *metricstore.Registry
		collectorDB *fakes.FakeCollectorDB
		fclock      *fakeclock.FakeClock
		logger      *lagertest.TestLogger
		baseTime    time.Time
	)

	const refreshInterval = 30 * time.Second

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("CollectorRegistry-test")
		baseTime = time.Unix(0, 0).Add(10 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		collectorDB = &fakes.FakeCollectorDB{}
		registry = metricstore.NewRegistry(logger, fclock, collectorDB, refreshInterval)
	})

	Describe("Register", func() {
		It("records the collector as healthy and persists it", func() {
			registry.Register("collector-1", time.Minute)
			c, exist := registry.GetCollector("collector-1")
			Expect(exist).To(BeTrue())
			Expect(c.Status).To(Equal(models.CollectorStatusHealthy))
			Expect(c.ExpectedIntervalSecs).To(Equal(60))
			Expect(c.LastSeen).To(Equal(baseTime.UnixNano()))
			Expect(collectorDB.UpsertCollectorCallCount()).To(Equal(1))
		})
	})

	Describe("Observe", func() {
		It("admits unknown collectors with no expected interval", func() {
			registry.Observe("drive-by", baseTime.UnixNano())
			c, exist := registry.GetCollector("drive-by")
			Expect(exist).To(BeTrue())
			Expect(c.ExpectedIntervalSecs).To(Equal(0))
			Expect(c.Status).To(Equal(models.CollectorStatusHealthy))
		})

		It("never moves LastSeen backwards", func() {
			registry.Register("collector-1", time.Minute)
			registry.Observe("collector-1", baseTime.Add(-time.Hour).UnixNano())
			c, _ := registry.GetCollector("collector-1")
			Expect(c.LastSeen).To(Equal(baseTime.UnixNano()))
		})

		It("recovers a degraded collector when points arrive again", func() {
			registry.Register("collector-1", time.Minute)
			fclock.Increment(2 * time.Minute)
			registry.Observe("collector-1", fclock.Now().UnixNano())
			c, _ := registry.GetCollector("collector-1")
			Expect(c.Status).To(Equal(models.CollectorStatusHealthy))
		})
	})

	Describe("status refresh", func() {
		BeforeEach(func() {
			registry.Register("collector-1", time.Minute)
			registry.Start()
		})

		AfterEach(func() {
			registry.Stop()
		})

		It("marks a collector degraded past one expected interval", func() {
			fclock.Increment(2 * time.Minute)
			fclock.WaitForWatcherAndIncrement(refreshInterval)
			Eventually(func() models.CollectorStatus {
				c, _ := registry.GetCollector("collector-1")
				return c.Status
			}).Should(Equal(models.CollectorStatusDegraded))
		})

		It("marks a collector silent past three expected intervals", func() {
			fclock.Increment(5 * time.Minute)
			fclock.WaitForWatcherAndIncrement(refreshInterval)
			Eventually(func() models.CollectorStatus {
				c, _ := registry.GetCollector("collector-1")
				return c.Status
			}).Should(Equal(models.CollectorStatusSilent))
		})
	})

	Describe("Start", func() {
		It("loads persisted collectors", func() {
			collectorDB.RetrieveCollectorsReturns([]*models.MetricCollector{
				{Id: "persisted", ExpectedIntervalSecs: 60, LastSeen: baseTime.UnixNano(), Status: models.CollectorStatusHealthy},
			}, nil)
			registry.Start()
			defer registry.Stop()

			c, exist := registry.GetCollector("persisted")
			Expect(exist).To(BeTrue())
			Expect(c.ExpectedIntervalSecs).To(Equal(60))
		})

		It("keeps running when loading fails", func() {
			collectorDB.RetrieveCollectorsReturns(nil, errors.New("table missing"))
			registry.Start()
			defer registry.Stop()

			registry.Register("collector-1", time.Minute)
			_, exist := registry.GetCollector("collector-1")
			Expect(exist).To(BeTrue())
		})
	})
})
