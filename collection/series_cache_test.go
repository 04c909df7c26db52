package collection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/collection"
	"obsengine/models"
)

func point(ts int64) *models.MetricPoint {
	return &models.MetricPoint{Name: "throughput", Timestamp: ts}
}

func labeledPoint(ts int64, labels map[string]string) *models.MetricPoint {
	return &models.MetricPoint{Name: "throughput", Timestamp: ts, Labels: labels}
}

func timestamps(points []*models.MetricPoint) []int64 {
	result := make([]int64, 0, len(points))
	for _, p := range points {
		result = append(result, p.Timestamp)
	}
	return result
}

var _ = Describe("SeriesCache", func() {
	var cache *collection.SeriesCache

	BeforeEach(func() {
		cache = collection.NewSeriesCache(5)
	})

	Describe("NewSeriesCache", func() {
		It("panics on a non-positive capacity", func() {
			Expect(func() { collection.NewSeriesCache(0) }).To(Panic())
		})
	})

	Describe("Put and Query", func() {
		It("returns points within the half-open range in timestamp order", func() {
			cache.Put(point(10))
			cache.Put(point(20))
			cache.Put(point(30))

			points, covered := cache.Query(10, 30, nil)
			Expect(covered).To(BeTrue())
			Expect(timestamps(points)).To(Equal([]int64{10, 20}))
		})

		It("sorts an out-of-order point into place", func() {
			cache.Put(point(10))
			cache.Put(point(30))
			cache.Put(point(40))
			cache.Put(point(20))

			points, covered := cache.Query(10, 50, nil)
			Expect(covered).To(BeTrue())
			Expect(timestamps(points)).To(Equal([]int64{10, 20, 30, 40}))
		})

		It("filters by labels", func() {
			cache.Put(labeledPoint(10, map[string]string{"zone": "us-east"}))
			cache.Put(labeledPoint(20, map[string]string{"zone": "us-west"}))

			points, _ := cache.Query(10, 30, map[string]string{"zone": "us-west"})
			Expect(timestamps(points)).To(Equal([]int64{20}))
		})

		It("reports no coverage when empty", func() {
			points, covered := cache.Query(0, 100, nil)
			Expect(points).To(BeEmpty())
			Expect(covered).To(BeFalse())
		})

		It("reports no coverage when the range starts before the retained points", func() {
			cache.Put(point(50))
			_, covered := cache.Query(10, 60, nil)
			Expect(covered).To(BeFalse())
		})

		Context("when the ring is full", func() {
			BeforeEach(func() {
				cache = collection.NewSeriesCache(3)
				cache.Put(point(10))
				cache.Put(point(20))
				cache.Put(point(30))
			})

			It("evicts the oldest point", func() {
				cache.Put(point(40))

				points, covered := cache.Query(20, 41, nil)
				Expect(covered).To(BeTrue())
				Expect(timestamps(points)).To(Equal([]int64{20, 30, 40}))

				_, covered = cache.Query(10, 41, nil)
				Expect(covered).To(BeFalse())
			})

			It("discards a point older than everything retained", func() {
				cache.Put(point(1))

				points, covered := cache.Query(1, 31, nil)
				Expect(timestamps(points)).To(Equal([]int64{10, 20, 30}))
				Expect(covered).To(BeFalse())
			})
		})
	})
})
