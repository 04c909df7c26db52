package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/fakes"
	"obsengine/metricstore"
	"obsengine/models"
	"obsengine/server"
)

var _ = Describe("MetricHandler", func() {
	var (
		handler     *server.MetricHandler
		store       *metricstore.Store
		registry    *metricstore.Registry
		metricDB    *fakes.FakeMetricDB
		collectorDB *fakes.FakeCollectorDB
		fclock      *fakeclock.FakeClock
		logger      *lagertest.TestLogger
		resp        *httptest.ResponseRecorder
		req         *http.Request
		baseTime    time.Time
	)

	newPoint := func(name string, value float64, ts int64) *models.MetricPoint {
		return &models.MetricPoint{
			CollectorId: "collector-1",
			Name:        name,
			Value:       value,
			Labels:      map[string]string{"service": "api"},
			Timestamp:   ts,
			Type:        models.MetricTypeGauge,
		}
	}

	errorResponse := func() models.ErrorResponse {
		errResponse := models.ErrorResponse{}
		err := json.NewDecoder(resp.Body).Decode(&errResponse)
		Expect(err).NotTo(HaveOccurred())
		return errResponse
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("metric-handler-test")
		baseTime = time.Unix(0, 0).Add(100 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		metricDB = &fakes.FakeMetricDB{}
		collectorDB = &fakes.FakeCollectorDB{}
		registry = metricstore.NewRegistry(logger, fclock, collectorDB, time.Minute)
		store = metricstore.NewStore(logger, fclock, metricDB, registry, 10, 0, time.Hour)
		handler = server.NewMetricHandler(logger, store, registry)
		resp = httptest.NewRecorder()
	})

	Describe("IngestMetrics", func() {
		var results []server.PointResult

		ingest := func(body string) {
			req = httptest.NewRequest(http.MethodPost, "/v1/metrics", bytes.NewBufferString(body))
			handler.IngestMetrics(resp, req, map[string]string{})
		}

		decodeResults := func() {
			results = []server.PointResult{}
			err := json.NewDecoder(resp.Body).Decode(&results)
			Expect(err).NotTo(HaveOccurred())
		}

		Context("when all points are valid", func() {
			It("accepts the batch and writes every point through", func() {
				points := []*models.MetricPoint{
					newPoint("throughput", 100, baseTime.UnixNano()),
					newPoint("responsetime", 250, baseTime.UnixNano()),
				}
				body, err := json.Marshal(points)
				Expect(err).NotTo(HaveOccurred())

				ingest(string(body))
				Expect(resp.Code).To(Equal(http.StatusOK))
				decodeResults()
				Expect(results).To(HaveLen(2))
				Expect(results[0].Status).To(Equal("accepted"))
				Expect(results[1].Status).To(Equal("accepted"))
				Expect(metricDB.SaveMetricsInBulkCallCount()).To(Equal(1))
				Expect(metricDB.SaveMetricsInBulkArgsForCall(0)).To(HaveLen(2))
			})

			It("refreshes collector liveness", func() {
				points := []*models.MetricPoint{newPoint("throughput", 100, baseTime.UnixNano())}
				body, err := json.Marshal(points)
				Expect(err).NotTo(HaveOccurred())

				ingest(string(body))
				collector, exist := registry.GetCollector("collector-1")
				Expect(exist).To(BeTrue())
				Expect(collector.LastSeen).To(Equal(baseTime.UnixNano()))
			})
		})

		Context("when some points are invalid", func() {
			It("rejects them individually and accepts the rest", func() {
				bad := newPoint("", 100, baseTime.UnixNano())
				points := []*models.MetricPoint{newPoint("throughput", 100, baseTime.UnixNano()), bad}
				body, err := json.Marshal(points)
				Expect(err).NotTo(HaveOccurred())

				ingest(string(body))
				Expect(resp.Code).To(Equal(http.StatusOK))
				decodeResults()
				Expect(results[0].Status).To(Equal("accepted"))
				Expect(results[1].Status).To(Equal("rejected"))
				Expect(results[1].Error).To(ContainSubstring("validation failed on name"))
				saved := metricDB.SaveMetricsInBulkArgsForCall(0)
				Expect(saved).To(HaveLen(1))
				Expect(saved[0].Name).To(Equal("throughput"))
			})
		})

		Context("when the store is unavailable", func() {
			It("marks the points failed and responds bad request", func() {
				metricDB.SaveMetricsInBulkReturns(errors.New("connection refused"))
				points := []*models.MetricPoint{newPoint("throughput", 100, baseTime.UnixNano())}
				body, err := json.Marshal(points)
				Expect(err).NotTo(HaveOccurred())

				ingest(string(body))
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				decodeResults()
				Expect(results[0].Status).To(Equal("failed"))
			})
		})

		Context("when the body is not a metric point array", func() {
			It("responds bad request", func() {
				ingest(`{"not":"an array"}`)
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Bad-Request",
					Message: "Incorrect metric points in request body"}))
			})
		})

		Context("when the body is an empty array", func() {
			It("responds bad request", func() {
				ingest(`[]`)
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Bad-Request",
					Message: "Empty metric points in request body"}))
			})
		})
	})

	Describe("GetMetricHistory", func() {
		var points []*models.MetricPoint

		history := func(query string) {
			req = httptest.NewRequest(http.MethodGet, "/v1/metrics/throughput/histories"+query, nil)
			handler.GetMetricHistory(resp, req, map[string]string{"metricname": "throughput"})
		}

		BeforeEach(func() {
			points = []*models.MetricPoint{
				newPoint("throughput", 100, baseTime.UnixNano()),
				newPoint("throughput", 200, baseTime.Add(time.Minute).UnixNano()),
			}
			metricDB.RetrieveMetricsReturns(points, nil)
		})

		It("returns the points in ascending order by default", func() {
			history("")
			Expect(resp.Code).To(Equal(http.StatusOK))
			result := []*models.MetricPoint{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(points))
		})

		It("reverses the points when descending order is requested", func() {
			history("?order=desc")
			Expect(resp.Code).To(Equal(http.StatusOK))
			result := []*models.MetricPoint{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal([]*models.MetricPoint{points[1], points[0]}))
		})

		It("passes the time range and matchers to the store", func() {
			history(fmt.Sprintf("?start=%d&end=%d&label=service=api&label=zone=~us-.*", 100, 200))
			Expect(resp.Code).To(Equal(http.StatusOK))
			name, matchers, start, end, _ := metricDB.RetrieveMetricsArgsForCall(0)
			Expect(name).To(Equal("throughput"))
			Expect(start).To(Equal(int64(100)))
			Expect(end).To(Equal(int64(200)))
			Expect(matchers).To(Equal([]models.LabelMatcher{
				{Name: "service", Value: "api"},
				{Name: "zone", Value: "us-.*", IsRegex: true},
			}))
		})

		It("rejects an unparsable start time", func() {
			history("?start=abc")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Error parsing start time"}))
		})

		It("rejects a duplicated start parameter", func() {
			history("?start=1&start=2")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect start parameter in query string"}))
		})

		It("rejects an unparsable end time", func() {
			history("?end=xyz")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Error parsing end time"}))
		})

		It("rejects an unknown order", func() {
			history("?order=sideways")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect order parameter in query string"}))
		})

		It("rejects a malformed label parameter", func() {
			history("?label=serviceapi")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "incorrect label parameter in query string"}))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				metricDB.RetrieveMetricsReturns(nil, errors.New("connection refused"))
				history("")
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error getting metric history from database"}))
			})
		})
	})

	Describe("GetAggregatedMetrics", func() {
		aggregated := func(query string) {
			req = httptest.NewRequest(http.MethodGet, "/v1/metrics/throughput/aggregated"+query, nil)
			handler.GetAggregatedMetrics(resp, req, map[string]string{"metricname": "throughput"})
		}

		It("serves pre-computed aggregates for an aligned supported window", func() {
			window := time.Minute.Nanoseconds()
			aggregates := []*models.AggregatedMetric{
				{Name: "throughput", Labels: map[string]string{"service": "api"}, WindowStart: 0, WindowSecs: 60, Count: 4, Sum: 400},
			}
			metricDB.RetrieveAggregatesReturns(aggregates, nil)

			aggregated(fmt.Sprintf("?window=60&start=0&end=%d", 2*window))
			Expect(resp.Code).To(Equal(http.StatusOK))
			result := []*models.AggregatedMetric{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(aggregates))
		})

		It("rejects a missing window", func() {
			aggregated("")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Unsupported aggregation window"}))
		})

		It("rejects an unsupported window", func() {
			aggregated("?window=61")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Unsupported aggregation window"}))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				metricDB.RetrieveMetricsReturns(nil, errors.New("connection refused"))
				aggregated("?window=60&start=1&end=100")
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error getting aggregated metrics from database"}))
			})
		})
	})

	Describe("ListCollectors", func() {
		It("returns the registered collectors", func() {
			registry.Register("collector-1", 30*time.Second)
			registry.Register("collector-2", time.Minute)

			req = httptest.NewRequest(http.MethodGet, "/v1/collectors", nil)
			handler.ListCollectors(resp, req, map[string]string{})
			Expect(resp.Code).To(Equal(http.StatusOK))
			result := []*models.MetricCollector{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})
	})

	Describe("RegisterCollector", func() {
		register := func(body string) {
			req = httptest.NewRequest(http.MethodPost, "/v1/collectors", bytes.NewBufferString(body))
			handler.RegisterCollector(resp, req, map[string]string{})
		}

		It("registers the collector with its expected interval", func() {
			register(`{"id":"collector-9","interval_secs":45}`)
			Expect(resp.Code).To(Equal(http.StatusCreated))
			collector, exist := registry.GetCollector("collector-9")
			Expect(exist).To(BeTrue())
			Expect(collector.ExpectedIntervalSecs).To(Equal(45))
		})

		It("rejects a registration without an id", func() {
			register(`{"interval_secs":45}`)
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect collector registration in request body"}))
		})

		It("rejects a non-positive interval", func() {
			register(`{"id":"collector-9","interval_secs":0}`)
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect collector registration in request body"}))
		})
	})
})
