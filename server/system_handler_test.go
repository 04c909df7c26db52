package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/auditlog"
	"obsengine/capacity"
	"obsengine/fakes"
	"obsengine/models"
	"obsengine/server"
)

var _ = Describe("SystemHandler", func() {
	const planInterval = 10 * time.Minute

	var (
		handler  *server.SystemHandler
		planner  *capacity.Planner
		auditDB  *fakes.FakeAuditDB
		fclock   *fakeclock.FakeClock
		logger   *lagertest.TestLogger
		resp     *httptest.ResponseRecorder
		req      *http.Request
		baseTime time.Time
	)

	query := func(name string, matchers []models.LabelMatcher, start int64, end int64) ([]*models.MetricPoint, error) {
		points := []*models.MetricPoint{}
		origin := fclock.Now().Add(-10 * time.Minute)
		for i := 0; i <= 10; i++ {
			ts := origin.Add(time.Duration(i) * time.Minute)
			points = append(points, &models.MetricPoint{
				CollectorId: "node-exporter",
				Name:        name,
				Value:       50 + float64(i),
				Timestamp:   ts.UnixNano(),
				Type:        models.MetricTypeGauge,
			})
		}
		return points, nil
	}

	ingest := func(point *models.MetricPoint) error { return nil }

	errorResponse := func() models.ErrorResponse {
		errResponse := models.ErrorResponse{}
		err := json.NewDecoder(resp.Body).Decode(&errResponse)
		Expect(err).NotTo(HaveOccurred())
		return errResponse
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("system-handler-test")
		baseTime = time.Unix(0, 0).Add(100 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		auditDB = &fakes.FakeAuditDB{}
		audit := auditlog.NewStore(logger, fclock, auditDB)
		resources := []capacity.Resource{{Name: "disk", Metric: "disk.used_percent", Capacity: 100}}
		planner = capacity.NewPlanner(logger, fclock, planInterval, time.Hour, resources, query, ingest)
		handler = server.NewSystemHandler(logger, planner, audit)
		resp = httptest.NewRecorder()
	})

	Describe("ListForecasts", func() {
		list := func(query string) {
			req = httptest.NewRequest(http.MethodGet, "/v1/forecasts"+query, nil)
			handler.ListForecasts(resp, req, map[string]string{})
		}

		It("returns an empty list before the first planning cycle", func() {
			list("")
			Expect(resp.Code).To(Equal(http.StatusOK))
			result := []*models.CapacityForecast{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeEmpty())
		})

		It("responds not found for a resource with no forecast", func() {
			list("?resource=memory")
			Expect(resp.Code).To(Equal(http.StatusNotFound))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Not-Found",
				Message: "No forecast for resource"}))
		})

		Context("after a planning cycle", func() {
			BeforeEach(func() {
				planner.Start()
				fclock.WaitForWatcherAndIncrement(planInterval)
				Eventually(func() *models.CapacityForecast {
					return planner.GetForecast("disk")
				}).ShouldNot(BeNil())
			})

			AfterEach(func() {
				planner.Stop()
			})

			It("returns every fitted forecast", func() {
				list("")
				Expect(resp.Code).To(Equal(http.StatusOK))
				result := []*models.CapacityForecast{}
				err := json.NewDecoder(resp.Body).Decode(&result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(HaveLen(1))
				Expect(result[0].Resource).To(Equal("disk"))
			})

			It("returns the forecast for one resource", func() {
				list("?resource=disk")
				Expect(resp.Code).To(Equal(http.StatusOK))
				result := models.CapacityForecast{}
				err := json.NewDecoder(resp.Body).Decode(&result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Resource).To(Equal("disk"))
				Expect(result.Model).To(Equal(models.TrendModelLinear))
			})
		})
	})

	Describe("GetAuditEntries", func() {
		entries := func(query string) {
			req = httptest.NewRequest(http.MethodGet, "/v1/audit"+query, nil)
			handler.GetAuditEntries(resp, req, map[string]string{})
		}

		It("returns the audit trail filtered by object type", func() {
			stored := []*models.AuditEntry{
				{Id: "entry-1", Kind: models.AuditKindChange, Actor: "alice", Action: "update-rule", ObjectType: "alert-rule"},
			}
			auditDB.RetrieveEntriesReturns(stored, nil)

			entries("?object_type=alert-rule&start=100&end=200")
			Expect(resp.Code).To(Equal(http.StatusOK))
			objectType, start, end := auditDB.RetrieveEntriesArgsForCall(0)
			Expect(objectType).To(Equal("alert-rule"))
			Expect(start).To(Equal(int64(100)))
			Expect(end).To(Equal(int64(200)))

			result := []*models.AuditEntry{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(stored))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				auditDB.RetrieveEntriesReturns(nil, errors.New("connection refused"))
				entries("")
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error getting audit entries from database"}))
			})
		})
	})

	Describe("GetHealth", func() {
		It("reports OK", func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
			handler.GetHealth(resp, req, map[string]string{})
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`{"status":"OK"}`))
		})
	})
})
