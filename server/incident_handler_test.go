package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/auditlog"
	"obsengine/fakes"
	"obsengine/incident"
	"obsengine/models"
	"obsengine/server"
)

var _ = Describe("IncidentHandler", func() {
	var (
		handler    *server.IncidentHandler
		manager    *incident.Manager
		incidentDB *fakes.FakeIncidentDB
		auditDB    *fakes.FakeAuditDB
		fclock     *fakeclock.FakeClock
		logger     *lagertest.TestLogger
		resp       *httptest.ResponseRecorder
		req        *http.Request
		baseTime   time.Time
	)

	openIncident := func() *models.Incident {
		return &models.Incident{
			Id:                "incident-1",
			ServiceName:       "checkout",
			AlertFingerprints: []string{"fp-1"},
			State:             models.IncidentStateDetected,
			Severity:          models.SeverityCritical,
			OpenedAt:          baseTime.Add(-time.Hour).UnixNano(),
			Version:           1,
		}
	}

	errorResponse := func() models.ErrorResponse {
		errResponse := models.ErrorResponse{}
		err := json.NewDecoder(resp.Body).Decode(&errResponse)
		Expect(err).NotTo(HaveOccurred())
		return errResponse
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("incident-handler-test")
		baseTime = time.Unix(0, 0).Add(100 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		incidentDB = &fakes.FakeIncidentDB{}
		auditDB = &fakes.FakeAuditDB{}
		audit := auditlog.NewStore(logger, fclock, auditDB)
		manager = incident.NewManager(logger, fclock, incidentDB, &fakes.FakeAlertDB{}, audit, time.Minute, 10*time.Minute)
		handler = server.NewIncidentHandler(logger, manager, incidentDB)
		resp = httptest.NewRecorder()
	})

	Describe("ListIncidents", func() {
		list := func(query string) {
			req = httptest.NewRequest(http.MethodGet, "/v1/incidents"+query, nil)
			handler.ListIncidents(resp, req, map[string]string{})
		}

		It("returns the stored incidents over the open range", func() {
			incidents := []*models.Incident{openIncident()}
			incidentDB.RetrieveIncidentsReturns(incidents, nil)

			list("")
			Expect(resp.Code).To(Equal(http.StatusOK))
			states, service, start, end := incidentDB.RetrieveIncidentsArgsForCall(0)
			Expect(states).To(BeEmpty())
			Expect(service).To(BeEmpty())
			Expect(start).To(Equal(int64(0)))
			Expect(end).To(Equal(int64(math.MaxInt64)))

			result := []*models.Incident{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(incidents))
		})

		It("filters by state and service", func() {
			list("?state=detected&state=investigating&service=checkout")
			states, service, _, _ := incidentDB.RetrieveIncidentsArgsForCall(0)
			Expect(states).To(Equal([]models.IncidentState{models.IncidentStateDetected, models.IncidentStateInvestigating}))
			Expect(service).To(Equal("checkout"))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				incidentDB.RetrieveIncidentsReturns(nil, errors.New("connection refused"))
				list("")
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error listing incidents from database"}))
			})
		})
	})

	Describe("GetIncident", func() {
		get := func() {
			req = httptest.NewRequest(http.MethodGet, "/v1/incidents/incident-1", nil)
			handler.GetIncident(resp, req, map[string]string{"incidentid": "incident-1"})
		}

		It("returns the incident", func() {
			incidentDB.GetIncidentReturns(openIncident(), nil)
			get()
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(incidentDB.GetIncidentArgsForCall(0)).To(Equal("incident-1"))
		})

		It("responds not found for an unknown incident", func() {
			get()
			Expect(resp.Code).To(Equal(http.StatusNotFound))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Not-Found",
				Message: "Incident not found"}))
		})
	})

	Describe("TransitionIncident", func() {
		transition := func(body string) {
			req = httptest.NewRequest(http.MethodPost, "/v1/incidents/incident-1/state", bytes.NewBufferString(body))
			handler.TransitionIncident(resp, req, map[string]string{"incidentid": "incident-1"})
		}

		Context("when the transition is allowed", func() {
			BeforeEach(func() {
				incidentDB.GetIncidentReturns(openIncident(), nil)
				incidentDB.UpdateIncidentReturns(true, nil)
			})

			It("moves the incident and returns the new state", func() {
				transition(`{"state":"investigating","actor":"alice"}`)
				Expect(resp.Code).To(Equal(http.StatusOK))

				result := models.Incident{}
				err := json.NewDecoder(resp.Body).Decode(&result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.State).To(Equal(models.IncidentStateInvestigating))

				Expect(auditDB.SaveEntryCallCount()).To(Equal(1))
				Expect(auditDB.SaveEntryArgsForCall(0).Action).To(Equal("transition-incident"))
			})

			It("assigns an owner riding on the same request", func() {
				transition(`{"state":"investigating","actor":"alice","owner":"bob"}`)
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(incidentDB.UpdateIncidentArgsForCall(0).Owner).To(Equal("bob"))
			})

			It("links a postmortem riding on the same request", func() {
				transition(`{"state":"investigating","actor":"alice","postmortem_ref":"https://wiki/pm-42"}`)
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(incidentDB.UpdateIncidentArgsForCall(0).PostmortemRef).To(Equal("https://wiki/pm-42"))
			})
		})

		It("rejects a request without an actor", func() {
			transition(`{"state":"investigating"}`)
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Request body requires state and actor"}))
		})

		It("responds conflict for a transition the state machine forbids", func() {
			incidentDB.GetIncidentReturns(openIncident(), nil)
			transition(`{"state":"closed","actor":"alice"}`)
			Expect(resp.Code).To(Equal(http.StatusConflict))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Conflict",
				Message: "detected cannot transition to closed"}))
		})

		It("responds not found for an unknown incident", func() {
			transition(`{"state":"investigating","actor":"alice"}`)
			Expect(resp.Code).To(Equal(http.StatusNotFound))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Not Found",
				Message: "incident not found"}))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				incidentDB.GetIncidentReturns(nil, errors.New("connection refused"))
				transition(`{"state":"investigating","actor":"alice"}`)
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error applying incident action"}))
			})
		})
	})
})
