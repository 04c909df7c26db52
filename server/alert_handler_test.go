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

	"obsengine/alertengine"
	"obsengine/fakes"
	"obsengine/models"
	"obsengine/server"
)

var _ = Describe("AlertHandler", func() {
	var (
		handler        *server.AlertHandler
		engine         *alertengine.Engine
		alertDB        *fakes.FakeAlertDB
		notificationDB *fakes.FakeNotificationDB
		fclock         *fakeclock.FakeClock
		logger         *lagertest.TestLogger
		resp           *httptest.ResponseRecorder
		req            *http.Request
		baseTime       time.Time
	)

	firingEvent := func() *models.AlertEvent {
		return &models.AlertEvent{
			Fingerprint:    "fp-1",
			RuleId:         "rule-cpu",
			RuleName:       "high cpu",
			State:          models.AlertStateFiring,
			Severity:       models.SeverityCritical,
			FirstTriggered: baseTime.UnixNano(),
			Version:        2,
		}
	}

	errorResponse := func() models.ErrorResponse {
		errResponse := models.ErrorResponse{}
		err := json.NewDecoder(resp.Body).Decode(&errResponse)
		Expect(err).NotTo(HaveOccurred())
		return errResponse
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("alert-handler-test")
		baseTime = time.Unix(0, 0).Add(100 * time.Hour)
		fclock = fakeclock.NewFakeClock(baseTime)
		alertDB = &fakes.FakeAlertDB{}
		notificationDB = &fakes.FakeNotificationDB{}
		engine = alertengine.NewEngine(logger, fclock, time.Minute, 30*time.Second, 1, 10, alertDB, nil, nil)
		handler = server.NewAlertHandler(logger, engine, alertDB, notificationDB)
		resp = httptest.NewRecorder()
	})

	Describe("ListAlerts", func() {
		list := func(query string) {
			req = httptest.NewRequest(http.MethodGet, "/v1/alerts"+query, nil)
			handler.ListAlerts(resp, req, map[string]string{})
		}

		It("returns the stored alert events over the open range", func() {
			events := []*models.AlertEvent{firingEvent()}
			alertDB.RetrieveAlertEventsReturns(events, nil)

			list("")
			Expect(resp.Code).To(Equal(http.StatusOK))
			states, start, end := alertDB.RetrieveAlertEventsArgsForCall(0)
			Expect(states).To(BeEmpty())
			Expect(start).To(Equal(int64(0)))
			Expect(end).To(Equal(int64(math.MaxInt64)))

			result := []*models.AlertEvent{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(events))
		})

		It("filters by the requested states", func() {
			list("?state=firing&state=acknowledged")
			states, _, _ := alertDB.RetrieveAlertEventsArgsForCall(0)
			Expect(states).To(Equal([]models.AlertState{models.AlertStateFiring, models.AlertStateAcknowledged}))
		})

		It("rejects an unknown state", func() {
			list("?state=smoldering")
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect state parameter in query string"}))
			Expect(alertDB.RetrieveAlertEventsCallCount()).To(BeZero())
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				alertDB.RetrieveAlertEventsReturns(nil, errors.New("connection refused"))
				list("")
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error listing alerts from database"}))
			})
		})
	})

	Describe("AcknowledgeAlert", func() {
		acknowledge := func(body string) {
			req = httptest.NewRequest(http.MethodPost, "/v1/alerts/fp-1/ack", bytes.NewBufferString(body))
			handler.AcknowledgeAlert(resp, req, map[string]string{"fingerprint": "fp-1"})
		}

		Context("when the alert is firing", func() {
			BeforeEach(func() {
				alertDB.GetAlertEventReturns(firingEvent(), nil)
				alertDB.UpdateAlertEventReturns(true, nil)
			})

			It("parks the alert and returns the updated event", func() {
				acknowledge(`{"actor":"alice"}`)
				Expect(resp.Code).To(Equal(http.StatusOK))

				updated := alertDB.UpdateAlertEventArgsForCall(0)
				Expect(updated.State).To(Equal(models.AlertStateAcknowledged))
				Expect(updated.AckActor).To(Equal("alice"))
				Expect(updated.AckAt).To(Equal(baseTime.UnixNano()))
			})
		})

		It("rejects a request without an actor", func() {
			acknowledge(`{}`)
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Request body requires actor"}))
		})

		It("responds conflict when the alert is not firing", func() {
			event := firingEvent()
			event.State = models.AlertStatePending
			alertDB.GetAlertEventReturns(event, nil)

			acknowledge(`{"actor":"alice"}`)
			Expect(resp.Code).To(Equal(http.StatusConflict))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Conflict",
				Message: "alert is not firing"}))
		})

		It("responds conflict for an unknown fingerprint", func() {
			acknowledge(`{"actor":"alice"}`)
			Expect(resp.Code).To(Equal(http.StatusConflict))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				alertDB.GetAlertEventReturns(nil, errors.New("connection refused"))
				acknowledge(`{"actor":"alice"}`)
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error applying alert action"}))
			})
		})
	})

	Describe("ResolveAlert", func() {
		resolve := func(body string) {
			req = httptest.NewRequest(http.MethodPost, "/v1/alerts/fp-1/resolve", bytes.NewBufferString(body))
			handler.ResolveAlert(resp, req, map[string]string{"fingerprint": "fp-1"})
		}

		It("resolves an active alert", func() {
			alertDB.GetAlertEventReturns(firingEvent(), nil)
			alertDB.UpdateAlertEventReturns(true, nil)

			resolve(`{"actor":"bob"}`)
			Expect(resp.Code).To(Equal(http.StatusOK))

			updated := alertDB.UpdateAlertEventArgsForCall(0)
			Expect(updated.State).To(Equal(models.AlertStateResolved))
			Expect(updated.ResolvedAt).To(Equal(baseTime.UnixNano()))
		})

		It("responds conflict when the alert is already resolved", func() {
			event := firingEvent()
			event.State = models.AlertStateResolved
			alertDB.GetAlertEventReturns(event, nil)

			resolve(`{"actor":"bob"}`)
			Expect(resp.Code).To(Equal(http.StatusConflict))
			Expect(errorResponse()).To(Equal(models.ErrorResponse{
				Code:    "Conflict",
				Message: "alert is not active"}))
		})
	})

	Describe("GetAlertNotifications", func() {
		notifications := func() {
			req = httptest.NewRequest(http.MethodGet, "/v1/alerts/fp-1/notifications", nil)
			handler.GetAlertNotifications(resp, req, map[string]string{"fingerprint": "fp-1"})
		}

		It("returns the delivery log for the alert", func() {
			logs := []*models.NotificationLog{
				{Fingerprint: "fp-1", Channel: "pager", Status: models.DeliveryStatusSent},
			}
			notificationDB.RetrieveNotificationLogsReturns(logs, nil)

			notifications()
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(notificationDB.RetrieveNotificationLogsArgsForCall(0)).To(Equal("fp-1"))
			result := []*models.NotificationLog{}
			err := json.NewDecoder(resp.Body).Decode(&result)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(logs))
		})

		Context("when the store fails", func() {
			It("responds internal server error", func() {
				notificationDB.RetrieveNotificationLogsReturns(nil, errors.New("connection refused"))
				notifications()
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(errorResponse()).To(Equal(models.ErrorResponse{
					Code:    "Interal-Server-Error",
					Message: "Error getting notification logs from database"}))
			})
		})
	})
})
