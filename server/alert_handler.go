package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/alertengine"
	"obsengine/db"
	"obsengine/models"
)

type AlertHandler struct {
	logger         lager.Logger
	engine         *alertengine.Engine
	alertDB        db.AlertDB
	notificationDB db.NotificationDB
}

func NewAlertHandler(logger lager.Logger, engine *alertengine.Engine, alertDB db.AlertDB, notificationDB db.NotificationDB) *AlertHandler {
	return &AlertHandler{
		logger:         logger,
		engine:         engine,
		alertDB:        alertDB,
		notificationDB: notificationDB,
	}
}

func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	states := []models.AlertState{}
	for _, stateParam := range r.URL.Query()["state"] {
		state := models.AlertState(stateParam)
		switch state {
		case models.AlertStatePending, models.AlertStateFiring, models.AlertStateAcknowledged, models.AlertStateResolved:
			states = append(states, state)
		default:
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect state parameter in query string"})
			return
		}
	}
	start, end, _, ok := parseTimeRange(h.logger, w, r)
	if !ok {
		return
	}
	if end < 0 {
		end = int64(^uint64(0) >> 1)
	}

	events, err := h.alertDB.RetrieveAlertEvents(states, start, end)
	if err != nil {
		h.logger.Error("list-alerts", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error listing alerts from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, events)
}

type alertActionRequest struct {
	Actor string `json:"actor"`
}

func (h *AlertHandler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	h.applyAction(w, r, vars["fingerprint"], h.engine.Acknowledge)
}

func (h *AlertHandler) ResolveAlert(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	h.applyAction(w, r, vars["fingerprint"], h.engine.ForceResolve)
}

func (h *AlertHandler) applyAction(w http.ResponseWriter, r *http.Request, fingerprint string, action func(string, string) error) {
	request := alertActionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Actor == "" {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Request body requires actor"})
		return
	}

	err := action(fingerprint, request.Actor)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			handlers.WriteJSONResponse(w, http.StatusConflict, models.ErrorResponse{
				Code:    "Conflict",
				Message: validationErr.Reason})
			return
		}
		h.logger.Error("alert-action", err, lager.Data{"fingerprint": fingerprint})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error applying alert action"})
		return
	}

	event, err := h.alertDB.GetAlertEvent(fingerprint)
	if err != nil || event == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, event)
}

func (h *AlertHandler) GetAlertNotifications(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	logs, err := h.notificationDB.RetrieveNotificationLogs(vars["fingerprint"])
	if err != nil {
		h.logger.Error("get-alert-notifications", err, lager.Data{"fingerprint": vars["fingerprint"]})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting notification logs from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, logs)
}
