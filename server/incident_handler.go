package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/incident"
	"obsengine/models"
)

type IncidentHandler struct {
	logger     lager.Logger
	manager    *incident.Manager
	incidentDB db.IncidentDB
}

func NewIncidentHandler(logger lager.Logger, manager *incident.Manager, incidentDB db.IncidentDB) *IncidentHandler {
	return &IncidentHandler{
		logger:     logger,
		manager:    manager,
		incidentDB: incidentDB,
	}
}

func (h *IncidentHandler) ListIncidents(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	states := []models.IncidentState{}
	for _, stateParam := range r.URL.Query()["state"] {
		states = append(states, models.IncidentState(stateParam))
	}
	serviceName := r.URL.Query().Get("service")
	start, end, _, ok := parseTimeRange(h.logger, w, r)
	if !ok {
		return
	}
	if end < 0 {
		end = int64(^uint64(0) >> 1)
	}

	incidents, err := h.incidentDB.RetrieveIncidents(states, serviceName, start, end)
	if err != nil {
		h.logger.Error("list-incidents", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error listing incidents from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, incidents)
}

func (h *IncidentHandler) GetIncident(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	found, err := h.incidentDB.GetIncident(vars["incidentid"])
	if err != nil {
		h.logger.Error("get-incident", err, lager.Data{"incidentid": vars["incidentid"]})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting incident from database"})
		return
	}
	if found == nil {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: "Incident not found"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, found)
}

type incidentStateRequest struct {
	State         models.IncidentState `json:"state"`
	Actor         string               `json:"actor"`
	Owner         string               `json:"owner,omitempty"`
	PostmortemRef string               `json:"postmortem_ref,omitempty"`
}

// TransitionIncident moves the incident to the requested state; owner and
// postmortem annotations piggyback on the same request when present.
func (h *IncidentHandler) TransitionIncident(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	incidentId := vars["incidentid"]
	request := incidentStateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Actor == "" {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Request body requires state and actor"})
		return
	}

	if request.Owner != "" {
		if _, err := h.manager.AssignOwner(incidentId, request.Owner, request.Actor); err != nil {
			h.writeManagerError(w, err, incidentId)
			return
		}
	}
	if request.PostmortemRef != "" {
		if _, err := h.manager.SetPostmortem(incidentId, request.PostmortemRef, request.Actor); err != nil {
			h.writeManagerError(w, err, incidentId)
			return
		}
	}

	updated, err := h.manager.Transition(incidentId, request.State, request.Actor)
	if err != nil {
		h.writeManagerError(w, err, incidentId)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, updated)
}

func (h *IncidentHandler) writeManagerError(w http.ResponseWriter, err error, incidentId string) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		status := http.StatusConflict
		if validationErr.Field == "incident_id" {
			status = http.StatusNotFound
		}
		handlers.WriteJSONResponse(w, status, models.ErrorResponse{
			Code:    http.StatusText(status),
			Message: validationErr.Reason})
		return
	}
	h.logger.Error("incident-action", err, lager.Data{"incidentid": incidentId})
	handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "Interal-Server-Error",
		Message: "Error applying incident action"})
}
