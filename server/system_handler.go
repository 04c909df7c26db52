package server

import (
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/auditlog"
	"obsengine/capacity"
	"obsengine/models"
)

type SystemHandler struct {
	logger  lager.Logger
	planner *capacity.Planner
	audit   *auditlog.Store
}

func NewSystemHandler(logger lager.Logger, planner *capacity.Planner, audit *auditlog.Store) *SystemHandler {
	return &SystemHandler{
		logger:  logger,
		planner: planner,
		audit:   audit,
	}
}

func (h *SystemHandler) ListForecasts(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	if resource := r.URL.Query().Get("resource"); resource != "" {
		forecast := h.planner.GetForecast(resource)
		if forecast == nil {
			handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "Not-Found",
				Message: "No forecast for resource"})
			return
		}
		handlers.WriteJSONResponse(w, http.StatusOK, forecast)
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, h.planner.GetForecasts())
}

func (h *SystemHandler) GetAuditEntries(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	objectType := r.URL.Query().Get("object_type")
	start, end, _, ok := parseTimeRange(h.logger, w, r)
	if !ok {
		return
	}
	if end < 0 {
		end = int64(^uint64(0) >> 1)
	}

	entries, err := h.audit.Query(objectType, start, end)
	if err != nil {
		h.logger.Error("get-audit-entries", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting audit entries from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, entries)
}

func (h *SystemHandler) GetHealth(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	handlers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "OK"})
}
