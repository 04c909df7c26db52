package server

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/helpers"
	"obsengine/models"
)

type SLOHandler struct {
	logger lager.Logger
	slodb  db.SLODB
}

func NewSLOHandler(logger lager.Logger, slodb db.SLODB) *SLOHandler {
	return &SLOHandler{
		logger: logger,
		slodb:  slodb,
	}
}

func (h *SLOHandler) ListTargets(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	targets, err := h.slodb.RetrieveTargets()
	if err != nil {
		h.logger.Error("list-slo-targets", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error listing objectives from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, targets)
}

func (h *SLOHandler) CreateTarget(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	target := &models.SLOTarget{}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		h.logger.Error("decode-slo-target", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect objective in request body"})
		return
	}
	if target.ServiceName == "" || target.GoodMetric == "" || target.TotalMetric == "" {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Objective requires service_name, good_metric and total_metric"})
		return
	}
	if target.TargetRatio <= 0 || target.TargetRatio > 1 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Objective target_ratio must be in (0, 1]"})
		return
	}
	if target.WindowSecs <= 0 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Objective window_secs must be positive"})
		return
	}
	if target.Id == "" {
		id, err := helpers.GenerateGUID()
		if err != nil {
			h.logger.Error("create-slo-target-guid", err)
			handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
				Code:    "Interal-Server-Error",
				Message: "Error generating objective id"})
			return
		}
		target.Id = id
	}

	if err := h.slodb.SaveTarget(target); err != nil {
		h.logger.Error("create-slo-target-save", err, lager.Data{"targetid": target.Id})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error saving objective to database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusCreated, target)
}

func (h *SLOHandler) GetMeasurements(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	targetId := vars["targetid"]
	start, end, order, ok := parseTimeRange(h.logger, w, r)
	if !ok {
		return
	}
	if end < 0 {
		end = int64(^uint64(0) >> 1)
	}

	measurements, err := h.slodb.RetrieveMeasurements(targetId, start, end, order)
	if err != nil {
		h.logger.Error("get-slo-measurements", err, lager.Data{"targetid": targetId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting measurements from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, measurements)
}
