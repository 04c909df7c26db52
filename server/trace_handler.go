package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/models"
	"obsengine/tracestore"
)

type TraceHandler struct {
	logger lager.Logger
	store  *tracestore.Store
}

func NewTraceHandler(logger lager.Logger, store *tracestore.Store) *TraceHandler {
	return &TraceHandler{
		logger: logger,
		store:  store,
	}
}

func (h *TraceHandler) RecordSpan(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	span := &models.TraceSpan{}
	if err := json.NewDecoder(r.Body).Decode(span); err != nil {
		h.logger.Error("decode-span", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect span in request body"})
		return
	}

	if err := h.store.RecordSpan(span); err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: validationErr.Error()})
			return
		}
		h.logger.Error("record-span", err, lager.Data{"traceid": span.TraceId, "spanid": span.SpanId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error saving span to database"})
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type traceResponse struct {
	TraceId string              `json:"trace_id"`
	Roots   []*models.SpanNode  `json:"roots"`
	Orphans []*models.TraceSpan `json:"orphans,omitempty"`
}

func (h *TraceHandler) GetTrace(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	traceId := vars["traceid"]
	roots, orphans, err := h.store.GetTrace(traceId)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "Not-Found",
				Message: "Trace not found"})
			return
		}
		h.logger.Error("get-trace", err, lager.Data{"traceid": traceId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting trace from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, traceResponse{
		TraceId: traceId,
		Roots:   roots,
		Orphans: orphans,
	})
}
