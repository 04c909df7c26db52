package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/metricstore"
	"obsengine/models"
)

type MetricHandler struct {
	logger   lager.Logger
	store    *metricstore.Store
	registry *metricstore.Registry
}

func NewMetricHandler(logger lager.Logger, store *metricstore.Store, registry *metricstore.Registry) *MetricHandler {
	return &MetricHandler{
		logger:   logger,
		store:    store,
		registry: registry,
	}
}

// PointResult reports what happened to one point of an ingest batch. The
// batch is not transactional; each point is accepted or rejected on its own.
type PointResult struct {
	Index  int    `json:"index"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *MetricHandler) IngestMetrics(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	points := []*models.MetricPoint{}
	err := json.NewDecoder(r.Body).Decode(&points)
	if err != nil {
		h.logger.Error("ingest-metrics-unmarshal", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect metric points in request body"})
		return
	}
	if len(points) == 0 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Empty metric points in request body"})
		return
	}

	ingestErrs := h.store.IngestBatch(points)
	results := make([]PointResult, len(points))
	accepted := 0
	for i, ingestErr := range ingestErrs {
		results[i].Index = i
		if ingestErr == nil {
			results[i].Status = "accepted"
			accepted++
			continue
		}
		results[i].Status = "rejected"
		results[i].Error = ingestErr.Error()

		var transientErr *models.TransientStoreError
		if errors.As(ingestErr, &transientErr) {
			results[i].Status = "failed"
		}
	}
	h.logger.Debug("ingest-metrics", lager.Data{"received": len(points), "accepted": accepted})

	status := http.StatusOK
	if accepted == 0 {
		status = http.StatusBadRequest
	}
	handlers.WriteJSONResponse(w, status, results)
}

func (h *MetricHandler) GetMetricHistory(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	metricName := vars["metricname"]
	h.logger.Debug("get-metric-history", lager.Data{"metricname": metricName, "query": r.URL.RawQuery})

	start, end, order, ok := parseTimeRange(h.logger, w, r)
	if !ok {
		return
	}
	matchers, err := parseMatchers(r.URL.Query()["label"])
	if err != nil {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: err.Error()})
		return
	}

	points, err := h.store.Query(metricName, matchers, start, end)
	if err != nil {
		h.logger.Error("get-metric-history-query", err, lager.Data{"metricname": metricName})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting metric history from database"})
		return
	}
	if order == db.DESC {
		reversePoints(points)
	}
	handlers.WriteJSONResponse(w, http.StatusOK, points)
}

func (h *MetricHandler) GetAggregatedMetrics(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	metricName := vars["metricname"]

	windowParam := r.URL.Query().Get("window")
	windowSecs, err := strconv.Atoi(windowParam)
	if err != nil || !metricstore.IsSupportedWindow(windowSecs) {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Unsupported aggregation window"})
		return
	}
	start, end, _, ok := parseTimeRange(h.logger, w, r)
	if !ok {
		return
	}
	matchers, err := parseMatchers(r.URL.Query()["label"])
	if err != nil {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: err.Error()})
		return
	}

	aggregates, err := h.store.QueryAggregated(metricName, matchers, start, end, windowSecs)
	if err != nil {
		h.logger.Error("get-aggregated-metrics-query", err, lager.Data{"metricname": metricName, "window": windowSecs})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting aggregated metrics from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, aggregates)
}

func (h *MetricHandler) ListCollectors(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	handlers.WriteJSONResponse(w, http.StatusOK, h.registry.Collectors())
}

type registerCollectorRequest struct {
	Id           string `json:"id"`
	IntervalSecs int    `json:"interval_secs"`
}

func (h *MetricHandler) RegisterCollector(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	request := registerCollectorRequest{}
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || request.Id == "" || request.IntervalSecs <= 0 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect collector registration in request body"})
		return
	}
	h.registry.Register(request.Id, time.Duration(request.IntervalSecs)*time.Second)
	w.WriteHeader(http.StatusCreated)
}

// parseTimeRange reads start, end and order query parameters with the
// defaults open range ascending. It writes the error response itself.
func parseTimeRange(logger lager.Logger, w http.ResponseWriter, r *http.Request) (int64, int64, db.OrderType, bool) {
	startParam := r.URL.Query()["start"]
	endParam := r.URL.Query()["end"]
	orderParam := r.URL.Query()["order"]

	var err error
	start := int64(0)
	end := int64(-1)
	order := db.ASC

	if len(startParam) == 1 {
		start, err = strconv.ParseInt(startParam[0], 10, 64)
		if err != nil {
			logger.Error("parse-start-time", err, lager.Data{"start": startParam})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Error parsing start time"})
			return 0, 0, order, false
		}
	} else if len(startParam) > 1 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect start parameter in query string"})
		return 0, 0, order, false
	}

	if len(endParam) == 1 {
		end, err = strconv.ParseInt(endParam[0], 10, 64)
		if err != nil {
			logger.Error("parse-end-time", err, lager.Data{"end": endParam})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Error parsing end time"})
			return 0, 0, order, false
		}
	} else if len(endParam) > 1 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect end parameter in query string"})
		return 0, 0, order, false
	}

	if len(orderParam) == 1 {
		orderStr := strings.ToUpper(orderParam[0])
		if orderStr == db.DESCSTR {
			order = db.DESC
		} else if orderStr != db.ASCSTR {
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Incorrect order parameter in query string"})
			return 0, 0, order, false
		}
	} else if len(orderParam) > 1 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect order parameter in query string"})
		return 0, 0, order, false
	}

	return start, end, order, true
}

// parseMatchers reads repeated label parameters of the form name=value or
// name=~regex.
func parseMatchers(labelParams []string) ([]models.LabelMatcher, error) {
	matchers := make([]models.LabelMatcher, 0, len(labelParams))
	for _, param := range labelParams {
		parts := strings.SplitN(param, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.New("incorrect label parameter in query string")
		}
		matcher := models.LabelMatcher{Name: parts[0], Value: parts[1]}
		if strings.HasPrefix(parts[1], "~") {
			matcher.IsRegex = true
			matcher.Value = parts[1][1:]
		}
		matchers = append(matchers, matcher)
	}
	return matchers, nil
}

func reversePoints(points []*models.MetricPoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
