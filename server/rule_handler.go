package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/cfhttp/handlers"
	"code.cloudfoundry.org/lager"

	"obsengine/alertengine"
	"obsengine/auditlog"
	"obsengine/db"
	"obsengine/helpers"
	"obsengine/models"
)

type RuleHandler struct {
	logger  lager.Logger
	alertDB db.AlertDB
	audit   *auditlog.Store
}

func NewRuleHandler(logger lager.Logger, alertDB db.AlertDB, audit *auditlog.Store) *RuleHandler {
	return &RuleHandler{
		logger:  logger,
		alertDB: alertDB,
		audit:   audit,
	}
}

func (h *RuleHandler) ListRules(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	rules, err := h.alertDB.RetrieveRules()
	if err != nil {
		h.logger.Error("list-rules", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error listing rules from database"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, rules)
}

func (h *RuleHandler) GetRule(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	rule, err := h.alertDB.GetRule(vars["ruleid"])
	if err != nil {
		h.logger.Error("get-rule", err, lager.Data{"ruleid": vars["ruleid"]})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting rule from database"})
		return
	}
	if rule == nil {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: "Rule not found"})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, rule)
}

func (h *RuleHandler) CreateRule(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	rule, ok := h.decodeAndValidate(w, r, "")
	if !ok {
		return
	}
	if rule.Id == "" {
		id, err := helpers.GenerateGUID()
		if err != nil {
			h.logger.Error("create-rule-guid", err)
			handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
				Code:    "Interal-Server-Error",
				Message: "Error generating rule id"})
			return
		}
		rule.Id = id
	}

	if err := h.alertDB.SaveRule(rule); err != nil {
		h.logger.Error("create-rule-save", err, lager.Data{"ruleid": rule.Id})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error saving rule to database"})
		return
	}
	h.recordChange(r, "create-rule", rule.Id, nil, rule)
	handlers.WriteJSONResponse(w, http.StatusCreated, rule)
}

func (h *RuleHandler) UpdateRule(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	ruleId := vars["ruleid"]
	existing, err := h.alertDB.GetRule(ruleId)
	if err != nil {
		h.logger.Error("update-rule-get", err, lager.Data{"ruleid": ruleId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting rule from database"})
		return
	}
	if existing == nil {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: "Rule not found"})
		return
	}

	rule, ok := h.decodeAndValidate(w, r, ruleId)
	if !ok {
		return
	}
	rule.Id = ruleId
	if err := h.alertDB.SaveRule(rule); err != nil {
		h.logger.Error("update-rule-save", err, lager.Data{"ruleid": ruleId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error saving rule to database"})
		return
	}
	h.recordChange(r, "update-rule", ruleId, existing, rule)
	handlers.WriteJSONResponse(w, http.StatusOK, rule)
}

func (h *RuleHandler) DeleteRule(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	ruleId := vars["ruleid"]
	existing, err := h.alertDB.GetRule(ruleId)
	if err != nil {
		h.logger.Error("delete-rule-get", err, lager.Data{"ruleid": ruleId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error getting rule from database"})
		return
	}
	if existing == nil {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: "Rule not found"})
		return
	}
	if err := h.alertDB.DeleteRule(ruleId); err != nil {
		h.logger.Error("delete-rule", err, lager.Data{"ruleid": ruleId})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Interal-Server-Error",
			Message: "Error deleting rule from database"})
		return
	}
	h.recordChange(r, "delete-rule", ruleId, existing, nil)
	w.WriteHeader(http.StatusNoContent)
}

// decodeAndValidate parses the rule body and compiles its condition so a
// malformed expression never reaches the store.
func (h *RuleHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, ruleId string) (*models.AlertRule, bool) {
	rule := &models.AlertRule{}
	if err := json.NewDecoder(r.Body).Decode(rule); err != nil {
		h.logger.Error("decode-rule", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect rule in request body"})
		return nil, false
	}
	if rule.Name == "" || rule.EvalIntervalSecs <= 0 {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Rule requires name and a positive evaluation interval"})
		return nil, false
	}
	if rule.Severity < models.SeverityInfo || rule.Severity > models.SeverityCritical {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Rule severity out of range"})
		return nil, false
	}
	if _, err := alertengine.ParseCondition(ruleId, rule.Condition); err != nil {
		var configErr *models.ConfigurationError
		if errors.As(err, &configErr) {
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: configErr.Reason})
			return nil, false
		}
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Invalid rule condition"})
		return nil, false
	}
	return rule, true
}

func (h *RuleHandler) recordChange(r *http.Request, action string, ruleId string, before interface{}, after interface{}) {
	actor := r.Header.Get("X-Actor")
	if actor == "" {
		actor = "anonymous"
	}
	if err := h.audit.RecordChange(actor, action, "alert-rule", ruleId, before, after); err != nil {
		h.logger.Error("failed-to-audit-rule-change", err, lager.Data{"action": action, "ruleid": ruleId})
	}
}
