package sqldb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"

	"obsengine/db"
	"obsengine/models"
)

type AlertSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewAlertSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*AlertSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &AlertSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (adb *AlertSQLDB) Close() error {
	err := adb.sqldb.Close()
	if err != nil {
		adb.logger.Error("close-alert-db", err, lager.Data{"dbConfig": adb.dbConfig})
		return err
	}
	return nil
}

func (adb *AlertSQLDB) SaveRule(rule *models.AlertRule) error {
	escalation, err := json.Marshal(rule.Escalation)
	if err != nil {
		return err
	}
	query := adb.sqldb.Rebind(`INSERT INTO alert_rules(id, name, condition, eval_interval_secs, for_duration_secs, severity, labels, escalation, invalid)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, condition=EXCLUDED.condition,
		    eval_interval_secs=EXCLUDED.eval_interval_secs, for_duration_secs=EXCLUDED.for_duration_secs,
		    severity=EXCLUDED.severity, labels=EXCLUDED.labels, escalation=EXCLUDED.escalation, invalid=EXCLUDED.invalid`)
	_, err = adb.sqldb.Exec(query, rule.Id, rule.Name, string(rule.Condition), rule.EvalIntervalSecs,
		rule.ForDurationSecs, int(rule.Severity), labelsToJSON(rule.Labels), string(escalation), rule.Invalid)
	if err != nil {
		adb.logger.Error("upsert-alert-rule", err, lager.Data{"ruleId": rule.Id})
	}
	return err
}

func (adb *AlertSQLDB) scanRule(scan func(dest ...interface{}) error) (*models.AlertRule, error) {
	var condition, labelStr, escalationStr string
	var severity int
	rule := &models.AlertRule{}
	err := scan(&rule.Id, &rule.Name, &condition, &rule.EvalIntervalSecs, &rule.ForDurationSecs, &severity, &labelStr, &escalationStr, &rule.Invalid)
	if err != nil {
		return nil, err
	}
	rule.Condition = json.RawMessage(condition)
	rule.Severity = models.AlertSeverity(severity)
	rule.Labels = labelsFromJSON(labelStr)
	if err := json.Unmarshal([]byte(escalationStr), &rule.Escalation); err != nil {
		return nil, err
	}
	return rule, nil
}

const ruleColumns = "id, name, condition, eval_interval_secs, for_duration_secs, severity, labels, escalation, invalid"

func (adb *AlertSQLDB) GetRule(ruleId string) (*models.AlertRule, error) {
	row := adb.sqldb.QueryRow(adb.sqldb.Rebind("SELECT "+ruleColumns+" FROM alert_rules WHERE id = ?"), ruleId)
	rule, err := adb.scanRule(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		adb.logger.Error("get-alert-rule", err, lager.Data{"ruleId": ruleId})
		return nil, err
	}
	return rule, nil
}

func (adb *AlertSQLDB) RetrieveRules() ([]*models.AlertRule, error) {
	rows, err := adb.sqldb.Query("SELECT " + ruleColumns + " FROM alert_rules")
	if err != nil {
		adb.logger.Error("retrieve-alert-rules", err)
		return nil, err
	}
	defer rows.Close()

	rules := []*models.AlertRule{}
	for rows.Next() {
		rule, err := adb.scanRule(rows.Scan)
		if err != nil {
			adb.logger.Error("scan-alert-rule", err)
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (adb *AlertSQLDB) DeleteRule(ruleId string) error {
	_, err := adb.sqldb.Exec(adb.sqldb.Rebind("DELETE FROM alert_rules WHERE id = ?"), ruleId)
	if err != nil {
		adb.logger.Error("delete-alert-rule", err, lager.Data{"ruleId": ruleId})
	}
	return err
}

const alertEventColumns = "fingerprint, rule_id, rule_name, state, severity, labels, first_triggered, last_evaluated, ack_actor, ack_at, resolved_at, escalation_step, version"

// CreateAlertEvent opens a fresh event. A resolved event still holding the
// fingerprint is replaced in place so a re-firing condition starts a new
// lifecycle; an active event is left untouched.
func (adb *AlertSQLDB) CreateAlertEvent(event *models.AlertEvent) error {
	query := adb.sqldb.Rebind(`INSERT INTO alert_events(` + alertEventColumns + `) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (fingerprint) DO UPDATE SET rule_id=EXCLUDED.rule_id, rule_name=EXCLUDED.rule_name, state=EXCLUDED.state,
		    severity=EXCLUDED.severity, labels=EXCLUDED.labels, first_triggered=EXCLUDED.first_triggered,
		    last_evaluated=EXCLUDED.last_evaluated, ack_actor=EXCLUDED.ack_actor, ack_at=EXCLUDED.ack_at,
		    resolved_at=EXCLUDED.resolved_at, escalation_step=EXCLUDED.escalation_step, version=EXCLUDED.version
		    WHERE alert_events.state = 'resolved'`)
	_, err := adb.sqldb.Exec(query, event.Fingerprint, event.RuleId, event.RuleName, string(event.State), int(event.Severity),
		labelsToJSON(event.Labels), event.FirstTriggered, event.LastEvaluated, event.AckActor, event.AckAt, event.ResolvedAt, event.EscalationStep, event.Version)
	if err != nil {
		adb.logger.Error("insert-alert-event", err, lager.Data{"fingerprint": event.Fingerprint})
	}
	return err
}

func (adb *AlertSQLDB) UpdateAlertEvent(event *models.AlertEvent) (bool, error) {
	query := adb.sqldb.Rebind(`UPDATE alert_events SET state=?, severity=?, labels=?, first_triggered=?, last_evaluated=?,
		ack_actor=?, ack_at=?, resolved_at=?, escalation_step=?, version=? WHERE fingerprint=? AND version=?`)
	result, err := adb.sqldb.Exec(query, string(event.State), int(event.Severity), labelsToJSON(event.Labels),
		event.FirstTriggered, event.LastEvaluated, event.AckActor, event.AckAt, event.ResolvedAt,
		event.EscalationStep, event.Version+1, event.Fingerprint, event.Version)
	if err != nil {
		adb.logger.Error("update-alert-event", err, lager.Data{"fingerprint": event.Fingerprint})
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected != 1 {
		return false, nil
	}
	event.Version++
	return true, nil
}

func (adb *AlertSQLDB) scanAlertEvent(scan func(dest ...interface{}) error) (*models.AlertEvent, error) {
	var state, labelStr string
	var severity int
	event := &models.AlertEvent{}
	err := scan(&event.Fingerprint, &event.RuleId, &event.RuleName, &state, &severity, &labelStr,
		&event.FirstTriggered, &event.LastEvaluated, &event.AckActor, &event.AckAt, &event.ResolvedAt, &event.EscalationStep, &event.Version)
	if err != nil {
		return nil, err
	}
	event.State = models.AlertState(state)
	event.Severity = models.AlertSeverity(severity)
	event.Labels = labelsFromJSON(labelStr)
	return event, nil
}

func (adb *AlertSQLDB) GetAlertEvent(fingerprint string) (*models.AlertEvent, error) {
	row := adb.sqldb.QueryRow(adb.sqldb.Rebind("SELECT "+alertEventColumns+" FROM alert_events WHERE fingerprint = ?"), fingerprint)
	event, err := adb.scanAlertEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		adb.logger.Error("get-alert-event", err, lager.Data{"fingerprint": fingerprint})
		return nil, err
	}
	return event, nil
}

func (adb *AlertSQLDB) RetrieveAlertEvents(states []models.AlertState, start int64, end int64) ([]*models.AlertEvent, error) {
	query := "SELECT " + alertEventColumns + " FROM alert_events WHERE last_evaluated >= ? AND last_evaluated <= ?"
	args := []interface{}{start, end}
	if len(states) > 0 {
		placeholders := make([]string, 0, len(states))
		for _, s := range states {
			placeholders = append(placeholders, "?")
			args = append(args, string(s))
		}
		query += fmt.Sprintf(" AND state IN (%s)", strings.Join(placeholders, ","))
	}
	query += " ORDER BY last_evaluated DESC"

	rows, err := adb.sqldb.Query(adb.sqldb.Rebind(query), args...)
	if err != nil {
		adb.logger.Error("retrieve-alert-events", err, lager.Data{"states": states})
		return nil, err
	}
	defer rows.Close()

	events := []*models.AlertEvent{}
	for rows.Next() {
		event, err := adb.scanAlertEvent(rows.Scan)
		if err != nil {
			adb.logger.Error("scan-alert-event", err)
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (adb *AlertSQLDB) GetDBStatus() sql.DBStats {
	return adb.sqldb.Stats()
}
