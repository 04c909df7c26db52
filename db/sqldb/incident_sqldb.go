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

type IncidentSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewIncidentSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*IncidentSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &IncidentSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (idb *IncidentSQLDB) Close() error {
	err := idb.sqldb.Close()
	if err != nil {
		idb.logger.Error("close-incident-db", err, lager.Data{"dbConfig": idb.dbConfig})
		return err
	}
	return nil
}

const incidentColumns = "id, service_name, alert_fingerprints, state, severity, opened_at, last_alert_at, resolved_at, closed_at, owner, postmortem_ref, version"

func (idb *IncidentSQLDB) CreateIncident(incident *models.Incident) error {
	fingerprints, err := json.Marshal(incident.AlertFingerprints)
	if err != nil {
		return err
	}
	query := idb.sqldb.Rebind("INSERT INTO incidents(" + incidentColumns + ") VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err = idb.sqldb.Exec(query, incident.Id, incident.ServiceName, string(fingerprints), string(incident.State),
		int(incident.Severity), incident.OpenedAt, incident.LastAlertAt, incident.ResolvedAt, incident.ClosedAt,
		incident.Owner, incident.PostmortemRef, incident.Version)
	if err != nil {
		idb.logger.Error("insert-incident", err, lager.Data{"incidentId": incident.Id})
	}
	return err
}

func (idb *IncidentSQLDB) UpdateIncident(incident *models.Incident) (bool, error) {
	fingerprints, err := json.Marshal(incident.AlertFingerprints)
	if err != nil {
		return false, err
	}
	query := idb.sqldb.Rebind(`UPDATE incidents SET alert_fingerprints=?, state=?, severity=?, last_alert_at=?,
		resolved_at=?, closed_at=?, owner=?, postmortem_ref=?, version=? WHERE id=? AND version=?`)
	result, err := idb.sqldb.Exec(query, string(fingerprints), string(incident.State), int(incident.Severity),
		incident.LastAlertAt, incident.ResolvedAt, incident.ClosedAt, incident.Owner, incident.PostmortemRef,
		incident.Version+1, incident.Id, incident.Version)
	if err != nil {
		idb.logger.Error("update-incident", err, lager.Data{"incidentId": incident.Id})
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected != 1 {
		return false, nil
	}
	incident.Version++
	return true, nil
}

func (idb *IncidentSQLDB) scanIncident(scan func(dest ...interface{}) error) (*models.Incident, error) {
	var fingerprintStr, state string
	var severity int
	incident := &models.Incident{}
	err := scan(&incident.Id, &incident.ServiceName, &fingerprintStr, &state, &severity, &incident.OpenedAt,
		&incident.LastAlertAt, &incident.ResolvedAt, &incident.ClosedAt, &incident.Owner, &incident.PostmortemRef, &incident.Version)
	if err != nil {
		return nil, err
	}
	incident.State = models.IncidentState(state)
	incident.Severity = models.AlertSeverity(severity)
	if err := json.Unmarshal([]byte(fingerprintStr), &incident.AlertFingerprints); err != nil {
		return nil, err
	}
	return incident, nil
}

func (idb *IncidentSQLDB) GetIncident(incidentId string) (*models.Incident, error) {
	row := idb.sqldb.QueryRow(idb.sqldb.Rebind("SELECT "+incidentColumns+" FROM incidents WHERE id = ?"), incidentId)
	incident, err := idb.scanIncident(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		idb.logger.Error("get-incident", err, lager.Data{"incidentId": incidentId})
		return nil, err
	}
	return incident, nil
}

func (idb *IncidentSQLDB) RetrieveOpenIncidents() ([]*models.Incident, error) {
	openStates := []models.IncidentState{
		models.IncidentStateDetected, models.IncidentStateInvestigating,
		models.IncidentStateMitigated, models.IncidentStateReopened,
	}
	return idb.RetrieveIncidents(openStates, "", 0, -1)
}

func (idb *IncidentSQLDB) RetrieveIncidents(states []models.IncidentState, serviceName string, start int64, end int64) ([]*models.Incident, error) {
	if end < 0 {
		end = int64(1)<<62 - 1
	}
	query := "SELECT " + incidentColumns + " FROM incidents WHERE opened_at >= ? AND opened_at <= ?"
	args := []interface{}{start, end}
	if serviceName != "" {
		query += " AND service_name = ?"
		args = append(args, serviceName)
	}
	if len(states) > 0 {
		placeholders := make([]string, 0, len(states))
		for _, s := range states {
			placeholders = append(placeholders, "?")
			args = append(args, string(s))
		}
		query += fmt.Sprintf(" AND state IN (%s)", strings.Join(placeholders, ","))
	}
	query += " ORDER BY opened_at DESC"

	rows, err := idb.sqldb.Query(idb.sqldb.Rebind(query), args...)
	if err != nil {
		idb.logger.Error("retrieve-incidents", err, lager.Data{"states": states, "serviceName": serviceName})
		return nil, err
	}
	defer rows.Close()

	incidents := []*models.Incident{}
	for rows.Next() {
		incident, err := idb.scanIncident(rows.Scan)
		if err != nil {
			idb.logger.Error("scan-incident", err)
			return nil, err
		}
		incidents = append(incidents, incident)
	}
	return incidents, rows.Err()
}

func (idb *IncidentSQLDB) GetDBStatus() sql.DBStats {
	return idb.sqldb.Stats()
}
