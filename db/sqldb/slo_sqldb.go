package sqldb

import (
	"database/sql"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"

	"obsengine/db"
	"obsengine/models"
)

type SLOSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewSLOSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*SLOSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &SLOSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (sdb *SLOSQLDB) Close() error {
	err := sdb.sqldb.Close()
	if err != nil {
		sdb.logger.Error("close-slo-db", err, lager.Data{"dbConfig": sdb.dbConfig})
		return err
	}
	return nil
}

func (sdb *SLOSQLDB) SaveTarget(target *models.SLOTarget) error {
	query := sdb.sqldb.Rebind(`INSERT INTO slo_targets(id, service_name, indicator, target_ratio, window_secs, good_metric, total_metric, metric_labels)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET service_name=EXCLUDED.service_name, indicator=EXCLUDED.indicator,
		    target_ratio=EXCLUDED.target_ratio, window_secs=EXCLUDED.window_secs,
		    good_metric=EXCLUDED.good_metric, total_metric=EXCLUDED.total_metric, metric_labels=EXCLUDED.metric_labels`)
	_, err := sdb.sqldb.Exec(query, target.Id, target.ServiceName, string(target.Indicator), target.TargetRatio,
		target.WindowSecs, target.GoodMetric, target.TotalMetric, labelsToJSON(target.MetricLabels))
	if err != nil {
		sdb.logger.Error("upsert-slo-target", err, lager.Data{"target": target})
	}
	return err
}

func (sdb *SLOSQLDB) RetrieveTargets() ([]*models.SLOTarget, error) {
	rows, err := sdb.sqldb.Query("SELECT id, service_name, indicator, target_ratio, window_secs, good_metric, total_metric, metric_labels FROM slo_targets")
	if err != nil {
		sdb.logger.Error("retrieve-slo-targets", err)
		return nil, err
	}
	defer rows.Close()

	targets := []*models.SLOTarget{}
	for rows.Next() {
		var indicator, labelStr string
		t := &models.SLOTarget{}
		err = rows.Scan(&t.Id, &t.ServiceName, &indicator, &t.TargetRatio, &t.WindowSecs, &t.GoodMetric, &t.TotalMetric, &labelStr)
		if err != nil {
			sdb.logger.Error("scan-slo-target", err)
			return nil, err
		}
		t.Indicator = models.IndicatorType(indicator)
		t.MetricLabels = labelsFromJSON(labelStr)
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (sdb *SLOSQLDB) SaveMeasurement(measurement *models.SLOMeasurement) error {
	query := sdb.sqldb.Rebind(`INSERT INTO slo_measurements(target_id, window_start, window_end, good_events, total_events, compliance, defined, budget_remaining, burn_rate, timestamp)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := sdb.sqldb.Exec(query, measurement.TargetId, measurement.WindowStart, measurement.WindowEnd,
		measurement.GoodEvents, measurement.TotalEvents, measurement.Compliance, measurement.Defined,
		measurement.BudgetRemaining, measurement.BurnRate, measurement.Timestamp)
	if err != nil {
		sdb.logger.Error("insert-slo-measurement", err, lager.Data{"measurement": measurement})
	}
	return err
}

func (sdb *SLOSQLDB) RetrieveMeasurements(targetId string, start int64, end int64, orderType db.OrderType) ([]*models.SLOMeasurement, error) {
	orderStr := db.DESCSTR
	if orderType == db.ASC {
		orderStr = db.ASCSTR
	}
	query := sdb.sqldb.Rebind(`SELECT target_id, window_start, window_end, good_events, total_events, compliance, defined, budget_remaining, burn_rate, timestamp
		FROM slo_measurements WHERE target_id = ? AND timestamp >= ? AND timestamp <= ? ORDER BY timestamp ` + orderStr)
	rows, err := sdb.sqldb.Query(query, targetId, start, end)
	if err != nil {
		sdb.logger.Error("retrieve-slo-measurements", err, lager.Data{"targetId": targetId})
		return nil, err
	}
	defer rows.Close()

	measurements := []*models.SLOMeasurement{}
	for rows.Next() {
		m := &models.SLOMeasurement{}
		err = rows.Scan(&m.TargetId, &m.WindowStart, &m.WindowEnd, &m.GoodEvents, &m.TotalEvents, &m.Compliance, &m.Defined, &m.BudgetRemaining, &m.BurnRate, &m.Timestamp)
		if err != nil {
			sdb.logger.Error("scan-slo-measurement", err)
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

func (sdb *SLOSQLDB) GetDBStatus() sql.DBStats {
	return sdb.sqldb.Stats()
}
