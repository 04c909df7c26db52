package sqldb

import (
	"database/sql"
	"encoding/json"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"obsengine/db"
	"obsengine/models"
)

type MetricSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func openSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*sqlx.DB, error) {
	database, err := db.Connection(dbConfig.URL)
	if err != nil {
		logger.Error("parse-db-url", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}
	sqldb, err := sqlx.Open(database.DriverName, database.DSN)
	if err != nil {
		logger.Error("open-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}
	err = sqldb.Ping()
	if err != nil {
		sqldb.Close()
		logger.Error("ping-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}
	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	return sqldb, nil
}

func NewMetricSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*MetricSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &MetricSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (mdb *MetricSQLDB) Close() error {
	err := mdb.sqldb.Close()
	if err != nil {
		mdb.logger.Error("close-metric-db", err, lager.Data{"dbConfig": mdb.dbConfig})
		return err
	}
	return nil
}

func labelsToJSON(labels map[string]string) string {
	if labels == nil {
		return "{}"
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func labelsFromJSON(s string) map[string]string {
	labels := map[string]string{}
	_ = json.Unmarshal([]byte(s), &labels)
	return labels
}

func (mdb *MetricSQLDB) SaveMetric(point *models.MetricPoint) error {
	query := "INSERT INTO metric_points(collector_id, name, value, labels, timestamp, metric_type) VALUES($1, $2, $3, $4, $5, $6)"
	_, err := mdb.sqldb.Exec(mdb.sqldb.Rebind(query), point.CollectorId, point.Name, point.Value, labelsToJSON(point.Labels), point.Timestamp, string(point.Type))
	if err != nil {
		mdb.logger.Error("insert-metric-point", err, lager.Data{"query": query, "point": point})
	}
	return err
}

func (mdb *MetricSQLDB) SaveMetricsInBulk(points []*models.MetricPoint) error {
	txn, err := mdb.sqldb.Begin()
	if err != nil {
		mdb.logger.Error("failed-to-start-transaction", err)
		return err
	}

	stmt, err := txn.Prepare(pq.CopyIn("metric_points", "collector_id", "name", "value", "labels", "timestamp", "metric_type"))
	if err != nil {
		mdb.logger.Error("failed-to-prepare-statement", err)
		_ = txn.Rollback()
		return err
	}
	for _, point := range points {
		_, err := stmt.Exec(point.CollectorId, point.Name, point.Value, labelsToJSON(point.Labels), point.Timestamp, string(point.Type))
		if err != nil {
			mdb.logger.Error("failed-to-execute", err)
		}
	}

	_, err = stmt.Exec()
	if err != nil {
		mdb.logger.Error("failed-to-execute-statement", err)
		_ = txn.Rollback()
		return err
	}

	err = stmt.Close()
	if err != nil {
		mdb.logger.Error("failed-to-close-statement", err)
		return err
	}

	err = txn.Commit()
	if err != nil {
		mdb.logger.Error("failed-to-commit-transaction", err)
		return err
	}
	return nil
}

func (mdb *MetricSQLDB) RetrieveMetrics(name string, matchers []models.LabelMatcher, start int64, end int64, orderType db.OrderType) ([]*models.MetricPoint, error) {
	orderStr := db.DESCSTR
	if orderType == db.ASC {
		orderStr = db.ASCSTR
	}
	if end < 0 {
		end = time.Now().UnixNano()
	}

	query := mdb.sqldb.Rebind("SELECT collector_id, name, value, labels, timestamp, metric_type FROM metric_points WHERE name = ? AND timestamp >= ? AND timestamp <= ? ORDER BY timestamp " + orderStr)
	rows, err := mdb.sqldb.Query(query, name, start, end)
	if err != nil {
		mdb.logger.Error("retrieve-metric-points", err, lager.Data{"query": query, "name": name})
		return nil, err
	}
	defer rows.Close()

	points := []*models.MetricPoint{}
	for rows.Next() {
		var labelStr, metricType string
		point := &models.MetricPoint{}
		err = rows.Scan(&point.CollectorId, &point.Name, &point.Value, &labelStr, &point.Timestamp, &metricType)
		if err != nil {
			mdb.logger.Error("scan-metric-point", err)
			return nil, err
		}
		point.Labels = labelsFromJSON(labelStr)
		point.Type = models.MetricType(metricType)
		if models.MatchLabels(point.Labels, matchers) {
			points = append(points, point)
		}
	}
	return points, rows.Err()
}

func (mdb *MetricSQLDB) SaveAggregate(aggregate *models.AggregatedMetric) error {
	query := mdb.sqldb.Rebind(`INSERT INTO metric_aggregates(name, labels, window_start, window_secs, count, sum, min, max, p50, p90, p95, p99)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name, labels, window_start, window_secs) DO UPDATE
		SET count=EXCLUDED.count, sum=EXCLUDED.sum, min=EXCLUDED.min, max=EXCLUDED.max,
		    p50=EXCLUDED.p50, p90=EXCLUDED.p90, p95=EXCLUDED.p95, p99=EXCLUDED.p99`)
	_, err := mdb.sqldb.Exec(query, aggregate.Name, labelsToJSON(aggregate.Labels), aggregate.WindowStart, aggregate.WindowSecs,
		aggregate.Count, aggregate.Sum, aggregate.Min, aggregate.Max, aggregate.P50, aggregate.P90, aggregate.P95, aggregate.P99)
	if err != nil {
		mdb.logger.Error("upsert-metric-aggregate", err, lager.Data{"aggregate": aggregate})
	}
	return err
}

func (mdb *MetricSQLDB) RetrieveAggregates(name string, windowSecs int, start int64, end int64) ([]*models.AggregatedMetric, error) {
	query := mdb.sqldb.Rebind(`SELECT name, labels, window_start, window_secs, count, sum, min, max, p50, p90, p95, p99
		FROM metric_aggregates WHERE name = ? AND window_secs = ? AND window_start >= ? AND window_start < ? ORDER BY window_start ASC`)
	rows, err := mdb.sqldb.Query(query, name, windowSecs, start, end)
	if err != nil {
		mdb.logger.Error("retrieve-metric-aggregates", err, lager.Data{"name": name, "windowSecs": windowSecs})
		return nil, err
	}
	defer rows.Close()

	aggregates := []*models.AggregatedMetric{}
	for rows.Next() {
		var labelStr string
		a := &models.AggregatedMetric{}
		err = rows.Scan(&a.Name, &labelStr, &a.WindowStart, &a.WindowSecs, &a.Count, &a.Sum, &a.Min, &a.Max, &a.P50, &a.P90, &a.P95, &a.P99)
		if err != nil {
			mdb.logger.Error("scan-metric-aggregate", err)
			return nil, err
		}
		a.Labels = labelsFromJSON(labelStr)
		aggregates = append(aggregates, a)
	}
	return aggregates, rows.Err()
}

func (mdb *MetricSQLDB) PruneMetrics(before int64) error {
	_, err := mdb.sqldb.Exec(mdb.sqldb.Rebind("DELETE FROM metric_points WHERE timestamp < ?"), before)
	if err != nil {
		mdb.logger.Error("prune-metric-points", err, lager.Data{"before": before})
	}
	return err
}

func (mdb *MetricSQLDB) GetDBStatus() sql.DBStats {
	return mdb.sqldb.Stats()
}
