package sqldb

import (
	"database/sql"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"

	"obsengine/db"
	"obsengine/models"
)

type CollectorSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewCollectorSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*CollectorSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &CollectorSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (cdb *CollectorSQLDB) Close() error {
	err := cdb.sqldb.Close()
	if err != nil {
		cdb.logger.Error("close-collector-db", err, lager.Data{"dbConfig": cdb.dbConfig})
		return err
	}
	return nil
}

func (cdb *CollectorSQLDB) UpsertCollector(collector *models.MetricCollector) error {
	query := cdb.sqldb.Rebind(`INSERT INTO metric_collectors(id, expected_interval_secs, last_seen, status)
		VALUES(?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET expected_interval_secs=EXCLUDED.expected_interval_secs,
		    last_seen=EXCLUDED.last_seen, status=EXCLUDED.status`)
	_, err := cdb.sqldb.Exec(query, collector.Id, collector.ExpectedIntervalSecs, collector.LastSeen, string(collector.Status))
	if err != nil {
		cdb.logger.Error("upsert-collector", err, lager.Data{"collector": collector})
	}
	return err
}

func (cdb *CollectorSQLDB) RetrieveCollectors() ([]*models.MetricCollector, error) {
	rows, err := cdb.sqldb.Query("SELECT id, expected_interval_secs, last_seen, status FROM metric_collectors")
	if err != nil {
		cdb.logger.Error("retrieve-collectors", err)
		return nil, err
	}
	defer rows.Close()

	collectors := []*models.MetricCollector{}
	for rows.Next() {
		var status string
		c := &models.MetricCollector{}
		err = rows.Scan(&c.Id, &c.ExpectedIntervalSecs, &c.LastSeen, &status)
		if err != nil {
			cdb.logger.Error("scan-collector", err)
			return nil, err
		}
		c.Status = models.CollectorStatus(status)
		collectors = append(collectors, c)
	}
	return collectors, rows.Err()
}

func (cdb *CollectorSQLDB) GetDBStatus() sql.DBStats {
	return cdb.sqldb.Stats()
}
