package sqldb

import (
	"database/sql"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"

	"obsengine/db"
	"obsengine/models"
)

type NotificationSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewNotificationSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*NotificationSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &NotificationSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (ndb *NotificationSQLDB) Close() error {
	err := ndb.sqldb.Close()
	if err != nil {
		ndb.logger.Error("close-notification-db", err, lager.Data{"dbConfig": ndb.dbConfig})
		return err
	}
	return nil
}

func (ndb *NotificationSQLDB) SaveNotificationLog(log *models.NotificationLog) error {
	query := ndb.sqldb.Rebind("INSERT INTO notification_logs(fingerprint, channel, attempt, status, timestamp) VALUES(?, ?, ?, ?, ?)")
	_, err := ndb.sqldb.Exec(query, log.Fingerprint, log.Channel, log.Attempt, string(log.Status), log.Timestamp)
	if err != nil {
		ndb.logger.Error("insert-notification-log", err, lager.Data{"log": log})
	}
	return err
}

func (ndb *NotificationSQLDB) RetrieveNotificationLogs(fingerprint string) ([]*models.NotificationLog, error) {
	query := ndb.sqldb.Rebind("SELECT fingerprint, channel, attempt, status, timestamp FROM notification_logs WHERE fingerprint = ? ORDER BY timestamp ASC")
	rows, err := ndb.sqldb.Query(query, fingerprint)
	if err != nil {
		ndb.logger.Error("retrieve-notification-logs", err, lager.Data{"fingerprint": fingerprint})
		return nil, err
	}
	defer rows.Close()

	logs := []*models.NotificationLog{}
	for rows.Next() {
		var status string
		l := &models.NotificationLog{}
		err = rows.Scan(&l.Fingerprint, &l.Channel, &l.Attempt, &status, &l.Timestamp)
		if err != nil {
			ndb.logger.Error("scan-notification-log", err)
			return nil, err
		}
		l.Status = models.DeliveryStatus(status)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (ndb *NotificationSQLDB) GetDBStatus() sql.DBStats {
	return ndb.sqldb.Stats()
}
