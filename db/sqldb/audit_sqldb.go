package sqldb

import (
	"database/sql"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"

	"obsengine/db"
	"obsengine/models"
)

type AuditSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewAuditSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*AuditSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &AuditSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (adb *AuditSQLDB) Close() error {
	err := adb.sqldb.Close()
	if err != nil {
		adb.logger.Error("close-audit-db", err, lager.Data{"dbConfig": adb.dbConfig})
		return err
	}
	return nil
}

func (adb *AuditSQLDB) SaveEntry(entry *models.AuditEntry) error {
	query := adb.sqldb.Rebind(`INSERT INTO audit_entries(id, kind, actor, action, object_type, object_id, before_state, after_state, archived, timestamp)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := adb.sqldb.Exec(query, entry.Id, string(entry.Kind), entry.Actor, entry.Action, entry.ObjectType,
		entry.ObjectId, string(entry.Before), string(entry.After), entry.Archived, entry.Timestamp)
	if err != nil {
		adb.logger.Error("insert-audit-entry", err, lager.Data{"entryId": entry.Id})
	}
	return err
}

func (adb *AuditSQLDB) RetrieveEntries(objectType string, start int64, end int64) ([]*models.AuditEntry, error) {
	query := "SELECT id, kind, actor, action, object_type, object_id, before_state, after_state, archived, timestamp FROM audit_entries WHERE timestamp >= ? AND timestamp <= ?"
	args := []interface{}{start, end}
	if objectType != "" {
		query += " AND object_type = ?"
		args = append(args, objectType)
	}
	query += " ORDER BY timestamp DESC"

	rows, err := adb.sqldb.Query(adb.sqldb.Rebind(query), args...)
	if err != nil {
		adb.logger.Error("retrieve-audit-entries", err, lager.Data{"objectType": objectType})
		return nil, err
	}
	defer rows.Close()

	entries := []*models.AuditEntry{}
	for rows.Next() {
		var kind, before, after string
		entry := &models.AuditEntry{}
		err = rows.Scan(&entry.Id, &kind, &entry.Actor, &entry.Action, &entry.ObjectType, &entry.ObjectId, &before, &after, &entry.Archived, &entry.Timestamp)
		if err != nil {
			adb.logger.Error("scan-audit-entry", err)
			return nil, err
		}
		entry.Kind = models.AuditKind(kind)
		entry.Before = []byte(before)
		entry.After = []byte(after)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ArchiveEntries flags expired rows instead of deleting them; audit data is
// never hard deleted.
func (adb *AuditSQLDB) ArchiveEntries(before int64) (int64, error) {
	result, err := adb.sqldb.Exec(adb.sqldb.Rebind("UPDATE audit_entries SET archived = ? WHERE archived = ? AND timestamp < ?"), true, false, before)
	if err != nil {
		adb.logger.Error("archive-audit-entries", err, lager.Data{"before": before})
		return 0, err
	}
	return result.RowsAffected()
}

func (adb *AuditSQLDB) GetDBStatus() sql.DBStats {
	return adb.sqldb.Stats()
}
