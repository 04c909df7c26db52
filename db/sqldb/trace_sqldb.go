package sqldb

import (
	"database/sql"

	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"

	"obsengine/db"
	"obsengine/models"
)

type TraceSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewTraceSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*TraceSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &TraceSQLDB{dbConfig: dbConfig, logger: logger, sqldb: sqldb}, nil
}

func (tdb *TraceSQLDB) Close() error {
	err := tdb.sqldb.Close()
	if err != nil {
		tdb.logger.Error("close-trace-db", err, lager.Data{"dbConfig": tdb.dbConfig})
		return err
	}
	return nil
}

const spanColumns = "trace_id, span_id, parent_span_id, service_name, operation_name, start_time, duration_nanos, status, orphaned, received_at"

func (tdb *TraceSQLDB) SaveSpan(span *models.TraceSpan) error {
	query := tdb.sqldb.Rebind("INSERT INTO trace_spans(" + spanColumns + ") VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := tdb.sqldb.Exec(query, span.TraceId, span.SpanId, span.ParentSpanId, span.ServiceName,
		span.OperationName, span.StartTime, span.DurationNanos, string(span.Status), span.Orphaned, span.ReceivedAt)
	if err != nil {
		tdb.logger.Error("insert-trace-span", err, lager.Data{"traceId": span.TraceId, "spanId": span.SpanId})
	}
	return err
}

func (tdb *TraceSQLDB) SetSpanOrphaned(traceId string, spanId string, orphaned bool) error {
	query := tdb.sqldb.Rebind("UPDATE trace_spans SET orphaned = ? WHERE trace_id = ? AND span_id = ?")
	_, err := tdb.sqldb.Exec(query, orphaned, traceId, spanId)
	if err != nil {
		tdb.logger.Error("set-span-orphaned", err, lager.Data{"traceId": traceId, "spanId": spanId})
	}
	return err
}

func (tdb *TraceSQLDB) scanSpans(query string, args ...interface{}) ([]*models.TraceSpan, error) {
	rows, err := tdb.sqldb.Query(tdb.sqldb.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spans := []*models.TraceSpan{}
	for rows.Next() {
		var status string
		span := &models.TraceSpan{}
		err = rows.Scan(&span.TraceId, &span.SpanId, &span.ParentSpanId, &span.ServiceName, &span.OperationName,
			&span.StartTime, &span.DurationNanos, &status, &span.Orphaned, &span.ReceivedAt)
		if err != nil {
			return nil, err
		}
		span.Status = models.SpanStatus(status)
		spans = append(spans, span)
	}
	return spans, rows.Err()
}

func (tdb *TraceSQLDB) RetrieveSpans(traceId string) ([]*models.TraceSpan, error) {
	spans, err := tdb.scanSpans("SELECT "+spanColumns+" FROM trace_spans WHERE trace_id = ? ORDER BY start_time ASC", traceId)
	if err != nil {
		tdb.logger.Error("retrieve-trace-spans", err, lager.Data{"traceId": traceId})
	}
	return spans, err
}

func (tdb *TraceSQLDB) RetrieveOrphanSpans(receivedBefore int64) ([]*models.TraceSpan, error) {
	spans, err := tdb.scanSpans("SELECT "+spanColumns+" FROM trace_spans WHERE orphaned = ? AND received_at < ?", true, receivedBefore)
	if err != nil {
		tdb.logger.Error("retrieve-orphan-spans", err, lager.Data{"receivedBefore": receivedBefore})
	}
	return spans, err
}

func (tdb *TraceSQLDB) GetDBStatus() sql.DBStats {
	return tdb.sqldb.Stats()
}
