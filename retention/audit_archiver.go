package retention

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
)

// AuditArchiver flags audit entries older than the cutoff as archived.
// Audit rows are never deleted; archival only moves them out of the hot
// query path.
type AuditArchiver struct {
	logger     lager.Logger
	auditDB    db.AuditDB
	cutoffDays int
	clock      clock.Clock
}

func NewAuditArchiver(logger lager.Logger, auditDB db.AuditDB, cutoffDays int, aclock clock.Clock) *AuditArchiver {
	return &AuditArchiver{
		logger:     logger.Session("audit-archiver"),
		auditDB:    auditDB,
		cutoffDays: cutoffDays,
		clock:      aclock,
	}
}

func (aa *AuditArchiver) Run() {
	aa.logger.Debug("archiving-audit-entries", lager.Data{"cutoff_days": aa.cutoffDays})

	timestamp := aa.clock.Now().AddDate(0, 0, -aa.cutoffDays).UnixNano()

	archived, err := aa.auditDB.ArchiveEntries(timestamp)
	if err != nil {
		aa.logger.Error("archive-audit-entries", err)
		return
	}
	if archived > 0 {
		aa.logger.Info("archived-audit-entries", lager.Data{"count": archived})
	}
}
