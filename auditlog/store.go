package auditlog

import (
	"encoding/json"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/helpers"
	"obsengine/models"
)

// Store is the append-only audit trail. Entries are written with a fresh id
// and the current timestamp; nothing here updates or deletes existing rows.
type Store struct {
	logger  lager.Logger
	clock   clock.Clock
	auditDB db.AuditDB
}

func NewStore(logger lager.Logger, sclock clock.Clock, auditDB db.AuditDB) *Store {
	return &Store{
		logger:  logger.Session("audit-store"),
		clock:   sclock,
		auditDB: auditDB,
	}
}

// RecordEvent appends a point-in-time occurrence such as an escalation or a
// correlation decision.
func (s *Store) RecordEvent(actor string, action string, objectType string, objectId string, detail interface{}) error {
	entry, err := s.newEntry(models.AuditKindEvent, actor, action, objectType, objectId)
	if err != nil {
		return err
	}
	if detail != nil {
		entry.After, err = json.Marshal(detail)
		if err != nil {
			return err
		}
	}
	return s.save(entry)
}

// RecordChange appends a mutation with its before and after images.
func (s *Store) RecordChange(actor string, action string, objectType string, objectId string, before interface{}, after interface{}) error {
	entry, err := s.newEntry(models.AuditKindChange, actor, action, objectType, objectId)
	if err != nil {
		return err
	}
	if before != nil {
		entry.Before, err = json.Marshal(before)
		if err != nil {
			return err
		}
	}
	if after != nil {
		entry.After, err = json.Marshal(after)
		if err != nil {
			return err
		}
	}
	return s.save(entry)
}

func (s *Store) newEntry(kind models.AuditKind, actor string, action string, objectType string, objectId string) (*models.AuditEntry, error) {
	id, err := helpers.GenerateGUID()
	if err != nil {
		return nil, err
	}
	return &models.AuditEntry{
		Id:         id,
		Kind:       kind,
		Actor:      actor,
		Action:     action,
		ObjectType: objectType,
		ObjectId:   objectId,
		Timestamp:  s.clock.Now().UnixNano(),
	}, nil
}

func (s *Store) save(entry *models.AuditEntry) error {
	if err := s.auditDB.SaveEntry(entry); err != nil {
		s.logger.Error("failed-to-save-audit-entry", err, lager.Data{"action": entry.Action, "object_id": entry.ObjectId})
		return &models.TransientStoreError{Op: "save-audit-entry", Err: err}
	}
	return nil
}

func (s *Store) Query(objectType string, start int64, end int64) ([]*models.AuditEntry, error) {
	return s.auditDB.RetrieveEntries(objectType, start, end)
}
