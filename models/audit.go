package models

import "encoding/json"

type AuditKind string

const (
	AuditKindEvent  AuditKind = "event"
	AuditKindChange AuditKind = "change"
)

// AuditEntry rows are append only and never hard deleted; retention moves
// expired rows to the archive instead.
type AuditEntry struct {
	Id         string          `json:"id"`
	Kind       AuditKind       `json:"kind"`
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	ObjectType string          `json:"object_type"`
	ObjectId   string          `json:"object_id"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Archived   bool            `json:"archived,omitempty"`
	Timestamp  int64           `json:"timestamp"`
}
