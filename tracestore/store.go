package tracestore

import (
	"sort"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/models"
)

// Store ingests spans and assembles traces. A span whose parent has not
// arrived yet is quarantined as an orphan; it joins the tree the moment the
// parent shows up, and spans whose parents never arrive stay flagged so the
// sweeper can surface broken traces.
type Store struct {
	logger  lager.Logger
	clock   clock.Clock
	traceDB db.TraceDB
}

func NewStore(logger lager.Logger, sclock clock.Clock, traceDB db.TraceDB) *Store {
	return &Store{
		logger:  logger.Session("trace-store"),
		clock:   sclock,
		traceDB: traceDB,
	}
}

// RecordSpan validates and persists one span. Recording a span also
// reattaches any quarantined children that were waiting for it.
func (s *Store) RecordSpan(span *models.TraceSpan) error {
	if err := validateSpan(span); err != nil {
		return err
	}
	span.ReceivedAt = s.clock.Now().UnixNano()

	existing, err := s.traceDB.RetrieveSpans(span.TraceId)
	if err != nil {
		return &models.TransientStoreError{Op: "retrieve-spans", Err: err}
	}
	byId := map[string]*models.TraceSpan{}
	for _, sp := range existing {
		byId[sp.SpanId] = sp
	}

	if _, dup := byId[span.SpanId]; dup {
		return &models.ValidationError{Field: "span_id", Reason: "duplicate span id in trace"}
	}

	if !span.IsRoot() {
		if _, ok := byId[span.ParentSpanId]; !ok {
			span.Orphaned = true
			s.logger.Debug("span-quarantined", lager.Data{"trace_id": span.TraceId, "span_id": span.SpanId, "parent": span.ParentSpanId})
		}
	}

	if err := s.traceDB.SaveSpan(span); err != nil {
		return &models.TransientStoreError{Op: "save-span", Err: err}
	}

	s.reattachChildren(span, existing)
	return nil
}

// reattachChildren clears the orphan flag on quarantined spans whose parent
// just arrived.
func (s *Store) reattachChildren(parent *models.TraceSpan, existing []*models.TraceSpan) {
	for _, sp := range existing {
		if !sp.Orphaned || sp.ParentSpanId != parent.SpanId {
			continue
		}
		if err := s.traceDB.SetSpanOrphaned(sp.TraceId, sp.SpanId, false); err != nil {
			s.logger.Error("failed-to-reattach-span", err, lager.Data{"trace_id": sp.TraceId, "span_id": sp.SpanId})
			continue
		}
		s.logger.Debug("span-reattached", lager.Data{"trace_id": sp.TraceId, "span_id": sp.SpanId})
	}
}

// GetTrace returns the trace as a forest rooted at its root spans. Orphans
// still waiting for a parent are returned separately so callers can tell a
// complete trace from a broken one.
func (s *Store) GetTrace(traceId string) ([]*models.SpanNode, []*models.TraceSpan, error) {
	spans, err := s.traceDB.RetrieveSpans(traceId)
	if err != nil {
		return nil, nil, &models.TransientStoreError{Op: "retrieve-spans", Err: err}
	}
	if len(spans) == 0 {
		return nil, nil, &models.ValidationError{Field: "trace_id", Reason: "trace not found"}
	}

	nodes := map[string]*models.SpanNode{}
	for _, sp := range spans {
		nodes[sp.SpanId] = &models.SpanNode{Span: sp}
	}

	roots := []*models.SpanNode{}
	orphans := []*models.TraceSpan{}
	for _, sp := range spans {
		node := nodes[sp.SpanId]
		if sp.IsRoot() {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[sp.ParentSpanId]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			orphans = append(orphans, sp)
		}
	}

	sortForest(roots)
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].StartTime < orphans[j].StartTime })
	return roots, orphans, nil
}

// StaleOrphans lists quarantined spans older than the given age, for the
// retention sweeper.
func (s *Store) StaleOrphans(maxAge int64) ([]*models.TraceSpan, error) {
	cutoff := s.clock.Now().UnixNano() - maxAge
	return s.traceDB.RetrieveOrphanSpans(cutoff)
}

func validateSpan(span *models.TraceSpan) error {
	switch {
	case span.TraceId == "":
		return &models.ValidationError{Field: "trace_id", Reason: "required"}
	case span.SpanId == "":
		return &models.ValidationError{Field: "span_id", Reason: "required"}
	case span.SpanId == span.ParentSpanId:
		return &models.ValidationError{Field: "parent_span_id", Reason: "span cannot be its own parent"}
	case span.ServiceName == "":
		return &models.ValidationError{Field: "service_name", Reason: "required"}
	case span.OperationName == "":
		return &models.ValidationError{Field: "operation_name", Reason: "required"}
	case span.StartTime <= 0:
		return &models.ValidationError{Field: "start_time", Reason: "must be positive"}
	case span.DurationNanos < 0:
		return &models.ValidationError{Field: "duration_nanos", Reason: "must not be negative"}
	case span.Status != models.SpanStatusOK && span.Status != models.SpanStatusError:
		return &models.ValidationError{Field: "status", Reason: "must be ok or error"}
	}
	return nil
}

func sortForest(nodes []*models.SpanNode) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Span.StartTime < nodes[j].Span.StartTime })
	for _, node := range nodes {
		sortForest(node.Children)
	}
}
