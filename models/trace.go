package models

type SpanStatus string

const (
	SpanStatusOK    SpanStatus = "ok"
	SpanStatusError SpanStatus = "error"
)

type TraceSpan struct {
	TraceId       string     `json:"trace_id"`
	SpanId        string     `json:"span_id"`
	ParentSpanId  string     `json:"parent_span_id,omitempty"`
	ServiceName   string     `json:"service_name"`
	OperationName string     `json:"operation_name"`
	StartTime     int64      `json:"start_time"`
	DurationNanos int64      `json:"duration_nanos"`
	Status        SpanStatus `json:"status"`
	Orphaned      bool       `json:"orphaned,omitempty"`
	ReceivedAt    int64      `json:"received_at"`
}

func (s *TraceSpan) IsRoot() bool {
	return s.ParentSpanId == ""
}

type SpanNode struct {
	Span     *TraceSpan  `json:"span"`
	Children []*SpanNode `json:"children,omitempty"`
}
