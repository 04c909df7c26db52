package tracestore_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/fakes"
	"obsengine/models"
	"obsengine/tracestore"
)

var _ = Describe("Store", func() {
	var (
		logger  *lagertest.TestLogger
		sclock  *fakeclock.FakeClock
		traceDB *fakes.FakeTraceDB
		store   *tracestore.Store

		spans map[string][]*models.TraceSpan
	)

	span := func(traceId, spanId, parentId string, startOffset time.Duration) *models.TraceSpan {
		return &models.TraceSpan{
			TraceId:       traceId,
			SpanId:        spanId,
			ParentSpanId:  parentId,
			ServiceName:   "checkout",
			OperationName: "charge",
			StartTime:     time.Unix(0, 0).Add(100*time.Hour + startOffset).UnixNano(),
			DurationNanos: int64(5 * time.Millisecond),
			Status:        models.SpanStatusOK,
		}
	}

	record := func(sp *models.TraceSpan) {
		ExpectWithOffset(1, store.RecordSpan(sp)).To(Succeed())
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("tracestore-test")
		sclock = fakeclock.NewFakeClock(time.Unix(0, 0).Add(3000 * time.Hour))
		spans = map[string][]*models.TraceSpan{}

		traceDB = &fakes.FakeTraceDB{}
		traceDB.SaveSpanStub = func(sp *models.TraceSpan) error {
			clone := *sp
			spans[sp.TraceId] = append(spans[sp.TraceId], &clone)
			return nil
		}
		traceDB.RetrieveSpansStub = func(traceId string) ([]*models.TraceSpan, error) {
			result := []*models.TraceSpan{}
			for _, sp := range spans[traceId] {
				clone := *sp
				result = append(result, &clone)
			}
			return result, nil
		}
		traceDB.SetSpanOrphanedStub = func(traceId, spanId string, orphaned bool) error {
			for _, sp := range spans[traceId] {
				if sp.SpanId == spanId {
					sp.Orphaned = orphaned
					return nil
				}
			}
			return errors.New("span not found")
		}
		traceDB.RetrieveOrphanSpansStub = func(before int64) ([]*models.TraceSpan, error) {
			result := []*models.TraceSpan{}
			for _, trace := range spans {
				for _, sp := range trace {
					if sp.Orphaned && sp.ReceivedAt <= before {
						clone := *sp
						result = append(result, &clone)
					}
				}
			}
			return result, nil
		}

		store = tracestore.NewStore(logger, sclock, traceDB)
	})

	Describe("RecordSpan", func() {
		It("persists a root span with the receive timestamp", func() {
			record(span("trace-1", "root", "", 0))

			Expect(traceDB.SaveSpanCallCount()).To(Equal(1))
			saved := traceDB.SaveSpanArgsForCall(0)
			Expect(saved.Orphaned).To(BeFalse())
			Expect(saved.ReceivedAt).To(Equal(sclock.Now().UnixNano()))
		})

		It("accepts a child whose parent is already present", func() {
			record(span("trace-1", "root", "", 0))
			record(span("trace-1", "child", "root", time.Millisecond))

			Expect(traceDB.SaveSpanArgsForCall(1).Orphaned).To(BeFalse())
		})

		It("rejects a duplicate span id within the trace", func() {
			record(span("trace-1", "root", "", 0))

			err := store.RecordSpan(span("trace-1", "root", "", time.Millisecond))
			var validationErr *models.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("span_id"))
		})

		It("allows the same span id in a different trace", func() {
			record(span("trace-1", "root", "", 0))
			record(span("trace-2", "root", "", 0))
		})

		It("rejects malformed spans field by field", func() {
			for field, sp := range map[string]*models.TraceSpan{
				"trace_id":       span("", "s1", "", 0),
				"span_id":        span("trace-1", "", "", 0),
				"service_name":   {TraceId: "trace-1", SpanId: "s1", OperationName: "op", StartTime: 1, Status: models.SpanStatusOK},
				"operation_name": {TraceId: "trace-1", SpanId: "s1", ServiceName: "svc", StartTime: 1, Status: models.SpanStatusOK},
				"start_time":     {TraceId: "trace-1", SpanId: "s1", ServiceName: "svc", OperationName: "op", Status: models.SpanStatusOK},
				"status":         {TraceId: "trace-1", SpanId: "s1", ServiceName: "svc", OperationName: "op", StartTime: 1, Status: "unknown"},
			} {
				err := store.RecordSpan(sp)
				var validationErr *models.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue(), field)
				Expect(validationErr.Field).To(Equal(field))
			}
		})

		It("rejects a span that is its own parent", func() {
			err := store.RecordSpan(span("trace-1", "s1", "s1", 0))
			var validationErr *models.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("parent_span_id"))
		})

		It("rejects a negative duration", func() {
			sp := span("trace-1", "s1", "", 0)
			sp.DurationNanos = -1
			err := store.RecordSpan(sp)
			var validationErr *models.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("duration_nanos"))
		})

		It("wraps store failures as transient errors", func() {
			traceDB.SaveSpanStub = nil
			traceDB.SaveSpanReturns(errors.New("connection refused"))

			err := store.RecordSpan(span("trace-1", "root", "", 0))
			var transientErr *models.TransientStoreError
			Expect(errors.As(err, &transientErr)).To(BeTrue())
			Expect(transientErr.Op).To(Equal("save-span"))
		})

		Context("when the parent has not arrived yet", func() {
			It("quarantines the span as an orphan", func() {
				record(span("trace-1", "child", "root", time.Millisecond))

				Expect(traceDB.SaveSpanArgsForCall(0).Orphaned).To(BeTrue())
			})

			It("reattaches the orphan when the parent shows up", func() {
				record(span("trace-1", "child-a", "root", time.Millisecond))
				record(span("trace-1", "child-b", "root", 2*time.Millisecond))
				record(span("trace-1", "unrelated", "other-parent", 3*time.Millisecond))

				record(span("trace-1", "root", "", 0))

				Expect(traceDB.SetSpanOrphanedCallCount()).To(Equal(2))
				reattached := []string{}
				for i := 0; i < traceDB.SetSpanOrphanedCallCount(); i++ {
					_, spanId, orphaned := traceDB.SetSpanOrphanedArgsForCall(i)
					Expect(orphaned).To(BeFalse())
					reattached = append(reattached, spanId)
				}
				Expect(reattached).To(ConsistOf("child-a", "child-b"))
			})
		})
	})

	Describe("GetTrace", func() {
		It("returns the spans as a forest with children nested under parents", func() {
			record(span("trace-1", "root", "", 0))
			record(span("trace-1", "auth", "root", 2*time.Millisecond))
			record(span("trace-1", "db", "auth", 3*time.Millisecond))
			record(span("trace-1", "cache", "root", time.Millisecond))

			roots, orphans, err := store.GetTrace("trace-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(orphans).To(BeEmpty())
			Expect(roots).To(HaveLen(1))
			Expect(roots[0].Span.SpanId).To(Equal("root"))

			// children sorted by start time
			Expect(roots[0].Children).To(HaveLen(2))
			Expect(roots[0].Children[0].Span.SpanId).To(Equal("cache"))
			Expect(roots[0].Children[1].Span.SpanId).To(Equal("auth"))
			Expect(roots[0].Children[1].Children[0].Span.SpanId).To(Equal("db"))
		})

		It("returns orphans separately, ordered by start time", func() {
			record(span("trace-1", "root", "", 0))
			record(span("trace-1", "lost-b", "nowhere", 2*time.Millisecond))
			record(span("trace-1", "lost-a", "elsewhere", time.Millisecond))

			roots, orphans, err := store.GetTrace("trace-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(HaveLen(1))
			Expect(orphans).To(HaveLen(2))
			Expect(orphans[0].SpanId).To(Equal("lost-a"))
			Expect(orphans[1].SpanId).To(Equal("lost-b"))
		})

		It("returns every root of a multi-root trace in start order", func() {
			record(span("trace-1", "root-b", "", time.Millisecond))
			record(span("trace-1", "root-a", "", 0))

			roots, _, err := store.GetTrace("trace-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(HaveLen(2))
			Expect(roots[0].Span.SpanId).To(Equal("root-a"))
			Expect(roots[1].Span.SpanId).To(Equal("root-b"))
		})

		It("rejects an unknown trace", func() {
			_, _, err := store.GetTrace("no-such-trace")
			var validationErr *models.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("trace_id"))
		})
	})

	Describe("StaleOrphans", func() {
		It("lists quarantined spans past the age limit", func() {
			record(span("trace-1", "old-orphan", "missing", 0))
			sclock.Increment(time.Hour)
			record(span("trace-1", "fresh-orphan", "missing-too", time.Millisecond))

			stale, err := store.StaleOrphans((30 * time.Minute).Nanoseconds())
			Expect(err).NotTo(HaveOccurred())
			Expect(stale).To(HaveLen(1))
			Expect(stale[0].SpanId).To(Equal("old-orphan"))

			Expect(traceDB.RetrieveOrphanSpansCallCount()).To(Equal(1))
			Expect(traceDB.RetrieveOrphanSpansArgsForCall(0)).To(
				Equal(sclock.Now().UnixNano() - (30 * time.Minute).Nanoseconds()))
		})
	})
})
