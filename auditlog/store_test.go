package auditlog_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"obsengine/auditlog"
	"obsengine/fakes"
	"obsengine/models"
)

var _ = Describe("Store", func() {
	var (
		logger  *lagertest.TestLogger
		sclock  *fakeclock.FakeClock
		auditDB *fakes.FakeAuditDB
		store   *auditlog.Store
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("auditlog-test")
		sclock = fakeclock.NewFakeClock(time.Unix(0, 0).Add(6000 * time.Hour))
		auditDB = &fakes.FakeAuditDB{}
		store = auditlog.NewStore(logger, sclock, auditDB)
	})

	Describe("RecordEvent", func() {
		It("appends an event entry with the detail as its after image", func() {
			detail := map[string]string{"chosen": "incident-1"}
			Expect(store.RecordEvent("alice", "correlation-ambiguity", "incident", "incident-1", detail)).To(Succeed())

			Expect(auditDB.SaveEntryCallCount()).To(Equal(1))
			entry := auditDB.SaveEntryArgsForCall(0)
			Expect(entry.Id).NotTo(BeEmpty())
			Expect(entry.Kind).To(Equal(models.AuditKindEvent))
			Expect(entry.Actor).To(Equal("alice"))
			Expect(entry.Action).To(Equal("correlation-ambiguity"))
			Expect(entry.ObjectType).To(Equal("incident"))
			Expect(entry.ObjectId).To(Equal("incident-1"))
			Expect(entry.Before).To(BeNil())
			Expect(entry.After).To(MatchJSON(`{"chosen": "incident-1"}`))
			Expect(entry.Timestamp).To(Equal(sclock.Now().UnixNano()))
		})

		It("accepts an event without detail", func() {
			Expect(store.RecordEvent("alice", "escalated", "alert", "fp-1", nil)).To(Succeed())
			Expect(auditDB.SaveEntryArgsForCall(0).After).To(BeNil())
		})

		It("gives every entry its own id", func() {
			Expect(store.RecordEvent("alice", "escalated", "alert", "fp-1", nil)).To(Succeed())
			Expect(store.RecordEvent("alice", "escalated", "alert", "fp-1", nil)).To(Succeed())
			Expect(auditDB.SaveEntryArgsForCall(0).Id).NotTo(Equal(auditDB.SaveEntryArgsForCall(1).Id))
		})
	})

	Describe("RecordChange", func() {
		It("appends a change entry with before and after images", func() {
			before := &models.Incident{Id: "incident-1", State: models.IncidentStateDetected}
			after := &models.Incident{Id: "incident-1", State: models.IncidentStateResolved}
			Expect(store.RecordChange("alice", "transition-incident", "incident", "incident-1", before, after)).To(Succeed())

			entry := auditDB.SaveEntryArgsForCall(0)
			Expect(entry.Kind).To(Equal(models.AuditKindChange))
			Expect(string(entry.Before)).To(ContainSubstring(`"state":"detected"`))
			Expect(string(entry.After)).To(ContainSubstring(`"state":"resolved"`))
		})

		It("records a creation with no before image", func() {
			after := &models.Incident{Id: "incident-1"}
			Expect(store.RecordChange("alice", "open-incident", "incident", "incident-1", nil, after)).To(Succeed())
			Expect(auditDB.SaveEntryArgsForCall(0).Before).To(BeNil())
		})
	})

	It("wraps store failures as transient errors", func() {
		auditDB.SaveEntryReturns(errors.New("connection refused"))

		err := store.RecordEvent("alice", "escalated", "alert", "fp-1", nil)
		var transientErr *models.TransientStoreError
		Expect(errors.As(err, &transientErr)).To(BeTrue())
		Expect(transientErr.Op).To(Equal("save-audit-entry"))
	})

	Describe("Query", func() {
		It("reads entries for an object type in a time range", func() {
			expected := []*models.AuditEntry{{Id: "entry-1"}}
			auditDB.RetrieveEntriesReturns(expected, nil)

			entries, err := store.Query("incident", 100, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal(expected))

			objectType, start, end := auditDB.RetrieveEntriesArgsForCall(0)
			Expect(objectType).To(Equal("incident"))
			Expect(start).To(Equal(int64(100)))
			Expect(end).To(Equal(int64(200)))
		})
	})
})
