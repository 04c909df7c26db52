package notifier_test

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"obsengine/fakes"
	"obsengine/models"
	"obsengine/notifier"
)

var _ = Describe("Dispatcher", func() {
	const (
		workerCount     = 2
		queueSize       = 10
		maxRetries      = 3
		retryInterval   = time.Second
		breakerFailures = 10
		dedupTTL        = 5 * time.Minute
	)

	var (
		logger         *lagertest.TestLogger
		dclock         *fakeclock.FakeClock
		notificationDB *fakes.FakeNotificationDB
		pager          *fakes.FakeChannel
		dispatcher     *notifier.Dispatcher
		event          *models.AlertEvent

		exhaustedLock sync.Mutex
		exhausted     []string
	)

	exhaustedCalls := func() []string {
		exhaustedLock.Lock()
		defer exhaustedLock.Unlock()
		return append([]string{}, exhausted...)
	}

	savedStatuses := func() []models.DeliveryStatus {
		statuses := []models.DeliveryStatus{}
		for i := 0; i < notificationDB.SaveNotificationLogCallCount(); i++ {
			statuses = append(statuses, notificationDB.SaveNotificationLogArgsForCall(i).Status)
		}
		return statuses
	}

	// each failed attempt but the last sleeps on the backoff before retrying
	elapseBackoff := func(sleeps int) {
		for i := 0; i < sleeps; i++ {
			dclock.WaitForWatcherAndIncrement(10 * retryInterval)
		}
	}

	newDispatcher := func(breakerConsecutiveFailures int64) *notifier.Dispatcher {
		return notifier.NewDispatcher(logger, dclock, notificationDB, []notifier.Channel{pager},
			workerCount, queueSize, maxRetries, retryInterval, breakerConsecutiveFailures,
			dedupTTL, func(fingerprint string) {
				exhaustedLock.Lock()
				defer exhaustedLock.Unlock()
				exhausted = append(exhausted, fingerprint)
			})
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("dispatcher-test")
		dclock = fakeclock.NewFakeClock(time.Now())
		notificationDB = &fakes.FakeNotificationDB{}
		pager = &fakes.FakeChannel{}
		pager.NameReturns("pager")
		exhausted = []string{}

		event = &models.AlertEvent{
			Fingerprint: "fp-1",
			RuleName:    "high cpu",
			State:       models.AlertStateFiring,
			Severity:    models.SeverityCritical,
			Labels:      map[string]string{"service": "checkout"},
		}

		dispatcher = newDispatcher(breakerFailures)
		dispatcher.Start()
	})

	AfterEach(func() {
		dispatcher.Stop()
	})

	Describe("Dispatch", func() {
		It("delivers the payload to the named channel", func() {
			dispatcher.Dispatch(event, "pager", 0)

			Eventually(pager.SendCallCount).Should(Equal(1))
			payload := pager.SendArgsForCall(0)
			Expect(payload.Fingerprint).To(Equal("fp-1"))
			Expect(payload.Attempt).To(Equal(1))
			Expect(payload.RuleName).To(Equal("high cpu"))
			Expect(payload.State).To(Equal(models.AlertStateFiring))
			Expect(payload.Severity).To(Equal(models.SeverityCritical))
			Expect(payload.Labels).To(HaveKeyWithValue("service", "checkout"))

			Eventually(savedStatuses).Should(ConsistOf(models.DeliveryStatusSent))
			Consistently(exhaustedCalls).Should(BeEmpty())
		})

		It("delivers the same alert once per escalation step and channel", func() {
			dispatcher.Dispatch(event, "pager", 0)
			Eventually(pager.SendCallCount).Should(Equal(1))

			dispatcher.Dispatch(event, "pager", 0)
			Consistently(pager.SendCallCount).Should(Equal(1))

			dispatcher.Dispatch(event, "pager", 1)
			Eventually(pager.SendCallCount).Should(Equal(2))
			Expect(pager.SendArgsForCall(1).Attempt).To(Equal(1))
		})

		It("fast-forwards the escalation chain for an unknown channel", func() {
			dispatcher.Dispatch(event, "carrier-pigeon", 0)

			Eventually(exhaustedCalls).Should(ConsistOf("fp-1"))
			Consistently(pager.SendCallCount).Should(BeZero())
			Consistently(notificationDB.SaveNotificationLogCallCount).Should(BeZero())
		})

		It("drops the task when the delivery queue is full", func() {
			stuffed := notifier.NewDispatcher(logger, dclock, notificationDB, []notifier.Channel{pager},
				workerCount, 1, maxRetries, retryInterval, breakerFailures, dedupTTL, func(string) {})
			// not started, so the queue never drains
			stuffed.Dispatch(event, "pager", 0)
			stuffed.Dispatch(event, "pager", 1)

			Eventually(logger.Buffer()).Should(gbytes.Say("delivery-queue-full"))
		})
	})

	Describe("retries", func() {
		It("retries with backoff until the channel accepts", func() {
			pager.SendReturnsOnCall(0, errors.New("503"))
			pager.SendReturnsOnCall(1, errors.New("503"))
			pager.SendReturnsOnCall(2, nil)

			dispatcher.Dispatch(event, "pager", 0)
			elapseBackoff(2)

			Eventually(pager.SendCallCount).Should(Equal(3))
			Expect(pager.SendArgsForCall(2).Attempt).To(Equal(3))
			Eventually(savedStatuses).Should(Equal([]models.DeliveryStatus{
				models.DeliveryStatusRetrying,
				models.DeliveryStatusRetrying,
				models.DeliveryStatusSent,
			}))
			Consistently(exhaustedCalls).Should(BeEmpty())
		})

		It("gives up after the retry budget and fast-forwards the chain", func() {
			pager.SendReturns(errors.New("503"))

			dispatcher.Dispatch(event, "pager", 0)
			elapseBackoff(maxRetries - 1)

			Eventually(exhaustedCalls).Should(ConsistOf("fp-1"))
			Expect(pager.SendCallCount()).To(Equal(maxRetries))
			Eventually(savedStatuses).Should(Equal([]models.DeliveryStatus{
				models.DeliveryStatusRetrying,
				models.DeliveryStatusRetrying,
				models.DeliveryStatusFailed,
			}))
			Eventually(logger.Buffer()).Should(gbytes.Say("delivery-exhausted"))
		})

		It("does not retry an exhausted step when it is dispatched again", func() {
			pager.SendReturns(errors.New("503"))
			dispatcher.Dispatch(event, "pager", 0)
			elapseBackoff(maxRetries - 1)
			Eventually(exhaustedCalls).Should(HaveLen(1))

			dispatcher.Dispatch(event, "pager", 0)
			Consistently(pager.SendCallCount).Should(Equal(maxRetries))
		})

		It("records best-effort logs even when the store fails", func() {
			notificationDB.SaveNotificationLogReturns(errors.New("connection refused"))

			dispatcher.Dispatch(event, "pager", 0)
			Eventually(pager.SendCallCount).Should(Equal(1))
			Eventually(logger.Buffer()).Should(gbytes.Say("failed-to-save-notification-log"))
		})
	})

	Describe("circuit breaking", func() {
		It("stops calling a channel once its breaker trips", func() {
			dispatcher.Stop()
			dispatcher = newDispatcher(2)
			dispatcher.Start()

			pager.SendReturns(errors.New("503"))
			dispatcher.Dispatch(event, "pager", 0)
			elapseBackoff(maxRetries - 1)

			Eventually(exhaustedCalls).Should(ConsistOf("fp-1"))
			// the third attempt is short-circuited by the open breaker
			Expect(pager.SendCallCount()).To(Equal(2))
		})
	})
})
