package alertengine

import (
	"container/heap"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/models"
)

// AdvanceFunc is called when an escalation timer fires. It receives the
// alert fingerprint and the step index to deliver.
type AdvanceFunc func(fingerprint string, step int)

type escalationEntry struct {
	fingerprint string
	step        int
	channel     string
	dueAt       time.Time
	index       int
	cancelled   bool
}

type escalationHeap []*escalationEntry

func (h escalationHeap) Len() int           { return len(h) }
func (h escalationHeap) Less(i, j int) bool { return h[i].dueAt.Before(h[j].dueAt) }
func (h escalationHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *escalationHeap) Push(x interface{}) {
	entry := x.(*escalationEntry)
	entry.index = len(*h)
	*h = append(*h, entry)
}
func (h *escalationHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*h = old[:n-1]
	return entry
}

// Escalator drives per-alert escalation chains off a single timer. Each
// alert has at most one pending entry, indexed by fingerprint so an
// acknowledgement cancels it without scanning the heap.
type Escalator struct {
	logger   lager.Logger
	clock    clock.Clock
	advance  AdvanceFunc
	interval time.Duration

	lock sync.Mutex
	heap escalationHeap
	byFp map[string]*escalationEntry

	doneChan chan bool
}

func NewEscalator(logger lager.Logger, eclock clock.Clock, checkInterval time.Duration, advance AdvanceFunc) *Escalator {
	return &Escalator{
		logger:   logger.Session("escalator"),
		clock:    eclock,
		advance:  advance,
		interval: checkInterval,
		byFp:     map[string]*escalationEntry{},
		doneChan: make(chan bool),
	}
}

func (e *Escalator) Start() {
	go e.run()
	e.logger.Info("started", lager.Data{"check_interval": e.interval.String()})
}

func (e *Escalator) Stop() {
	close(e.doneChan)
	e.logger.Info("stopped")
}

func (e *Escalator) run() {
	ticker := e.clock.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-e.doneChan:
			return
		case now := <-ticker.C():
			e.fireDue(now)
		}
	}
}

func (e *Escalator) fireDue(now time.Time) {
	for {
		entry := e.popDue(now)
		if entry == nil {
			return
		}
		e.logger.Debug("escalation-due", lager.Data{"fingerprint": entry.fingerprint, "step": entry.step, "channel": entry.channel})
		e.advance(entry.fingerprint, entry.step)
	}
}

func (e *Escalator) popDue(now time.Time) *escalationEntry {
	e.lock.Lock()
	defer e.lock.Unlock()
	for len(e.heap) > 0 {
		entry := e.heap[0]
		if entry.cancelled {
			heap.Pop(&e.heap)
			continue
		}
		if entry.dueAt.After(now) {
			return nil
		}
		heap.Pop(&e.heap)
		delete(e.byFp, entry.fingerprint)
		return entry
	}
	return nil
}

// Schedule arms the timer for the given escalation step, replacing any
// pending entry for the same alert.
func (e *Escalator) Schedule(fingerprint string, steps []models.EscalationStep, step int) {
	if step >= len(steps) {
		return
	}
	dueAt := e.clock.Now().Add(time.Duration(steps[step].DelaySeconds) * time.Second)

	e.lock.Lock()
	defer e.lock.Unlock()
	if existing, ok := e.byFp[fingerprint]; ok {
		existing.cancelled = true
	}
	entry := &escalationEntry{
		fingerprint: fingerprint,
		step:        step,
		channel:     steps[step].Channel,
		dueAt:       dueAt,
	}
	heap.Push(&e.heap, entry)
	e.byFp[fingerprint] = entry
	e.logger.Debug("scheduled", lager.Data{"fingerprint": fingerprint, "step": step, "due_at": dueAt})
}

// Cancel marks the alert's pending entry cancelled. The entry is dropped
// lazily when it surfaces at the heap top, so cancellation does not pay
// for a heap repair.
func (e *Escalator) Cancel(fingerprint string) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if entry, ok := e.byFp[fingerprint]; ok {
		entry.cancelled = true
		delete(e.byFp, fingerprint)
		e.logger.Debug("cancelled", lager.Data{"fingerprint": fingerprint, "step": entry.step})
	}
}

// TriggerNow cancels the pending timer and fires the step immediately.
// Used when a delivery permanently fails and the chain must fast-forward.
func (e *Escalator) TriggerNow(fingerprint string) {
	e.lock.Lock()
	var entry *escalationEntry
	if pending, ok := e.byFp[fingerprint]; ok {
		pending.cancelled = true
		delete(e.byFp, fingerprint)
		entry = pending
	}
	e.lock.Unlock()

	if entry != nil {
		e.logger.Info("fast-forward", lager.Data{"fingerprint": fingerprint, "step": entry.step})
		e.advance(entry.fingerprint, entry.step)
	}
}

// Pending reports whether the alert has an armed escalation entry.
func (e *Escalator) Pending(fingerprint string) bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	_, ok := e.byFp[fingerprint]
	return ok
}
