package alertengine

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/db"
	"obsengine/metricstore"
	"obsengine/models"
)

var errConcurrentUpdate = errors.New("concurrent update")

// DispatchFunc hands a firing alert to the notification dispatcher for the
// given escalation step. Delivery retries happen downstream; the engine only
// records which step was handed off.
type DispatchFunc func(event *models.AlertEvent, channel string, step int)

// StateListenerFunc observes alert state transitions after they commit.
// The incident manager hangs off this to correlate firing alerts and to
// recompute severity when constituents resolve.
type StateListenerFunc func(event *models.AlertEvent)

type Engine struct {
	logger             lager.Logger
	clock              clock.Clock
	evaluationInterval time.Duration
	alertDB            db.AlertDB
	query              metricstore.QueryFunc
	escalator          *Escalator
	dispatch           DispatchFunc
	stateListener      StateListenerFunc
	evaluatorCount     int

	ruleChan   chan *models.AlertRule
	evaluators []*Evaluator
	doneChan   chan bool
	lastFanOut map[string]time.Time

	fpLock  sync.Mutex
	fpMutex map[string]*sync.Mutex
}

func NewEngine(logger lager.Logger, eclock clock.Clock, evaluationInterval time.Duration, escalationCheckInterval time.Duration,
	evaluatorCount int, channelSize int, alertDB db.AlertDB, query metricstore.QueryFunc, dispatch DispatchFunc) *Engine {
	engine := &Engine{
		logger:             logger.Session("alert-engine"),
		clock:              eclock,
		evaluationInterval: evaluationInterval,
		alertDB:            alertDB,
		query:              query,
		dispatch:           dispatch,
		evaluatorCount:     evaluatorCount,
		ruleChan:           make(chan *models.AlertRule, channelSize),
		doneChan:           make(chan bool),
		lastFanOut:         map[string]time.Time{},
		fpMutex:            map[string]*sync.Mutex{},
	}
	engine.escalator = NewEscalator(logger, eclock, escalationCheckInterval, engine.advanceEscalation)
	return engine
}

// SetStateListener must be called before Start.
func (e *Engine) SetStateListener(listener StateListenerFunc) {
	e.stateListener = listener
}

func (e *Engine) notifyStateChange(event *models.AlertEvent) {
	if e.stateListener != nil {
		e.stateListener(event)
	}
}

func (e *Engine) Start() error {
	if err := e.reconstruct(); err != nil {
		return err
	}
	for i := 0; i < e.evaluatorCount; i++ {
		evaluator := NewEvaluator(e.logger, e.clock, e.ruleChan, e)
		e.evaluators = append(e.evaluators, evaluator)
		evaluator.Start()
	}
	e.escalator.Start()
	go e.startRuleEvaluation()
	e.logger.Info("started", lager.Data{"evaluation_interval": e.evaluationInterval.String(), "evaluators": e.evaluatorCount})
	return nil
}

func (e *Engine) Stop() {
	close(e.doneChan)
	e.escalator.Stop()
	for _, evaluator := range e.evaluators {
		evaluator.Stop()
	}
	e.logger.Info("stopped")
}

// reconstruct re-arms escalation timers for alerts that were firing when
// the process last stopped, resuming each chain at the step after the last
// one that was delivered.
func (e *Engine) reconstruct() error {
	events, err := e.alertDB.RetrieveAlertEvents([]models.AlertState{models.AlertStateFiring}, 0, e.clock.Now().UnixNano())
	if err != nil {
		e.logger.Error("failed-to-reconstruct-escalations", err)
		return err
	}
	for _, event := range events {
		rule, err := e.alertDB.GetRule(event.RuleId)
		if err != nil || rule == nil {
			continue
		}
		e.escalator.Schedule(event.Fingerprint, rule.Escalation, event.EscalationStep+1)
	}
	if len(events) > 0 {
		e.logger.Info("reconstructed-escalations", lager.Data{"firing": len(events)})
	}
	return nil
}

func (e *Engine) startRuleEvaluation() {
	ticker := e.clock.NewTicker(e.evaluationInterval)
	defer ticker.Stop()
	for {
		select {
		case <-e.doneChan:
			return
		case <-ticker.C():
			e.fanOutRules()
		}
	}
}

// fanOutRules pushes every due rule to the evaluators. A rule whose own
// evaluation interval spans several global ticks is held back until it has
// elapsed; lastFanOut is only touched on the ticker goroutine.
func (e *Engine) fanOutRules() {
	rules, err := e.alertDB.RetrieveRules()
	if err != nil {
		e.logger.Error("failed-to-retrieve-rules", err)
		return
	}
	now := e.clock.Now()
	for _, rule := range rules {
		if rule.Invalid {
			continue
		}
		if interval := time.Duration(rule.EvalIntervalSecs) * time.Second; interval > 0 {
			if last, ok := e.lastFanOut[rule.Id]; ok && now.Sub(last) < interval {
				continue
			}
		}
		e.lastFanOut[rule.Id] = now
		e.ruleChan <- rule
	}
}

// fingerprintMutex serializes transitions for a single alert so concurrent
// evaluations of the same rule collapse to one state change. Cross-process
// races are still caught by the versioned update in the store.
func (e *Engine) fingerprintMutex(fingerprint string) *sync.Mutex {
	e.fpLock.Lock()
	defer e.fpLock.Unlock()
	mu, ok := e.fpMutex[fingerprint]
	if !ok {
		mu = &sync.Mutex{}
		e.fpMutex[fingerprint] = mu
	}
	return mu
}

// Acknowledge moves a firing alert to acknowledged and disarms its
// escalation chain. The alert stays acknowledged until its condition clears.
func (e *Engine) Acknowledge(fingerprint string, actor string) error {
	mu := e.fingerprintMutex(fingerprint)
	mu.Lock()
	defer mu.Unlock()

	event, err := e.alertDB.GetAlertEvent(fingerprint)
	if err != nil {
		return err
	}
	if event == nil || event.State != models.AlertStateFiring {
		return &models.ValidationError{Field: "state", Reason: "alert is not firing"}
	}
	now := e.clock.Now().UnixNano()
	event.State = models.AlertStateAcknowledged
	event.AckActor = actor
	event.AckAt = now
	event.LastEvaluated = now
	applied, err := e.alertDB.UpdateAlertEvent(event)
	if err != nil {
		return err
	}
	if !applied {
		return &models.TransientStoreError{Op: "acknowledge-alert", Err: errConcurrentUpdate}
	}
	e.escalator.Cancel(fingerprint)
	e.notifyStateChange(event)
	e.logger.Info("alert-acknowledged", lager.Data{"fingerprint": fingerprint, "actor": actor})
	return nil
}

// ForceResolve resolves an alert regardless of its condition, for manual
// operator intervention.
func (e *Engine) ForceResolve(fingerprint string, actor string) error {
	mu := e.fingerprintMutex(fingerprint)
	mu.Lock()
	defer mu.Unlock()

	event, err := e.alertDB.GetAlertEvent(fingerprint)
	if err != nil {
		return err
	}
	if event == nil || !event.IsActive() {
		return &models.ValidationError{Field: "state", Reason: "alert is not active"}
	}
	if err := e.resolveEvent(event); err != nil {
		return err
	}
	e.logger.Info("alert-force-resolved", lager.Data{"fingerprint": fingerprint, "actor": actor})
	return nil
}

func (e *Engine) resolveEvent(event *models.AlertEvent) error {
	now := e.clock.Now().UnixNano()
	event.State = models.AlertStateResolved
	event.ResolvedAt = now
	event.LastEvaluated = now
	applied, err := e.alertDB.UpdateAlertEvent(event)
	if err != nil {
		return err
	}
	if !applied {
		return &models.TransientStoreError{Op: "resolve-alert", Err: errConcurrentUpdate}
	}
	e.escalator.Cancel(event.Fingerprint)
	e.notifyStateChange(event)
	return nil
}

// advanceEscalation fires one escalation step and arms the next. The alert
// is re-read first; an alert that resolved or was acknowledged while the
// timer was pending delivers nothing.
func (e *Engine) advanceEscalation(fingerprint string, step int) {
	mu := e.fingerprintMutex(fingerprint)
	mu.Lock()
	defer mu.Unlock()

	event, err := e.alertDB.GetAlertEvent(fingerprint)
	if err != nil {
		e.logger.Error("failed-to-load-alert-for-escalation", err, lager.Data{"fingerprint": fingerprint})
		return
	}
	if event == nil || event.State != models.AlertStateFiring {
		return
	}
	rule, err := e.alertDB.GetRule(event.RuleId)
	if err != nil || rule == nil || step >= len(rule.Escalation) {
		return
	}

	event.EscalationStep = step
	applied, err := e.alertDB.UpdateAlertEvent(event)
	if err != nil || !applied {
		e.logger.Error("failed-to-record-escalation-step", err, lager.Data{"fingerprint": fingerprint, "step": step})
		return
	}
	e.dispatch(event, rule.Escalation[step].Channel, step)
	e.escalator.Schedule(fingerprint, rule.Escalation, step+1)
}

// EscalateNow fast-forwards the escalation chain after a delivery failed
// permanently, so the next channel is tried without waiting out its delay.
func (e *Engine) EscalateNow(fingerprint string) {
	e.escalator.TriggerNow(fingerprint)
}
