package alertengine

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"obsengine/helpers"
	"obsengine/models"
)

type Evaluator struct {
	logger   lager.Logger
	clock    clock.Clock
	ruleChan chan *models.AlertRule
	engine   *Engine
	doneChan chan bool
}

func NewEvaluator(logger lager.Logger, eclock clock.Clock, ruleChan chan *models.AlertRule, engine *Engine) *Evaluator {
	return &Evaluator{
		logger:   logger.Session("evaluator"),
		clock:    eclock,
		ruleChan: ruleChan,
		engine:   engine,
		doneChan: make(chan bool),
	}
}

func (ev *Evaluator) Start() {
	go ev.run()
}

func (ev *Evaluator) Stop() {
	close(ev.doneChan)
}

func (ev *Evaluator) run() {
	for {
		select {
		case <-ev.doneChan:
			return
		case rule := <-ev.ruleChan:
			ev.evaluate(rule)
		}
	}
}

// AlertFingerprint identifies the alert instance a rule produces for its
// label set. Two rules with identical conditions but different labels fire
// independent alerts.
func AlertFingerprint(rule *models.AlertRule) string {
	return helpers.Fingerprint(models.SeriesKey(rule.Id, rule.Labels))
}

func (ev *Evaluator) evaluate(rule *models.AlertRule) {
	expr, err := ParseCondition(rule.Id, rule.Condition)
	if err != nil {
		ev.logger.Error("invalid-rule-condition", err, lager.Data{"rule_id": rule.Id})
		return
	}

	fingerprint := AlertFingerprint(rule)
	mu := ev.engine.fingerprintMutex(fingerprint)
	mu.Lock()
	defer mu.Unlock()

	now := ev.clock.Now()
	matchers := exactMatchers(rule.Labels)

	breachNow, err := expr.Evaluate(&EvalContext{
		Query:    ev.engine.query,
		Matchers: matchers,
		Now:      now,
		Window:   0,
	})
	if err != nil {
		ev.logger.Error("failed-to-evaluate-rule", err, lager.Data{"rule_id": rule.Id})
		return
	}

	event, err := ev.engine.alertDB.GetAlertEvent(fingerprint)
	if err != nil {
		ev.logger.Error("failed-to-load-alert-event", err, lager.Data{"fingerprint": fingerprint})
		return
	}

	if event == nil || event.State == models.AlertStateResolved {
		if breachNow {
			ev.openPending(rule, fingerprint, now)
		}
		return
	}

	switch event.State {
	case models.AlertStatePending:
		ev.evaluatePending(rule, expr, event, matchers, breachNow, now)
	case models.AlertStateFiring, models.AlertStateAcknowledged:
		if !breachNow {
			if err := ev.engine.resolveEvent(event); err != nil {
				ev.logger.Error("failed-to-resolve-alert", err, lager.Data{"fingerprint": fingerprint})
				return
			}
			ev.logger.Info("alert-resolved", lager.Data{"fingerprint": fingerprint, "rule_id": rule.Id})
			return
		}
		event.LastEvaluated = now.UnixNano()
		if _, err := ev.engine.alertDB.UpdateAlertEvent(event); err != nil {
			ev.logger.Error("failed-to-touch-alert-event", err, lager.Data{"fingerprint": fingerprint})
		}
	}
}

func (ev *Evaluator) openPending(rule *models.AlertRule, fingerprint string, now time.Time) {
	event := &models.AlertEvent{
		Fingerprint:    fingerprint,
		RuleId:         rule.Id,
		RuleName:       rule.Name,
		State:          models.AlertStatePending,
		Severity:       rule.Severity,
		Labels:         rule.Labels,
		FirstTriggered: now.UnixNano(),
		LastEvaluated:  now.UnixNano(),
		Version:        1,
	}
	if err := ev.engine.alertDB.CreateAlertEvent(event); err != nil {
		ev.logger.Error("failed-to-create-alert-event", err, lager.Data{"fingerprint": fingerprint})
		return
	}
	ev.logger.Info("alert-pending", lager.Data{"fingerprint": fingerprint, "rule_id": rule.Id})

	if rule.ForDuration() == 0 {
		ev.fire(rule, event, now)
	}
}

// evaluatePending either fires the alert once the breach has been sustained
// for the rule's hold duration, or drops it back to resolved the moment the
// condition clears. A pending alert that clears never notifies.
func (ev *Evaluator) evaluatePending(rule *models.AlertRule, expr Expr, event *models.AlertEvent,
	matchers []models.LabelMatcher, breachNow bool, now time.Time) {
	if !breachNow {
		if err := ev.engine.resolveEvent(event); err != nil {
			ev.logger.Error("failed-to-clear-pending-alert", err, lager.Data{"fingerprint": event.Fingerprint})
		}
		return
	}

	holdFor := rule.ForDuration()
	if now.UnixNano()-event.FirstTriggered < holdFor.Nanoseconds() {
		event.LastEvaluated = now.UnixNano()
		if _, err := ev.engine.alertDB.UpdateAlertEvent(event); err != nil {
			ev.logger.Error("failed-to-touch-alert-event", err, lager.Data{"fingerprint": event.Fingerprint})
		}
		return
	}

	sustained, err := expr.Evaluate(&EvalContext{
		Query:    ev.engine.query,
		Matchers: matchers,
		Now:      now,
		Window:   holdFor,
	})
	if err != nil {
		ev.logger.Error("failed-to-evaluate-breach-window", err, lager.Data{"rule_id": rule.Id})
		return
	}
	if !sustained {
		// breached at the edges but not across the whole window; restart the clock
		event.FirstTriggered = now.UnixNano()
		event.LastEvaluated = now.UnixNano()
		if _, err := ev.engine.alertDB.UpdateAlertEvent(event); err != nil {
			ev.logger.Error("failed-to-restart-pending-window", err, lager.Data{"fingerprint": event.Fingerprint})
		}
		return
	}
	ev.fire(rule, event, now)
}

func (ev *Evaluator) fire(rule *models.AlertRule, event *models.AlertEvent, now time.Time) {
	event.State = models.AlertStateFiring
	event.LastEvaluated = now.UnixNano()
	event.EscalationStep = 0
	applied, err := ev.engine.alertDB.UpdateAlertEvent(event)
	if err != nil {
		ev.logger.Error("failed-to-fire-alert", err, lager.Data{"fingerprint": event.Fingerprint})
		return
	}
	if !applied {
		// another evaluator won the transition
		return
	}
	ev.logger.Info("alert-firing", lager.Data{"fingerprint": event.Fingerprint, "rule_id": rule.Id, "severity": event.Severity})

	ev.engine.notifyStateChange(event)
	if len(rule.Escalation) > 0 {
		ev.engine.dispatch(event, rule.Escalation[0].Channel, 0)
		ev.engine.escalator.Schedule(event.Fingerprint, rule.Escalation, 1)
	}
}

func exactMatchers(labels map[string]string) []models.LabelMatcher {
	matchers := make([]models.LabelMatcher, 0, len(labels))
	for name, value := range labels {
		matchers = append(matchers, models.LabelMatcher{Name: name, Value: value})
	}
	return matchers
}
