package notifier

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/cenkalti/backoff/v4"
	cache "github.com/patrickmn/go-cache"
	circuit "github.com/rubyist/circuitbreaker"

	"obsengine/db"
	"obsengine/models"
)

// Channel delivers one notification payload to an external destination.
type Channel interface {
	Name() string
	Send(payload *models.NotificationPayload) error
}

// ExhaustedFunc is called when every delivery attempt for a step has
// failed, so the escalation chain can fast-forward to the next channel.
type ExhaustedFunc func(fingerprint string)

type deliveryTask struct {
	event       *models.AlertEvent
	channelName string
	step        int
}

type Dispatcher struct {
	logger         lager.Logger
	clock          clock.Clock
	notificationDB db.NotificationDB
	channels       map[string]Channel
	breakers       map[string]*circuit.Breaker
	dedup          *cache.Cache
	onExhausted    ExhaustedFunc

	maxRetries    int
	retryInterval time.Duration
	workerCount   int

	taskChan chan *deliveryTask
	doneChan chan bool
}

func NewDispatcher(logger lager.Logger, dclock clock.Clock, notificationDB db.NotificationDB, channels []Channel,
	workerCount int, queueSize int, maxRetries int, retryInterval time.Duration, breakerConsecutiveFailures int64,
	dedupTTL time.Duration, onExhausted ExhaustedFunc) *Dispatcher {
	byName := map[string]Channel{}
	breakers := map[string]*circuit.Breaker{}
	for _, ch := range channels {
		byName[ch.Name()] = ch
		breakers[ch.Name()] = circuit.NewConsecutiveBreaker(breakerConsecutiveFailures)
	}
	return &Dispatcher{
		logger:         logger.Session("dispatcher"),
		clock:          dclock,
		notificationDB: notificationDB,
		channels:       byName,
		breakers:       breakers,
		dedup:          cache.New(dedupTTL, dedupTTL),
		onExhausted:    onExhausted,
		maxRetries:     maxRetries,
		retryInterval:  retryInterval,
		workerCount:    workerCount,
		taskChan:       make(chan *deliveryTask, queueSize),
		doneChan:       make(chan bool),
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workerCount; i++ {
		go d.work()
	}
	d.logger.Info("started", lager.Data{"workers": d.workerCount, "channels": len(d.channels)})
}

func (d *Dispatcher) Stop() {
	close(d.doneChan)
	d.logger.Info("stopped")
}

// Dispatch enqueues one escalation step for delivery. It drops the task
// when the queue is full rather than blocking the alert engine; a dropped
// step is retried by the next escalation timer.
func (d *Dispatcher) Dispatch(event *models.AlertEvent, channelName string, step int) {
	select {
	case d.taskChan <- &deliveryTask{event: event, channelName: channelName, step: step}:
	default:
		d.logger.Error("delivery-queue-full", nil, lager.Data{"fingerprint": event.Fingerprint, "channel": channelName})
	}
}

func (d *Dispatcher) work() {
	for {
		select {
		case <-d.doneChan:
			return
		case task := <-d.taskChan:
			d.deliver(task)
		}
	}
}

func (d *Dispatcher) deliver(task *deliveryTask) {
	logger := d.logger.Session("deliver", lager.Data{"fingerprint": task.event.Fingerprint, "channel": task.channelName, "step": task.step})

	dedupKey := fmt.Sprintf("%s:%d:%s", task.event.Fingerprint, task.step, task.channelName)
	if _, seen := d.dedup.Get(dedupKey); seen {
		logger.Debug("duplicate-step-skipped")
		return
	}

	ch, ok := d.channels[task.channelName]
	if !ok {
		logger.Error("unknown-channel", nil)
		d.onExhausted(task.event.Fingerprint)
		return
	}
	breaker := d.breakers[task.channelName]

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.retryInterval
	bo.MaxElapsedTime = 0

	var lastErr error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		payload := &models.NotificationPayload{
			Fingerprint: task.event.Fingerprint,
			Attempt:     attempt,
			RuleName:    task.event.RuleName,
			State:       task.event.State,
			Severity:    task.event.Severity,
			Labels:      task.event.Labels,
			Timestamp:   d.clock.Now().UnixNano(),
		}
		lastErr = breaker.Call(func() error { return ch.Send(payload) }, 0)
		if lastErr == nil {
			d.logAttempt(task, attempt, models.DeliveryStatusSent)
			d.dedup.SetDefault(dedupKey, true)
			logger.Debug("sent", lager.Data{"attempt": attempt})
			return
		}
		if attempt < d.maxRetries {
			d.logAttempt(task, attempt, models.DeliveryStatusRetrying)
			d.clock.Sleep(bo.NextBackOff())
		} else {
			d.logAttempt(task, attempt, models.DeliveryStatusFailed)
		}
	}

	deliveryErr := &models.DeliveryError{Channel: task.channelName, Attempts: d.maxRetries, Err: lastErr}
	logger.Error("delivery-exhausted", deliveryErr)
	d.dedup.SetDefault(dedupKey, true)
	d.onExhausted(task.event.Fingerprint)
}

// logAttempt records the outcome of a single attempt. A store failure here
// never blocks delivery; the log is best effort.
func (d *Dispatcher) logAttempt(task *deliveryTask, attempt int, status models.DeliveryStatus) {
	err := d.notificationDB.SaveNotificationLog(&models.NotificationLog{
		Fingerprint: task.event.Fingerprint,
		Channel:     task.channelName,
		Attempt:     attempt,
		Status:      status,
		Timestamp:   d.clock.Now().UnixNano(),
	})
	if err != nil {
		d.logger.Error("failed-to-save-notification-log", err, lager.Data{"fingerprint": task.event.Fingerprint})
	}
}
