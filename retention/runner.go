package retention

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

type Task interface {
	Run()
}

// Runner drives one retention task on a fixed interval. The task runs once
// immediately on start so a restart never postpones retention by a full
// interval.
type Runner struct {
	task     Task
	name     string
	interval time.Duration
	clock    clock.Clock
	doneChan chan bool
	logger   lager.Logger
}

func NewRunner(task Task, name string, interval time.Duration, rclock clock.Clock, logger lager.Logger) *Runner {
	return &Runner{
		task:     task,
		name:     name,
		interval: interval,
		clock:    rclock,
		logger:   logger,
		doneChan: make(chan bool),
	}
}

func (r *Runner) Start() {
	go r.startTask()

	r.logger.Info(r.name+"-retention-started", lager.Data{"interval": r.interval.String()})
}

func (r *Runner) Stop() {
	close(r.doneChan)
	r.logger.Info(r.name + "-retention-stopped")
}

func (r *Runner) startTask() {
	ticker := r.clock.NewTicker(r.interval)

	for {
		r.task.Run()
		select {
		case <-r.doneChan:
			ticker.Stop()
			return
		case <-ticker.C():
		}
	}
}
