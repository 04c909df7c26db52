package notifier

import (
	"code.cloudfoundry.org/lager"

	"obsengine/models"
)

// LogChannel writes notifications to the process log. Used as the fallback
// terminal step of an escalation chain; it never fails.
type LogChannel struct {
	logger lager.Logger
	name   string
}

func NewLogChannel(logger lager.Logger, name string) *LogChannel {
	return &LogChannel{logger: logger.Session("log-channel"), name: name}
}

func (l *LogChannel) Name() string {
	return l.name
}

func (l *LogChannel) Send(payload *models.NotificationPayload) error {
	l.logger.Info("notification", lager.Data{
		"fingerprint": payload.Fingerprint,
		"attempt":     payload.Attempt,
		"rule_name":   payload.RuleName,
		"state":       payload.State,
		"severity":    payload.Severity,
		"labels":      payload.Labels,
	})
	return nil
}
