// Package alert surfaces terminal job failures to operators.
package alert

import "fmt"

type mailer interface {
	Send(to, subject, body string) error
}

// Alerter mails operator notifications. With no recipient configured it is
// a no-op, so alerting stays optional in small deployments.
type Alerter struct {
	mailer mailer
	to     string
}

func New(m mailer, to string) *Alerter {
	return &Alerter{mailer: m, to: to}
}

func (a *Alerter) Alert(subject, body string) error {
	if a.to == "" {
		return nil
	}

	if err := a.mailer.Send(a.to, subject, body); err != nil {
		return fmt.Errorf("send alert: %w", err)
	}

	return nil
}
