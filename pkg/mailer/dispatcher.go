package mailer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/pkg/helpers"
	"github.com/minseoh/task-tracker/pkg/mailer/templates"
)

// Dispatcher delivers a verification code out-of-band. It may fail
// independently of the credential store; callers surface that failure and
// leave the pending account recoverable.
type Dispatcher interface {
	SendVerificationCode(ctx context.Context, to, code string, expires time.Time) error
}

// MailgunDispatcher sends the verification email synchronously via Mailgun.
type MailgunDispatcher struct {
	MG *Mailgun
}

func NewMailgunDispatcher(mg *Mailgun) *MailgunDispatcher {
	return &MailgunDispatcher{MG: mg}
}

func (d *MailgunDispatcher) SendVerificationCode(ctx context.Context, to, code string, expires time.Time) error {
	text, html, err := templates.RenderVerification(code, expires)
	if err != nil {
		return err
	}
	return d.MG.Send(ctx, to, templates.VerificationSubject, text, html)
}

// QueueDispatcher enqueues the verification email to RabbitMQ for the email
// worker. An enqueue failure is reported to the caller exactly like a send
// failure.
type QueueDispatcher struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueDispatcher(pub *helpers.RabbitPublisher) *QueueDispatcher {
	return &QueueDispatcher{Pub: pub}
}

func (d *QueueDispatcher) SendVerificationCode(ctx context.Context, to, code string, expires time.Time) error {
	return d.Pub.PublishJSON(ctx, EmailJob{To: to, Code: code, ExpiresAt: expires})
}

// LogDispatcher logs codes instead of sending mail. Used when sending is
// disabled in local development.
type LogDispatcher struct {
	Logger *logrus.Logger
}

func NewLogDispatcher(logger *logrus.Logger) *LogDispatcher {
	return &LogDispatcher{Logger: logger}
}

func (d *LogDispatcher) SendVerificationCode(_ context.Context, to, code string, expires time.Time) error {
	d.Logger.WithFields(logrus.Fields{
		"to":         to,
		"code":       code,
		"expires_at": expires.Format(time.RFC3339),
	}).Info("mail sending disabled; verification code logged")
	return nil
}
