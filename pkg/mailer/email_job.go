package mailer

import "time"

// EmailJob is the JSON payload put on the RabbitMQ queue for the email
// worker. The worker renders the verification template and delivers it.
type EmailJob struct {
	To        string    `json:"to"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
