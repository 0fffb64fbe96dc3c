package model

import "context"

// Notification is one outgoing message for the mail service.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Notifier hands notifications over to the delivery channel.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
