// Package notifier delivers templated email messages to candidates and attorneys.
//
// Delivery is best effort: Notify never returns an error, it reports an
// Outcome that callers may log and otherwise ignore.
package notifier

import (
	"context"
	"fmt"

	"leads-backend/validation"

	"go.uber.org/zap"
)

// TemplateKind selects the message template
type TemplateKind string

const (
	KindCandidateConfirmation TemplateKind = "candidate_confirmation"
	KindAttorneyAlert         TemplateKind = "attorney_alert"
)

// Status is the result of a single notification attempt
type Status string

const (
	StatusDelivered Status = "delivered"
	StatusDeclined  Status = "declined" // address rejected before any delivery attempt
	StatusFailed    Status = "failed"
)

// Outcome describes what happened to one notification
type Outcome struct {
	Status    Status
	MessageID string
	Err       error
}

// Delivered reports whether the message was handed to the transport
func (o Outcome) Delivered() bool { return o.Status == StatusDelivered }

// Notifier sends a templated message to one address
type Notifier interface {
	Notify(ctx context.Context, address string, kind TemplateKind, data map[string]string) Outcome
}

// Message is a rendered email ready for a transport
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender is a mail transport
type Sender interface {
	Send(ctx context.Context, msg Message) (messageID string, err error)
	Name() string
}

// EmailNotifier validates the recipient, renders the template and hands the
// message to a Sender
type EmailNotifier struct {
	sender Sender
	from   string
	logger *zap.Logger
}

// NewEmailNotifier creates a notifier sending from the given address
func NewEmailNotifier(sender Sender, from string, logger *zap.Logger) *EmailNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailNotifier{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// Notify implements Notifier
func (n *EmailNotifier) Notify(ctx context.Context, address string, kind TemplateKind, data map[string]string) Outcome {
	if !validation.IsEmail(address) {
		return Outcome{
			Status: StatusDeclined,
			Err:    fmt.Errorf("invalid email address: %q", address),
		}
	}

	subject, body, err := Render(kind, data)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	messageID, err := n.sender.Send(ctx, Message{
		From:    n.from,
		To:      address,
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		return Outcome{
			Status: StatusFailed,
			Err:    fmt.Errorf("%s delivery failed: %w", n.sender.Name(), err),
		}
	}

	n.logger.Debug("notification sent",
		zap.String("to", address),
		zap.String("kind", string(kind)),
		zap.String("provider", n.sender.Name()),
		zap.String("message_id", messageID),
	)
	return Outcome{Status: StatusDelivered, MessageID: messageID}
}
