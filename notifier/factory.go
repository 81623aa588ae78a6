package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Config selects and configures the mail transport
type Config struct {
	Type      string // log, smtp or ses
	From      string
	SMTP      SMTPConfig
	SESRegion string
}

// New builds a Notifier for the configured transport
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*EmailNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var sender Sender
	switch cfg.Type {
	case "", "log":
		sender = NewLogSender(logger)
	case "smtp":
		if cfg.SMTP.Host == "" {
			return nil, fmt.Errorf("smtp notifier requires a host")
		}
		sender = NewSMTPSender(cfg.SMTP)
	case "ses":
		sesSender, err := NewSESSender(ctx, cfg.SESRegion)
		if err != nil {
			return nil, err
		}
		sender = sesSender
	default:
		return nil, fmt.Errorf("unknown notifier type: %s", cfg.Type)
	}
	return NewEmailNotifier(sender, cfg.From, logger), nil
}
