// Package notify posts report completion messages to Slack.
package notify

import (
	"context"

	"github.com/spf13/viper"
)

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// NewFromConfig returns the configured notifier, or a no-op when slack
// notifications are disabled.
func NewFromConfig() Notifier {
	if !viper.GetBool("notifications.slack.enabled") {
		return noopNotifier{}
	}
	url := viper.GetString("notifications.slack.webhook_url")
	if url == "" {
		return noopNotifier{}
	}
	return NewSlackNotifier(url)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string) error { return nil }
