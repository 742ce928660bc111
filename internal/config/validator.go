package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Validate checks configuration values after viper has loaded them.
func Validate() error {
	var errs []string

	if port := viper.GetInt("serve.port"); port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("serve.port must be between 1 and 65535, got: %d", port))
	}

	switch driver := viper.GetString("history.driver"); driver {
	case "sqlite":
		if viper.GetString("history.path") == "" {
			errs = append(errs, "history.path is required for the sqlite history driver")
		}
	case "postgres":
		if viper.GetString("history.dsn") == "" {
			errs = append(errs, "history.dsn is required for the postgres history driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("history.driver must be sqlite or postgres, got: %q", driver))
	}

	if viper.GetBool("notifications.slack.enabled") &&
		viper.GetString("notifications.slack.webhook_url") == "" {
		errs = append(errs, "notifications.slack.webhook_url is required when slack notifications are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
