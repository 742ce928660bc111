package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
// Settings resolve in the usual viper order: flags bound by the commands,
// then MSGBENCH_* environment variables, then the config file, then the
// defaults below. It returns the path of the config file that was read, or
// "" when no file was found. Load runs before the logger is configured, so
// the caller is responsible for logging the path.
func Load(cfgFile string) string {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MSGBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output_dir", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("serve.port", 8780)
	viper.SetDefault("report.title", "")
	viper.SetDefault("report.subtitle", "")
	viper.SetDefault("report.overview", "")
	viper.SetDefault("history.driver", "sqlite")
	viper.SetDefault("history.path", "msgbench.db")
	viper.SetDefault("history.dsn", "")

	slackEnabled := os.Getenv("SLACK_WEBHOOK_URL") != ""
	viper.SetDefault("notifications.slack.enabled", slackEnabled)
	viper.SetDefault("notifications.slack.webhook_url", os.Getenv("SLACK_WEBHOOK_URL"))

	if err := viper.ReadInConfig(); err != nil {
		return ""
	}
	return viper.ConfigFileUsed()
}
