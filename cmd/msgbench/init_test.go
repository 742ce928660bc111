package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConfigYAML(t *testing.T) {
	t.Run("Minimal", func(t *testing.T) {
		cfg := buildConfigYAML(initAnswers{ResultsDir: "results"})
		assert.Contains(t, cfg, `results_dir: "results"`)
		assert.NotContains(t, cfg, "notifications")
		assert.NotContains(t, cfg, "report:")
	})

	t.Run("Full", func(t *testing.T) {
		cfg := buildConfigYAML(initAnswers{
			ResultsDir:   "results",
			OutputDir:    "out",
			Subtitle:     "Lab Run",
			SlackWebhook: "https://hooks.slack.com/services/x",
		})
		assert.Contains(t, cfg, `subtitle: "Lab Run"`)
		assert.Contains(t, cfg, "enabled: true")
		assert.Contains(t, cfg, `webhook_url: "https://hooks.slack.com/services/x"`)

		// Sections in a stable order
		assert.Less(t, strings.Index(cfg, "results_dir"), strings.Index(cfg, "report:"))
	})
}
