package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

type initAnswers struct {
	ResultsDir   string `survey:"results_dir"`
	OutputDir    string `survey:"output_dir"`
	Subtitle     string `survey:"subtitle"`
	SlackWebhook string `survey:"slack_webhook"`
}

var initQuestions = []*survey.Question{
	{
		Name:   "results_dir",
		Prompt: &survey.Input{Message: "Where does the harness write result files?", Default: "results"},
	},
	{
		Name:   "output_dir",
		Prompt: &survey.Input{Message: "Where should reports be written? (empty: next to the results)"},
	},
	{
		Name:   "subtitle",
		Prompt: &survey.Input{Message: "Report subtitle (shown in summary.txt):"},
	},
	{
		Name:   "slack_webhook",
		Prompt: &survey.Input{Message: "Slack webhook URL for completion notifications (optional):"},
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat("config.yaml"); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("config.yaml already exists, use --force to overwrite")
			}
		}

		var answers initAnswers
		if err := survey.Ask(initQuestions, &answers); err != nil {
			return err
		}

		if err := os.WriteFile("config.yaml", []byte(buildConfigYAML(answers)), 0644); err != nil {
			return fmt.Errorf("writing config.yaml: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created config.yaml")
		return nil
	},
}

func buildConfigYAML(a initAnswers) string {
	cfg := fmt.Sprintf("results_dir: %q\noutput_dir: %q\n", a.ResultsDir, a.OutputDir)
	if a.Subtitle != "" {
		cfg += fmt.Sprintf("report:\n  subtitle: %q\n", a.Subtitle)
	}
	if a.SlackWebhook != "" {
		cfg += fmt.Sprintf("notifications:\n  slack:\n    enabled: true\n    webhook_url: %q\n", a.SlackWebhook)
	}
	return cfg
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config.yaml")
	rootCmd.AddCommand(initCmd)
}
