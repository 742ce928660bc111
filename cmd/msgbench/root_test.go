package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"generate", "summary", "report", "view", "browse", "serve", "import", "history", "init"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %s should be registered", name)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	exitCode := -1
	origExit := exit
	exit = func(code int) { exitCode = code }
	defer func() { exit = origExit }()

	rootCmd.SetArgs([]string{"definitely-not-a-command"})
	Execute()

	assert.Equal(t, 1, exitCode)
}

func TestServeMissingDir(t *testing.T) {
	_, err := executeCommand(t, "serve", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestBrowseMissingDir(t *testing.T) {
	_, err := executeCommand(t, "browse", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
