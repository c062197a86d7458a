package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	versionCmd := newVersionCmd()

	if versionCmd.Use != "version" {
		t.Errorf("Expected Use to be 'version', got %s", versionCmd.Use)
	}

	if versionCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if versionCmd.RunE == nil {
		t.Error("Expected RunE function to be set")
	}
}

func TestVersionCommandExecution(t *testing.T) {
	testVersion := "1.2.3-test"
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = testVersion

	versionCmd := newVersionCmd()
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.SetArgs([]string{})

	if err := versionCmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	output := buf.String()
	expected := "golemstat version " + testVersion + "\n"
	if output != expected {
		t.Errorf("Expected output %q, got %q", expected, output)
	}
}

func TestVersionCommandWithNodeFlag(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "yagna", "#!/bin/sh\necho 'yagna 0.9.1 (abc1234 2022-05-10 build #42)'\n")
	writeScript(t, dir, "ya-provider", "#!/bin/sh\necho 'ya-provider 0.2.7 (deadbee 2021-12-01)'\n")
	t.Setenv("PATH", dir)
	t.Setenv("HOME", t.TempDir())

	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = "1.0.0"

	versionCmd := newVersionCmd()
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.SetArgs([]string{"--node"})

	if err := versionCmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "yagna version 0.9.1 (build #42)") {
		t.Errorf("Expected daemon version in output, got %q", output)
	}
	if !strings.Contains(output, "ya-provider version 0.2.7") {
		t.Errorf("Expected provider version in output, got %q", output)
	}
}

func TestVersionCommandNodeFlagPropagatesFailure(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "yagna", "#!/bin/sh\necho 'daemon not running' >&2\nexit 1\n")
	writeScript(t, dir, "ya-provider", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", dir)
	t.Setenv("HOME", t.TempDir())

	versionCmd := newVersionCmd()
	versionCmd.SetOut(&bytes.Buffer{})
	versionCmd.SetErr(&bytes.Buffer{})
	versionCmd.SetArgs([]string{"--node"})

	err := versionCmd.Execute()
	if err == nil {
		t.Fatal("Expected error when daemon query fails")
	}
	if getExitCode(err) != ExitCodeNodeDown {
		t.Errorf("Expected exit code %d, got %d", ExitCodeNodeDown, getExitCode(err))
	}
}
