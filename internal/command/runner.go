package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"regexp"

	"golemstat/pkg/logging"
)

const runnerSubsystem = "Runner"

// execCommandContext is a variable to allow stubbing in tests.
var execCommandContext = exec.CommandContext

// run executes a built command, capturing standard output and standard
// error independently. Standard input is always empty. A non-zero exit
// or a spawn failure yields an ExecutionError carrying both streams.
// Context cancellation kills the child process.
func run(ctx context.Context, spec Spec) ([]byte, error) {
	logging.Debug(runnerSubsystem, "running: %s", spec)

	cmd := execCommandContext(ctx, spec.Program, spec.Args...)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if len(spec.Env) > 0 {
		env := os.Environ()
		for k, v := range spec.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}

	if err := cmd.Run(); err != nil {
		return nil, &ExecutionError{
			Cmd:    spec.String(),
			Stdout: stdout.Bytes(),
			Stderr: stderr.Bytes(),
			Reason: err,
		}
	}

	return stdout.Bytes(), nil
}

// runJSON appends the global --json flag, runs the command and decodes
// captured standard output as a single JSON value into target. A decode
// failure is surfaced as a DecodeError, distinct from a non-zero exit.
func runJSON(ctx context.Context, spec Spec, target interface{}) error {
	spec = spec.WithArgs("--json")
	stdout, err := run(ctx, spec)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(stdout, target); err != nil {
		return &DecodeError{Cmd: spec.String(), Output: stdout, Reason: err}
	}
	return nil
}

// versionBannerPattern matches the free-text version banner both
// companions print for --version: a dotted version number, a short
// lowercase commit hash, a dash-separated build date and an optional
// trailing "build #N" clause.
var versionBannerPattern = regexp.MustCompile(`([0-9.]+) \(([a-z0-9]+) ([-0-9]+)( build #([0-9]+))?`)

// decodeVersionBanner matches raw --version output against the banner
// pattern. No match anywhere in the output is a DecodeError carrying
// the literal text, never an empty-but-successful result.
func decodeVersionBanner(cmdDesc string, output []byte) (*VersionRaw, error) {
	m := versionBannerPattern.FindStringSubmatch(string(output))
	if m == nil {
		return nil, &DecodeError{
			Cmd:    cmdDesc,
			Output: output,
			Reason: errors.New("output does not match version banner pattern"),
		}
	}
	return &VersionRaw{Version: m[1], Sha: m[2], Date: m[3], Build: m[5]}, nil
}
