package command

import "fmt"

// LocationError indicates the path of the running binary or its parent
// directory could not be determined. Without it the tool cannot know
// where to look for the companion binaries, so this is fatal at
// startup.
type LocationError struct {
	// Reason is the underlying error.
	Reason error
}

// Error returns a message describing the location failure.
func (e *LocationError) Error() string {
	return fmt.Sprintf("unable to resolve companion binaries location: %v", e.Reason)
}

// Unwrap returns the underlying error.
func (e *LocationError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *LocationError) Is(target error) bool {
	_, ok := target.(*LocationError)
	return ok
}

// ExecutionError indicates a child process exited non-zero or could not
// be spawned at all. It carries both captured streams verbatim so the
// caller can surface a complete diagnostic without re-running anything.
type ExecutionError struct {
	// Cmd is a rendering of the attempted command line.
	Cmd string
	// Stdout is the captured standard output.
	Stdout []byte
	// Stderr is the captured standard error.
	Stderr []byte
	// Reason is the underlying error from the process runtime.
	Reason error
}

// Error returns a diagnostic message including both captured streams.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s failed: %v\nstdout:\n%s\nstderr:\n%s",
		e.Cmd, e.Reason, e.Stdout, e.Stderr)
}

// Unwrap returns the underlying error.
func (e *ExecutionError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ExecutionError) Is(target error) bool {
	_, ok := target.(*ExecutionError)
	return ok
}

// DecodeError indicates a child process succeeded but its output did
// not parse as the expected JSON shape or did not match the version
// banner pattern. It is distinct from ExecutionError so callers can
// tell "tool is broken" from "tool's contract changed".
type DecodeError struct {
	// Cmd is a rendering of the command whose output failed to decode.
	Cmd string
	// Output is the literal unparsed output.
	Output []byte
	// Reason is the underlying decode error.
	Reason error
}

// Error returns a diagnostic message including the literal output.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode output of %s: %v\noutput:\n%s",
		e.Cmd, e.Reason, e.Output)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}
