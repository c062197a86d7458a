package command

import (
	"sort"
	"strings"
)

// Spec is a ready-to-run process descriptor: a program, its ordered
// argument list and environment variable overrides. Specs are immutable
// once built; each typed operation derives a fresh one via WithArgs.
type Spec struct {
	// Program is the path or bare name of the executable.
	Program string
	// Args is the ordered argument list, without the program itself.
	Args []string
	// Env holds environment overrides applied on top of the parent
	// environment. Keys are unique.
	Env map[string]string
}

// WithArgs returns a copy of the spec with the given arguments
// appended. The receiver is left untouched.
func (s Spec) WithArgs(args ...string) Spec {
	combined := make([]string, 0, len(s.Args)+len(args))
	combined = append(combined, s.Args...)
	combined = append(combined, args...)
	return Spec{Program: s.Program, Args: combined, Env: s.Env}
}

// String renders the spec the way it would look on a shell command
// line, environment overrides first. Used in diagnostics and debug
// logs.
func (s Spec) String() string {
	parts := make([]string, 0, len(s.Env)+len(s.Args)+1)
	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+s.Env[k])
	}
	parts = append(parts, s.Program)
	parts = append(parts, s.Args...)
	return strings.Join(parts, " ")
}
