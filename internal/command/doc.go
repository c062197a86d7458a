// Package command locates and drives the two companion executables of
// a Golem provider node: the yagna core daemon and the ya-provider
// agent. The node is controlled and queried exclusively through the
// command-line surface of those binaries; this package builds the
// invocations, runs them, and decodes their textual or JSON replies
// into typed values.
//
// The entry point is Locate, which resolves the directory holding the
// companion binaries (or falls back to PATH) and hands out typed
// command builders:
//
//	set, err := command.Locate()
//	if err != nil {
//		return err
//	}
//	id, err := set.Daemon().DefaultID(ctx)
//
// Every operation spawns exactly one child process and awaits its
// completion. There is no timeout: a hung child hangs the calling
// operation until the context is canceled, at which point the child is
// killed.
package command
