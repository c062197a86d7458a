package command

import (
	"context"
	"errors"

	"golemstat/internal/payment"
)

// DaemonCommand builds and runs typed queries against the yagna core
// daemon. Obtain one from ExecutableSet.Daemon; each operation spawns
// exactly one child process.
type DaemonCommand struct {
	spec Spec
}

// Daemon returns a command builder for the core daemon. No extra
// environment is injected.
func (s *ExecutableSet) Daemon() *DaemonCommand {
	return &DaemonCommand{spec: Spec{Program: s.Program(DaemonBin)}}
}

// DefaultID fetches the daemon's default identity. The JSON payload is
// itself a success/failure union produced by the subprocess: an inner
// Err is surfaced as a plain error, distinct from a DecodeError.
func (c *DaemonCommand) DefaultID(ctx context.Context) (*Identity, error) {
	spec := c.spec.WithArgs("id", "show")

	var reply struct {
		Ok  *Identity `json:"Ok"`
		Err *string   `json:"Err"`
	}
	if err := runJSON(ctx, spec, &reply); err != nil {
		return nil, err
	}
	switch {
	case reply.Err != nil:
		return nil, errors.New(*reply.Err)
	case reply.Ok != nil:
		return reply.Ok, nil
	default:
		return nil, &DecodeError{
			Cmd:    spec.String(),
			Reason: errors.New("reply carries neither Ok nor Err"),
		}
	}
}

// Version fetches the structured version report of the daemon.
func (c *DaemonCommand) Version(ctx context.Context) (*VersionInfo, error) {
	var info VersionInfo
	if err := runJSON(ctx, c.spec.WithArgs("version", "show"), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// VersionRaw fetches and parses the daemon's free-text version banner.
func (c *DaemonCommand) VersionRaw(ctx context.Context) (*VersionRaw, error) {
	spec := c.spec.WithArgs("--version")
	stdout, err := run(ctx, spec)
	if err != nil {
		return nil, err
	}
	return decodeVersionBanner(spec.String(), stdout)
}

// PaymentStatus queries payment totals for an account on the given
// network, resolving the driver arguments through the supplied payment
// driver table. A network absent from that table fails before any
// process is spawned.
func (c *DaemonCommand) PaymentStatus(ctx context.Context, address string, network payment.NetworkName, driver payment.Driver) (*payment.StatusResult, error) {
	platform, err := driver.Platform(network)
	if err != nil {
		return nil, err
	}

	spec := c.spec.WithArgs(
		"payment", "status",
		"--account", address,
		"--network", network.String(),
		"--driver", platform.Driver,
	)

	var result payment.StatusResult
	if err := runJSON(ctx, spec, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InvoiceStatus fetches invoice totals for both node roles.
func (c *DaemonCommand) InvoiceStatus(ctx context.Context) (*payment.InvoiceStats, error) {
	var stats payment.InvoiceStats
	if err := runJSON(ctx, c.spec.WithArgs("payment", "invoice", "status"), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ActivityStatus fetches activity counters.
func (c *DaemonCommand) ActivityStatus(ctx context.Context) (*ActivityStatus, error) {
	var status ActivityStatus
	if err := runJSON(ctx, c.spec.WithArgs("activity", "status"), &status); err != nil {
		return nil, err
	}
	return &status, nil
}
