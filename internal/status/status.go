// Package status aggregates the typed node queries into a single
// report. Sections are collected concurrently and degrade
// independently: a failing subprocess marks its section with the full
// diagnostic instead of aborting the whole report.
package status

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"golemstat/internal/command"
	"golemstat/internal/payment"
	"golemstat/pkg/logging"
)

const statusSubsystem = "Status"

// Options selects the payment deployment context for the report.
type Options struct {
	Network payment.NetworkName
	Driver  payment.Driver
}

// Report is the assembled node status. Nil section pointers have a
// corresponding entry in Errors explaining what went wrong, with enough
// context to reconstruct the failure without re-running anything.
type Report struct {
	Network      payment.NetworkName  `json:"network"`
	NetworkGroup payment.NetworkGroup `json:"networkGroup"`

	Identity        *command.Identity       `json:"identity,omitempty"`
	Version         *command.VersionInfo    `json:"version,omitempty"`
	ProviderVersion *command.VersionRaw     `json:"providerVersion,omitempty"`
	Config          *command.ProviderConfig `json:"config,omitempty"`
	Payment         *payment.StatusResult   `json:"payment,omitempty"`
	Invoices        *payment.InvoiceStats   `json:"invoices,omitempty"`
	Activity        *command.ActivityStatus `json:"activity,omitempty"`

	Errors map[string]string `json:"errors,omitempty"`
}

// Account returns the payment account the report settled on: the
// provider's configured account when set, the default identity
// otherwise.
func (r *Report) Account() string {
	if r.Config != nil && r.Config.Account != nil && *r.Config.Account != "" {
		return *r.Config.Account
	}
	if r.Identity != nil {
		return r.Identity.NodeID
	}
	return ""
}

// PendingUpdate returns the pending release when the daemon reports
// one.
func (r *Report) PendingUpdate() *command.Release {
	if r.Version == nil {
		return nil
	}
	return r.Version.Pending
}

// Collect gathers every status section. It always returns a report;
// with no reachable node every section is degraded. Cancellation of ctx
// propagates into the child processes.
func Collect(ctx context.Context, set *command.ExecutableSet, opts Options) *Report {
	report := &Report{
		Network:      opts.Network,
		NetworkGroup: payment.GroupOf(opts.Network),
		Errors:       map[string]string{},
	}

	var mu sync.Mutex
	fail := func(section string, err error) {
		logging.Error(statusSubsystem, err, "%s query failed", section)
		mu.Lock()
		report.Errors[section] = err.Error()
		mu.Unlock()
	}

	daemon := set.Daemon()
	provider := set.Provider()

	// First wave: everything that does not depend on the account.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if id, err := daemon.DefaultID(gctx); err != nil {
			fail("identity", err)
		} else {
			report.Identity = id
		}
		return nil
	})
	g.Go(func() error {
		if info, err := daemon.Version(gctx); err != nil {
			fail("version", err)
		} else {
			report.Version = info
		}
		return nil
	})
	g.Go(func() error {
		if raw, err := provider.VersionRaw(gctx); err != nil {
			fail("provider version", err)
		} else {
			report.ProviderVersion = raw
		}
		return nil
	})
	g.Go(func() error {
		if config, err := provider.Config(gctx); err != nil {
			fail("config", err)
		} else {
			report.Config = config
		}
		return nil
	})
	g.Go(func() error {
		if stats, err := daemon.InvoiceStatus(gctx); err != nil {
			fail("invoices", err)
		} else {
			report.Invoices = stats
		}
		return nil
	})
	g.Go(func() error {
		if activity, err := daemon.ActivityStatus(gctx); err != nil {
			fail("activity", err)
		} else {
			report.Activity = activity
		}
		return nil
	})
	_ = g.Wait() // workers record their own failures

	// Second wave: payment status needs the account settled above.
	account := report.Account()
	if account == "" {
		fail("payment", errNoAccount)
		return report
	}
	if result, err := daemon.PaymentStatus(ctx, account, opts.Network, opts.Driver); err != nil {
		fail("payment", err)
	} else {
		report.Payment = result
	}

	return report
}

var errNoAccount = noAccountError{}

type noAccountError struct{}

func (noAccountError) Error() string {
	return "no payment account: provider config and default identity both unavailable"
}
