// Package render turns an assembled status report into terminal
// output: rounded tables for humans, JSON or YAML for scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"golemstat/internal/status"
)

// Format represents the supported output formats.
type Format string

const (
	// FormatTable renders rounded tables for human reading.
	FormatTable Format = "table"
	// FormatJSON renders the raw report as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the report as YAML converted from JSON.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied output format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid formats: table, json, yaml)", s)
	}
}

// Report writes the status report to w in the requested format.
func Report(w io.Writer, format Format, r *status.Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		return writeYAML(w, r)
	default:
		return writeTables(w, r)
	}
}

// writeYAML converts the report through its JSON form so YAML output
// mirrors the JSON field names exactly.
func writeYAML(w io.Writer, r *status.Report) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func writeTables(w io.Writer, r *status.Report) error {
	writeNodeTable(w, r)
	writeWalletTable(w, r)
	writeActivityTable(w, r)

	if pending := r.PendingUpdate(); pending != nil {
		fmt.Fprintf(w, "%s\n",
			text.FgGreen.Sprintf("New version available: %s (%s)", pending.Version, pending.Name))
	}

	for section, message := range r.Errors {
		fmt.Fprintf(w, "%s %s\n",
			text.FgYellow.Sprintf("%s unavailable:", section), message)
	}
	return nil
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	return t
}

func writeNodeTable(w io.Writer, r *status.Report) {
	t := newTable(w, "Node")

	name := "-"
	subnet := "-"
	if r.Config != nil {
		if r.Config.NodeName != nil {
			name = *r.Config.NodeName
		}
		if r.Config.Subnet != nil {
			subnet = *r.Config.Subnet
		}
	}
	t.AppendRow(table.Row{"Name", name})

	id := "-"
	if r.Identity != nil {
		id = r.Identity.NodeID
	}
	t.AppendRow(table.Row{"ID", id})
	t.AppendRow(table.Row{"Subnet", subnet})
	t.AppendRow(table.Row{"Network", fmt.Sprintf("%s (%s)", r.Network, r.NetworkGroup)})

	if r.Version != nil {
		t.AppendRow(table.Row{"Version", r.Version.Current.Version})
	}
	if r.ProviderVersion != nil {
		t.AppendRow(table.Row{"Provider version", r.ProviderVersion.Version})
	}

	t.Render()
}

func writeWalletTable(w io.Writer, r *status.Report) {
	if r.Payment == nil {
		return
	}
	t := newTable(w, "Wallet")

	t.AppendRow(table.Row{"Address", r.Account()})
	t.AppendRow(table.Row{"Amount", amountCell(r.Payment.Amount, r.Payment.Token)})
	t.AppendRow(table.Row{"Reserved", amountCell(r.Payment.Reserved, r.Payment.Token)})

	pendingAmount, pendingCount := r.Payment.Incoming.TotalPending()
	t.AppendRow(table.Row{"Pending", summaryCell(pendingAmount, pendingCount, r.Payment.Token)})

	unconfirmedAmount, unconfirmedCount := r.Payment.Incoming.Unconfirmed()
	t.AppendRow(table.Row{"Unconfirmed", summaryCell(unconfirmedAmount, unconfirmedCount, r.Payment.Token)})

	if r.Invoices != nil {
		amount, count := r.Invoices.Provider.Unconfirmed()
		t.AppendRow(table.Row{"Unconfirmed invoices", summaryCell(amount, count, r.Payment.Token)})
	}

	t.Render()
}

func writeActivityTable(w io.Writer, r *status.Report) {
	if r.Activity == nil {
		return
	}
	t := newTable(w, "Activity")

	t.AppendRow(table.Row{"Processed (last hour)", r.Activity.Last1hProcessed()})
	t.AppendRow(table.Row{"In progress", r.Activity.InProgress()})
	t.AppendRow(table.Row{"Processed (total)", r.Activity.TotalProcessed()})
	if r.Activity.LastActivityTs != nil {
		t.AppendRow(table.Row{"Last activity", r.Activity.LastActivityTs.Format("2006-01-02 15:04:05 MST")})
	}

	t.Render()
}

func amountCell(amount decimal.Decimal, token string) string {
	return fmt.Sprintf("%s %s", amount.String(), token)
}

func summaryCell(amount decimal.Decimal, count uint64, token string) string {
	return fmt.Sprintf("%s %s (%d agreements)", amount.String(), token, count)
}
