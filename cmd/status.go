package cmd

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"golemstat/internal/command"
	"golemstat/internal/payment"
	"golemstat/internal/render"
	"golemstat/internal/status"
)

// newStatusCmd creates the Cobra command that assembles and prints the
// node status report.
func newStatusCmd() *cobra.Command {
	var (
		networkFlag string
		driverFlag  string
		outputFlag  string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show provider node status",
		Long: `Queries the yagna daemon and the ya-provider agent for identity,
version, configuration, payment, invoice and activity information and
assembles them into a single report. Sections degrade independently
when a query fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := payment.ParseNetworkName(networkFlag)
			if err != nil {
				return err
			}
			driver, err := payment.DriverByName(driverFlag)
			if err != nil {
				return err
			}
			format, err := render.ParseFormat(outputFlag)
			if err != nil {
				return err
			}

			set, err := command.Locate()
			if err != nil {
				return err
			}

			var s *spinner.Spinner
			if format == render.FormatTable {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				s.Suffix = " Querying provider node..."
				s.Start()
			}

			report := status.Collect(cmd.Context(), set, status.Options{
				Network: network,
				Driver:  driver,
			})

			if s != nil {
				s.Stop()
			}

			return render.Report(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVar(&networkFlag, "network", string(payment.NetworkMainnet),
		"payment network (mainnet, rinkeby, goerli, mumbai, polygon)")
	cmd.Flags().StringVar(&driverFlag, "driver", "erc20",
		"payment driver (erc20, zksync)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", string(render.FormatTable),
		"output format (table, json, yaml)")

	return cmd
}
