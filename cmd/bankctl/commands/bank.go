package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bankagent/internal/services/bank"

	"github.com/spf13/cobra"
)

func bankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage remote bank ledgers",
	}
	cmd.AddCommand(bankAddCmd(), bankListCmd())
	return cmd
}

func bankAddCmd() *cobra.Command {
	var in bank.CreateInput

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a remote bank ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]

			b, err := appCtx.Banks.Create(cmd.Context(), in)
			if err != nil {
				return describe(err)
			}
			fmt.Printf("Registered bank %d (%s)\n", b.ID, b.UUID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.UUID, "uuid", "", "bank UUID as known to other ledgers")
	cmd.Flags().StringVar(&in.URL, "url", "", "ledger API base URL")
	cmd.Flags().StringVar(&in.Token, "token", "", "ledger API token")
	_ = cmd.MarkFlagRequired("uuid")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func bankListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered banks",
		RunE: func(cmd *cobra.Command, args []string) error {
			banks, err := appCtx.Banks.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tUUID\tURL")
			for _, b := range banks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Name, b.UUID, b.URL)
			}
			return w.Flush()
		},
	}
}
