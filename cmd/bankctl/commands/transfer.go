package commands

import (
	"fmt"

	"bankagent/internal/services/request"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func transferCmd() *cobra.Command {
	var (
		in     request.SubmitInput
		amount string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Submit one transfer and print its outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}
			in.Amount = amt

			req, err := appCtx.Transfers.Submit(cmd.Context(), in)
			if req == nil {
				return describe(err)
			}

			state := "completed"
			if !req.Completed {
				state = "failed"
			}
			fmt.Printf("Transfer %d %s: %s\n", req.ID, state, *req.ServiceDetail)
			for _, leg := range req.Legs {
				fmt.Printf("  %-8s %s  %s  %s\n", leg.Name, leg.Bank, leg.Status, leg.Detail)
			}
			return err
		},
	}

	cmd.Flags().UintVar(&in.SourceBankID, "from-bank", 0, "source bank id")
	cmd.Flags().StringVar(&in.SourceAccountID, "from-account", "", "source account UUID")
	cmd.Flags().UintVar(&in.DestinationBankID, "to-bank", 0, "destination bank id")
	cmd.Flags().StringVar(&in.DestinationAccountID, "to-account", "", "destination account UUID")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, at most two decimal places")
	cmd.Flags().StringVar(&in.Info, "info", "", "description shown to both banks")
	for _, f := range []string{"from-bank", "from-account", "to-bank", "to-account", "amount", "info"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
