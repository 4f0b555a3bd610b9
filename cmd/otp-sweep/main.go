package main

import (
	"fmt"
	"os"

	"github.com/focus-functions/internal/application/sweep"
	"github.com/focus-functions/internal/config"
	"github.com/focus-functions/internal/infrastructure/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:          "otp-sweep",
		Short:        "Delete OTP records older than five minutes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			cfg := config.Load()

			otpStore, closeStore, err := store.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := sweep.NewService(otpStore, nil)
			out := cmd.OutOrStdout()
			if dryRun {
				plan, err := svc.Preview(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Would delete %d OTPs (cutoff %d)\n", plan.DeletedCount(), plan.Cutoff)
				for _, k := range plan.Keys {
					fmt.Fprintln(out, k)
				}
				if plan.Deferred > 0 {
					fmt.Fprintf(out, "%d more expired OTPs deferred to a later run\n", plan.Deferred)
				}
				return nil
			}

			res, err := svc.Run(cmd.Context())
			if err != nil {
				return err
			}
			if !res.Success {
				fmt.Fprintln(out, res.Message)
				return nil
			}
			fmt.Fprintf(out, "Cleanup complete. Deleted %d OTPs.\n", res.DeletedCount)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List expired OTP keys without deleting them")
	return cmd
}
