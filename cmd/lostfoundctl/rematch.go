package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rematchCmd := &cobra.Command{
		Use:   "rematch",
		Short: "Recompute the candidate-match relation (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenFlag == "" {
				return fmt.Errorf("--token required for rematch")
			}
			resp, err := checkResponse(newClient().R().Post("/api/rematch"))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(rematchCmd)
}
