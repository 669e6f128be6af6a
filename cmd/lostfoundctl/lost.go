package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	lostCmd := &cobra.Command{Use: "lost", Short: "Lost item operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List lost items",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResponse(newClient().R().Get("/api/lost"))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	lostCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get ITEM_ID",
		Short: "Get a lost item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResponse(newClient().R().Get("/api/lost/" + args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	lostCmd.AddCommand(getCmd)

	var desc, date, timeOfDay, location, contentInfo string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Report a lost item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if desc == "" {
				return fmt.Errorf("--description required")
			}
			payload := map[string]interface{}{
				"description": desc,
				"lost_date":   date,
				"lost_time":   timeOfDay,
				"location":    location,
			}
			if contentInfo != "" {
				payload["content_info"] = contentInfo
			}
			resp, err := checkResponse(newClient().R().
				SetHeader("Content-Type", "application/json").
				SetBody(payload).
				Post("/api/lost"))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	createCmd.Flags().StringVarP(&desc, "description", "d", "", "Item description (required)")
	createCmd.Flags().StringVar(&date, "date", "", "Date lost (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&timeOfDay, "time", "", "Time lost (HH:MM)")
	createCmd.Flags().StringVarP(&location, "location", "l", "", "Where it went missing")
	createCmd.Flags().StringVar(&contentInfo, "content-info", "", "Notes about the contents")
	_ = createCmd.MarkFlagRequired("description")
	lostCmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete ITEM_ID",
		Short: "Delete a lost item (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenFlag == "" {
				return fmt.Errorf("--token required for delete")
			}
			resp, err := checkResponse(newClient().R().Delete("/api/lost/" + args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	lostCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(lostCmd)
}
