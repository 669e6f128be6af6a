package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	foundCmd := &cobra.Command{Use: "found", Short: "Found item operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List found items",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResponse(newClient().R().Get("/api/found"))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	foundCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get ITEM_ID",
		Short: "Get a found item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResponse(newClient().R().Get("/api/found/" + args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	foundCmd.AddCommand(getCmd)

	var desc, date, timeOfDay, location, contentInfo, imagePath string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Report a found item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if desc == "" {
				return fmt.Errorf("--description required")
			}
			fields := map[string]string{
				"description": desc,
				"found_date":  date,
				"found_time":  timeOfDay,
				"location":    location,
			}
			if contentInfo != "" {
				fields["content_info"] = contentInfo
			}
			req := newClient().R().SetMultipartFormData(fields)
			if imagePath != "" {
				req.SetFile("image", imagePath)
			}
			resp, err := checkResponse(req.Post("/api/found"))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	createCmd.Flags().StringVarP(&desc, "description", "d", "", "Item description (required)")
	createCmd.Flags().StringVar(&date, "date", "", "Date found (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&timeOfDay, "time", "", "Time found (HH:MM)")
	createCmd.Flags().StringVarP(&location, "location", "l", "", "Where it was found")
	createCmd.Flags().StringVar(&contentInfo, "content-info", "", "Notes about the contents")
	createCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to a photo to attach")
	_ = createCmd.MarkFlagRequired("description")
	foundCmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete ITEM_ID",
		Short: "Delete a found item (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenFlag == "" {
				return fmt.Errorf("--token required for delete")
			}
			resp, err := checkResponse(newClient().R().Delete("/api/found/" + args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resp.String())
			return nil
		},
	}
	foundCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(foundCmd)
}
