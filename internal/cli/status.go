package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamdispo/dispo/pkg/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show team summary for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			format := getOutputFormat()
			if format != "table" {
				summary := map[string]interface{}{}

				entries, err := apiClient.ListAvailability(ctx, client.ListOptions{Period: "today"})
				if err == nil {
					summary["declarations"] = len(entries)
				}
				now, err := apiClient.ListAvailability(ctx, client.ListOptions{AvailableNow: true})
				if err == nil {
					summary["available_now"] = len(now)
				}
				feed, err := apiClient.TodayFeed(ctx)
				if err == nil {
					summary["checks_submitted"] = len(feed.Checks)
					summary["team_size"] = len(feed.Members)
				}
				return printOutput(summary)
			}

			fmt.Println("Dispo Team Status")
			fmt.Println(strings.Repeat("=", 40))

			// Today's declarations
			entries, err := apiClient.ListAvailability(ctx, client.ListOptions{Period: "today"})
			if err != nil {
				fmt.Printf("  Declarations:  (error: %v)\n", err)
			} else {
				available := 0
				for _, e := range entries {
					if e.Status != "unavailable" {
						available++
					}
				}
				fmt.Printf("  Declarations:  %d covering today (%d available or partial)\n", len(entries), available)
			}

			// Available right now
			now, err := apiClient.ListAvailability(ctx, client.ListOptions{AvailableNow: true})
			if err != nil {
				fmt.Printf("  Right now:     (error: %v)\n", err)
			} else {
				names := make([]string, 0, len(now))
				for _, e := range now {
					name := e.User.DisplayName
					if name == "" {
						name = e.User.Username
					}
					names = append(names, name)
				}
				fmt.Printf("  Right now:     %d available", len(now))
				if len(names) > 0 {
					fmt.Printf(" (%s)", truncate(strings.Join(names, ", "), 60))
				}
				fmt.Println()
			}

			// Stand-up
			feed, err := apiClient.TodayFeed(ctx)
			if err != nil {
				fmt.Printf("  Stand-up:      (error: %v)\n", err)
			} else {
				fmt.Printf("  Stand-up:      %d of %d checks submitted\n", len(feed.Checks), len(feed.Members))
			}

			return nil
		},
	}
}
