package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamdispo/dispo/pkg/client"
)

func newAvailabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "availability",
		Aliases: []string{"avail"},
		Short:   "Manage availability declarations",
	}

	cmd.AddCommand(newAvailabilityDeclareCmd())
	cmd.AddCommand(newAvailabilityListCmd())
	cmd.AddCommand(newAvailabilityMineCmd())
	cmd.AddCommand(newAvailabilityDeleteCmd())

	return cmd
}

func newAvailabilityDeclareCmd() *cobra.Command {
	var period, start, end, status, timeRange string
	var lodging bool

	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Declare availability for a date range",
		Long: `Declare availability for a date range. Any of your previous
declarations that overlap the new range are replaced.`,
		Example: `  dispo availability declare --period week --start 2026-03-09 --end 2026-03-15 --status available
  dispo availability declare --period day --start 2026-03-11 --end 2026-03-11 --status partial --time-range "09:00 - 13:00"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				return fmt.Errorf("--start is required (YYYY-MM-DD)")
			}
			if end == "" {
				end = start
			}

			ctx := context.Background()
			decl, err := apiClient.Declare(ctx, client.DeclareRequest{
				PeriodKind:    period,
				StartDate:     start,
				EndDate:       end,
				Status:        status,
				TimeRange:     timeRange,
				OnSiteLodging: lodging,
			})
			if err != nil {
				return fmt.Errorf("failed to declare availability: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(decl)
			}

			fmt.Printf("Declared %s from %s to %s (id %d)\n", decl.Status, decl.StartDate, decl.EndDate, decl.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "day", "period kind (day, week, month)")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD, defaults to start)")
	cmd.Flags().StringVar(&status, "status", "available", "status (available, partial, unavailable)")
	cmd.Flags().StringVar(&timeRange, "time-range", "", `time of day, e.g. "09:00 - 17:00"`)
	cmd.Flags().BoolVar(&lodging, "lodging", false, "staying in on-site lodging")

	return cmd
}

func newAvailabilityListCmd() *cobra.Command {
	var period string
	var lodging string
	var availableNow bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the team's availability",
		Example: `  dispo availability list --period week
  dispo availability list --available-now
  dispo availability list --lodging true`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := client.ListOptions{
				Period:       period,
				AvailableNow: availableNow,
			}
			if lodging != "" {
				v, err := strconv.ParseBool(lodging)
				if err != nil {
					return fmt.Errorf("invalid --lodging value %q (want true or false)", lodging)
				}
				opts.OnSiteLodging = &v
			}

			ctx := context.Background()
			entries, err := apiClient.ListAvailability(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list availability: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(entries)
			}

			if len(entries) == 0 {
				fmt.Println("No declarations found")
				return nil
			}

			table := NewTable("ID", "USER", "DATES", "STATUS", "TIME", "LODGING")
			for _, e := range entries {
				name := e.User.DisplayName
				if name == "" {
					name = e.User.Username
				}
				lodge := ""
				if e.OnSiteLodging {
					lodge = "yes"
				}
				table.AddRow(
					strconv.FormatInt(e.ID, 10),
					truncate(name, 30),
					e.StartDate+" .. "+e.EndDate,
					formatStatus(e.Status),
					e.TimeRange,
					lodge,
				)
			}
			table.Render()
			fmt.Printf("\nTotal: %d declaration(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "window filter (today, day, week, month)")
	cmd.Flags().StringVar(&lodging, "lodging", "", "filter by on-site lodging (true or false)")
	cmd.Flags().BoolVar(&availableNow, "available-now", false, "only people available right now")

	return cmd
}

func newAvailabilityMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own declarations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			decls, err := apiClient.MyDeclarations(ctx)
			if err != nil {
				return fmt.Errorf("failed to list declarations: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(decls)
			}

			if len(decls) == 0 {
				fmt.Println("No declarations found")
				return nil
			}

			table := NewTable("ID", "PERIOD", "DATES", "STATUS", "TIME", "LODGING", "CREATED")
			for _, d := range decls {
				lodge := ""
				if d.OnSiteLodging {
					lodge = "yes"
				}
				table.AddRow(
					strconv.FormatInt(d.ID, 10),
					d.PeriodKind,
					d.StartDate+" .. "+d.EndDate,
					formatStatus(d.Status),
					d.TimeRange,
					lodge,
					time.Unix(d.CreatedAt, 0).UTC().Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newAvailabilityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your declarations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid declaration ID: %s", args[0])
			}

			ctx := context.Background()
			if err := apiClient.DeleteDeclaration(ctx, id); err != nil {
				return fmt.Errorf("failed to delete declaration: %w", err)
			}

			fmt.Printf("Declaration %d deleted\n", id)
			return nil
		},
	}
}
