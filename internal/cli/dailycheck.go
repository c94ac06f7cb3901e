package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamdispo/dispo/pkg/client"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Daily stand-up checks",
	}

	cmd.AddCommand(newCheckSubmitCmd())
	cmd.AddCommand(newCheckTodayCmd())

	return cmd
}

func newCheckSubmitCmd() *cobra.Command {
	var yesterday, today, blockers string
	var mood int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit your check for today",
		Example: `  dispo check submit --today "Finish the report" --mood 4
  dispo check submit --yesterday "Code review" --today "Deploy" --blockers "Waiting on QA" --mood 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if today == "" {
				today = promptInput("What are you doing today? ")
			}

			ctx := context.Background()
			check, err := apiClient.SubmitDailyCheck(ctx, client.SubmitCheckRequest{
				Yesterday: yesterday,
				Today:     today,
				Blockers:  blockers,
				Mood:      mood,
			})
			if err != nil {
				return fmt.Errorf("failed to submit check: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(check)
			}

			fmt.Printf("Check submitted for %s (mood %s)\n", check.Date, moodMeter(check.Mood))
			return nil
		},
	}

	cmd.Flags().StringVar(&yesterday, "yesterday", "", "what you did yesterday")
	cmd.Flags().StringVar(&today, "today", "", "what you are doing today")
	cmd.Flags().StringVar(&blockers, "blockers", "", "anything blocking you")
	cmd.Flags().IntVar(&mood, "mood", 3, "mood from 1 (bad) to 5 (great)")

	return cmd
}

func newCheckTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's stand-up feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			feed, err := apiClient.TodayFeed(ctx)
			if err != nil {
				return fmt.Errorf("failed to get feed: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(feed)
			}

			fmt.Printf("Stand-up for %s\n\n", feed.Date)

			if len(feed.Checks) == 0 {
				fmt.Println("No checks submitted yet")
			} else {
				table := NewTable("USER", "MOOD", "TODAY", "BLOCKERS")
				for _, c := range feed.Checks {
					name := c.User.DisplayName
					if name == "" {
						name = c.User.Username
					}
					table.AddRow(
						truncate(name, 30),
						moodMeter(c.Mood),
						truncate(c.Today, 50),
						truncate(c.Blockers, 40),
					)
				}
				table.Render()
			}

			// People who have not reported yet
			reported := make(map[int64]bool, len(feed.Checks))
			for _, c := range feed.Checks {
				reported[c.User.ID] = true
			}
			var missing []string
			for _, m := range feed.Members {
				if reported[m.ID] {
					continue
				}
				name := m.DisplayName
				if name == "" {
					name = m.Username
				}
				missing = append(missing, name)
			}
			if len(missing) > 0 {
				fmt.Printf("\nNot yet reported: %s\n", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

func moodMeter(mood int) string {
	if mood < 1 {
		mood = 1
	}
	if mood > 5 {
		mood = 5
	}
	return strings.Repeat("*", mood) + strings.Repeat(".", 5-mood)
}
