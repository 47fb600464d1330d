package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var name, date, area string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			m := &domain.Milestone{Name: name, Date: d, Area: area}
			if err := app.Milestones.Create(context.Background(), m); err != nil {
				return err
			}

			fmt.Printf("Created milestone %s on %s\n", m.Name, m.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&area, "area", "", "Optional area tag")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List milestones in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			milestones, err := app.Milestones.List(context.Background())
			if err != nil {
				return err
			}
			if len(milestones) == 0 {
				fmt.Println("No milestones found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMilestoneList(milestones))
			return nil
		},
	}
}
