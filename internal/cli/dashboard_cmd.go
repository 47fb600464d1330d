package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	filters := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show allocation, risk and delivery metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			metrics, err := app.Dashboard.Metrics(context.Background(), criteria)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatMetrics(metrics, time.Now().UTC()))
			return nil
		},
	}

	filters.register(cmd.Flags())

	return cmd
}

func newTimelineCmd(app *App) *cobra.Command {
	filters := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show a month-bucketed gantt of items and milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			items, err := app.Items.ListFiltered(ctx, criteria)
			if err != nil {
				return err
			}
			milestones, err := app.Milestones.List(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.RenderTimeline(items, milestones, time.Now().UTC()))
			return nil
		},
	}

	filters.register(cmd.Flags())

	return cmd
}
