package cli

import (
	"context"
	"fmt"

	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAreaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage owning areas",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List areas, most used first",
			RunE: func(cmd *cobra.Command, args []string) error {
				areas, err := app.Areas.List(context.Background())
				if err != nil {
					return err
				}
				if len(areas) == 0 {
					fmt.Println("No areas recorded yet.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatAreaList(areas))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add NAME",
			Short: "Record an area",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := app.Areas.Ensure(context.Background(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Area %s recorded\n", a.Name)
				return nil
			},
		},
	)

	return cmd
}

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List teams, most used first",
			RunE: func(cmd *cobra.Command, args []string) error {
				teams, err := app.Teams.List(context.Background())
				if err != nil {
					return err
				}
				if len(teams) == 0 {
					fmt.Println("No teams recorded yet.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatTeamList(teams))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add NAME",
			Short: "Record a team",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tm, err := app.Teams.Ensure(context.Background(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Team %s recorded\n", tm.Name)
				return nil
			},
		},
	)

	return cmd
}
