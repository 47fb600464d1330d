package cli

import (
	"context"
	"fmt"

	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTrackerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Manage the issue tracker connection",
	}

	cmd.AddCommand(
		newTrackerConfigureCmd(app),
		newTrackerTestCmd(app),
		newTrackerIssuesCmd(app),
	)

	return cmd
}

func newTrackerConfigureCmd(app *App) *cobra.Command {
	var baseURL, email, token string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Save the tracker connection settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if existing, err := app.Sync.Config(ctx); err == nil && existing != nil {
					baseURL = existing.BaseURL
					email = existing.Email
				}
				if err := trackerForm(&baseURL, &email, &token).Run(); err != nil {
					return err
				}
			}

			if err := app.Sync.Configure(ctx, baseURL, email, token); err != nil {
				return err
			}

			fmt.Println("Tracker connection saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "Tracker base URL")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&token, "token", "", "API token")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func newTrackerTestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check the stored credentials against the tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.Sync.TestConnection(context.Background())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("tracker rejected the connection; check url, email and token")
			}
			fmt.Println("Connection OK.")
			return nil
		},
	}
}

func newTrackerIssuesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issues",
		Short: "List mirrored tracker issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			issues, err := app.Sync.Issues(context.Background())
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Println("No issues mirrored yet; run `roadmap sync` first.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatIssueList(issues))
			return nil
		},
	}
}

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull issues from the tracker into the roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Sync.Sync(context.Background())
			if err != nil {
				if result != nil && result.Message != "" {
					return fmt.Errorf("%s", result.Message)
				}
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSyncResult(result))
			return nil
		},
	}
}
