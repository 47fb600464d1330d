package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAlertCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Manage alerts",
	}

	cmd.AddCommand(
		newAlertListCmd(app),
		newAlertDismissCmd(app),
		newAlertGenerateCmd(app),
	)

	return cmd
}

func newAlertListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := app.Alerts.List(context.Background())
			if err != nil {
				return err
			}
			if len(alerts) == 0 {
				fmt.Println("No open alerts.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatAlertList(alerts))
			return nil
		},
	}
}

func newAlertDismissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss ID",
		Short: "Dismiss an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			alertID, err := resolveAlertID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Alerts.Dismiss(ctx, alertID); err != nil {
				return err
			}
			fmt.Println("Alert dismissed.")
			return nil
		},
	}
}

func newAlertGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Create risk alerts for items behind schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Dashboard.GenerateAlerts(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("Created %d alert(s)\n", created)
			return nil
		},
	}
}

// resolveAlertID accepts a full alert UUID or a unique prefix.
func resolveAlertID(ctx context.Context, app *App, input string) (string, error) {
	alerts, err := app.Alerts.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, a := range alerts {
		if a.ID == input {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("alert not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("alert ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
