package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/rsoares/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

// resolveItemID accepts an exact name (case-insensitive), a full UUID,
// or a UUID prefix.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Items.List(ctx)
	if err != nil {
		return "", err
	}

	for _, it := range items {
		if strings.EqualFold(it.Name, input) {
			return it.ID, nil
		}
	}
	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage roadmap items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var name, area, team, start, end, status, swimlane, comments string
	var progress int
	var links []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a roadmap item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			it := &domain.Item{}

			if interactive {
				values := &itemFormValues{area: string(domain.AreaEngineering), status: string(domain.StatusTodo)}
				if err := itemForm(ctx, app, values).Run(); err != nil {
					return err
				}
				if err := values.applyTo(it); err != nil {
					return err
				}
			} else {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				it.Name = name
				it.Area = domain.Area(strings.ToLower(area))
				it.TeamName = team
				it.StartDate = startDate
				it.EndDate = endDate
				it.Progress = progress
				it.Status = domain.ItemStatus(status)
				it.Swimlane = swimlane
				it.Comments = comments
				it.Links = links
			}

			if err := app.Items.Create(ctx, it); err != nil {
				return err
			}

			fmt.Printf("Created item %s [%s]\n", it.Name, it.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&area, "area", string(domain.AreaEngineering), "Owning area (engineering|product|infrastructure)")
	cmd.Flags().StringVar(&team, "team", "", "Executing team")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress 0-100")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusTodo), "Status (todo|in_progress|done)")
	cmd.Flags().StringVar(&swimlane, "swimlane", "", "Presentation swimlane")
	cmd.Flags().StringVar(&comments, "comments", "", "Free-text comments")
	cmd.Flags().StringSliceVar(&links, "link", nil, "Related link (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	filters := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roadmap items",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			items, err := app.Items.ListFiltered(context.Background(), criteria)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatItemList(items, time.Now().UTC()))
			return nil
		},
	}

	filters.register(cmd.Flags())

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.GetByID(ctx, itemID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatItemInspect(it, time.Now().UTC()))
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var name, area, team, start, end, status, swimlane, comments string
	var progress int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a roadmap item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.GetByID(ctx, itemID)
			if err != nil {
				return err
			}

			if interactive {
				values := &itemFormValues{
					name:     it.Name,
					area:     string(it.Area),
					team:     it.TeamName,
					start:    it.StartDate.Format("2006-01-02"),
					end:      it.EndDate.Format("2006-01-02"),
					progress: fmt.Sprintf("%d", it.Progress),
					status:   string(it.Status),
					swimlane: it.Swimlane,
					comments: it.Comments,
				}
				if err := itemForm(ctx, app, values).Run(); err != nil {
					return err
				}
				if err := values.applyTo(it); err != nil {
					return err
				}
			} else {
				if cmd.Flags().Changed("name") {
					it.Name = name
				}
				if cmd.Flags().Changed("area") {
					it.Area = domain.Area(strings.ToLower(area))
				}
				if cmd.Flags().Changed("team") {
					it.TeamName = team
				}
				if cmd.Flags().Changed("start") {
					startDate, err := time.Parse("2006-01-02", start)
					if err != nil {
						return fmt.Errorf("invalid start date %q: %w", start, err)
					}
					it.StartDate = startDate
				}
				if cmd.Flags().Changed("end") {
					endDate, err := time.Parse("2006-01-02", end)
					if err != nil {
						return fmt.Errorf("invalid end date %q: %w", end, err)
					}
					it.EndDate = endDate
				}
				if cmd.Flags().Changed("progress") {
					it.Progress = progress
				}
				if cmd.Flags().Changed("status") {
					it.Status = domain.ItemStatus(status)
				}
				if cmd.Flags().Changed("swimlane") {
					it.Swimlane = swimlane
				}
				if cmd.Flags().Changed("comments") {
					it.Comments = comments
				}
			}

			if err := app.Items.Update(ctx, it); err != nil {
				return err
			}

			fmt.Printf("Updated item %s [%s]\n", it.Name, it.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&area, "area", "", "Owning area (engineering|product|infrastructure)")
	cmd.Flags().StringVar(&team, "team", "", "Executing team")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress 0-100")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo|in_progress|done)")
	cmd.Flags().StringVar(&swimlane, "swimlane", "", "Presentation swimlane")
	cmd.Flags().StringVar(&comments, "comments", "", "Free-text comments")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the fields in a form")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a roadmap item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			itemID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Removed item %s\n", itemID)
			return nil
		},
	}
}
