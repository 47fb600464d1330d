package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rsoares/roadmap/internal/cli/formatter"
	"github.com/rsoares/roadmap/internal/domain"
)

// roadmapHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func roadmapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// itemFormValues carries the string-typed state behind the interactive
// item form.
type itemFormValues struct {
	name     string
	area     string
	team     string
	start    string
	end      string
	progress string
	status   string
	swimlane string
	comments string
}

// itemForm builds the interactive add/edit form. Team options come from
// the stored team list so the most-used teams appear first.
func itemForm(ctx context.Context, app *App, v *itemFormValues) *huh.Form {
	areaOptions := make([]huh.Option[string], 0, len(domain.Areas))
	for _, a := range domain.Areas {
		areaOptions = append(areaOptions, huh.NewOption(string(a), string(a)))
	}

	var teamSuggestions []string
	if teams, err := app.Teams.List(ctx); err == nil {
		for _, tm := range teams {
			teamSuggestions = append(teamSuggestions, tm.Name)
		}
	}

	statusOptions := make([]huh.Option[string], 0, len(domain.ItemStatuses))
	for _, s := range domain.ItemStatuses {
		statusOptions = append(statusOptions, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.name).
				Validate(validateRequired("name")),
			huh.NewSelect[string]().
				Title("Area").
				Options(areaOptions...).
				Value(&v.area),
			huh.NewInput().
				Title("Team").
				Suggestions(teamSuggestions).
				Value(&v.team),
		),
		huh.NewGroup(
			dateInput("Start Date (YYYY-MM-DD)", &v.start),
			dateInput("End Date (YYYY-MM-DD)", &v.end),
			huh.NewInput().
				Title("Progress (0-100)").
				Placeholder("0").
				Value(&v.progress).
				Validate(validateProgress),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions...).
				Value(&v.status),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Swimlane (optional)").
				Value(&v.swimlane),
			huh.NewText().
				Title("Comments").
				Value(&v.comments),
		),
	).WithTheme(roadmapHuhTheme()).WithShowHelp(false)
}

// applyTo copies the collected form values onto an item.
func (v *itemFormValues) applyTo(it *domain.Item) error {
	start, err := time.Parse("2006-01-02", v.start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", v.start, err)
	}
	end, err := time.Parse("2006-01-02", v.end)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", v.end, err)
	}

	it.Name = v.name
	it.Area = domain.Area(v.area)
	it.TeamName = v.team
	it.StartDate = start
	it.EndDate = end
	if v.progress != "" {
		it.Progress, _ = strconv.Atoi(v.progress)
	}
	if v.status != "" {
		it.Status = domain.ItemStatus(v.status)
	}
	it.Swimlane = v.swimlane
	it.Comments = v.comments
	return nil
}

// trackerForm collects the tracker connection settings.
func trackerForm(baseURL, email, token *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tracker URL").
				Placeholder("https://your-org.atlassian.net").
				Value(baseURL).
				Validate(validateRequired("tracker url")),
			huh.NewInput().
				Title("Account Email").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("API Token").
				EchoMode(huh.EchoModePassword).
				Value(token).
				Validate(validateRequired("api token")),
		),
	).WithTheme(roadmapHuhTheme()).WithShowHelp(false)
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateDate)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateProgress accepts empty or an integer in [0,100].
func validateProgress(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a number between 0 and 100")
	}
	return nil
}
