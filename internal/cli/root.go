package cli

import (
	"github.com/rsoares/roadmap/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items      service.ItemService
	Areas      service.AreaService
	Teams      service.TeamService
	Milestones service.MilestoneService
	Alerts     service.AlertService
	Dashboard  service.DashboardService
	Sync       service.SyncService
}

// NewRootCmd creates the top-level "roadmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roadmap",
		Short: "Project roadmap tracker with tracker sync and risk scoring",
	}

	root.AddCommand(
		newItemCmd(app),
		newAreaCmd(app),
		newTeamCmd(app),
		newMilestoneCmd(app),
		newAlertCmd(app),
		newDashboardCmd(app),
		newTimelineCmd(app),
		newTrackerCmd(app),
		newSyncCmd(app),
		newBrowseCmd(app),
	)

	return root
}
