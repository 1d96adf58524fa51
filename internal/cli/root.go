package cli

import (
	"github.com/deyby01/agenda/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Projects  service.ProjectService
	Notify    service.NotifyService
	Dashboard service.DashboardService

	// Owner is the owner ID all commands operate on, bound to the
	// persistent --owner flag.
	Owner string
}

// NewRootCmd creates the top-level "agenda" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "agenda",
		Short: "Personal task manager with priority scoring and smart alerts",
	}

	addOwnerFlag(root.PersistentFlags(), &app.Owner)

	root.AddCommand(
		newTaskCmd(app),
		newProjectCmd(app),
		newDashboardCmd(app),
		newNotifyCmd(app),
	)

	return root
}

// addOwnerFlag registers the shared --owner flag on a flag set.
func addOwnerFlag(fs *pflag.FlagSet, owner *string) {
	fs.StringVar(owner, "owner", "default", "Owner ID to operate on")
}
