package cleanup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/cmd/wizzzeyctl/cmdutil"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/output"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/timeutil"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cleanup and scheduler state",
	Long: `Show whether a cleanup run is in progress, whether the scheduler is
active, and when cleanup last ran and will next run.

Examples:
  # Show cleanup status
  wizzzeyctl cleanup status

  # Show as JSON
  wizzzeyctl cleanup status -o json`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	st, err := client.GetCleanupStatus()
	if err != nil {
		return err
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, st)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, st)
	default:
		lastRun := "never"
		if st.LastRun != nil && !st.LastRun.IsZero() {
			lastRun = fmt.Sprintf("%s (%s)", timeutil.FormatTime(*st.LastRun), timeutil.Ago(*st.LastRun))
		}

		return output.SimpleTable(os.Stdout, [][2]string{
			{"Running", cmdutil.BoolToYesNo(st.IsRunning)},
			{"Scheduler active", cmdutil.BoolToYesNo(st.SchedulerActive)},
			{"Last run", lastRun},
			{"Next scheduled run", timeutil.FormatTimePtr(st.NextScheduledRun)},
			{"Uploads", st.UploadsDirectory},
		})
	}
}
