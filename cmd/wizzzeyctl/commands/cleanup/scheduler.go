package cleanup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/cmd/wizzzeyctl/cmdutil"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/output"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/timeutil"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Start or stop the cleanup scheduler",
	Long: `Control the daily cleanup scheduler on the server.

Subcommands:
  start  Start the scheduler
  stop   Stop the scheduler`,
}

var schedulerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the cleanup scheduler",
	Long: `Start the daily cleanup scheduler on the server.

Starting an already running scheduler is a no-op.

Examples:
  # Start the scheduler
  wizzzeyctl cleanup scheduler start`,
	RunE: runSchedulerStart,
}

var schedulerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the cleanup scheduler",
	Long: `Stop the daily cleanup scheduler on the server.

A cleanup run already in progress is not interrupted. Stopping an
already stopped scheduler is a no-op.

Examples:
  # Stop the scheduler
  wizzzeyctl cleanup scheduler stop`,
	RunE: runSchedulerStop,
}

func init() {
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerStopCmd)
}

func runSchedulerStart(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	resp, err := client.StartScheduler()
	if err != nil {
		return err
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, resp)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, resp)
	default:
		cmdutil.PrintSuccess(resp.Message)
		if resp.NextRun != nil {
			fmt.Printf("Next run: %s\n", timeutil.FormatTime(*resp.NextRun))
		}
		return nil
	}
}

func runSchedulerStop(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	resp, err := client.StopScheduler()
	if err != nil {
		return err
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, resp, resp.Message)
}
