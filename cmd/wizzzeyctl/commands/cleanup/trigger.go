package cleanup

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/cmd/wizzzeyctl/cmdutil"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Start a cleanup run in the background",
	Long: `Start an orphaned-upload cleanup run on the server.

The run executes in the background; the command returns as soon as the
server accepts it. If a run is already in flight, the server skips the
new one instead of queueing it. Use 'wizzzeyctl cleanup status' to see
when the run finished.

Examples:
  # Trigger a cleanup run
  wizzzeyctl cleanup trigger

  # Trigger and print the server acknowledgement as JSON
  wizzzeyctl cleanup trigger -o json`,
	RunE: runTrigger,
}

func runTrigger(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	resp, err := client.TriggerCleanup()
	if err != nil {
		return err
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, resp, resp.Message)
}
