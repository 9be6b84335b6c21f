// Package cleanup implements orphaned-upload cleanup subcommands for wizzzeyctl.
package cleanup

import (
	"github.com/spf13/cobra"
)

// Cmd is the cleanup subcommand.
var Cmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Manage orphaned-upload cleanup",
	Long: `Manage the orphaned-upload cleanup subsystem.

Cleanup scans the database for referenced upload filenames, compares them
against the files present in the uploads directory, and deletes the files
nothing references anymore. These commands require an admin login.

Subcommands:
  trigger    Start a cleanup run in the background
  status     Show cleanup and scheduler state
  preview    Show what a cleanup run would delete
  scheduler  Start or stop the cleanup scheduler`,
}

func init() {
	Cmd.AddCommand(triggerCmd)
	Cmd.AddCommand(statusCmd)
	Cmd.AddCommand(previewCmd)
	Cmd.AddCommand(schedulerCmd)
}
