package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/cmd/wizzzeyctl/cmdutil"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Long: `Show the user the server associates with the stored credentials.

Examples:
  # Show the current user
  wizzzeyctl whoami

  # Show as JSON
  wizzzeyctl whoami -o json`,
	RunE: runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	me, err := client.GetCurrentUser()
	if err != nil {
		return err
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, me)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, me)
	default:
		return output.SimpleTable(os.Stdout, [][2]string{
			{"Username", me.Username},
			{"Email", cmdutil.EmptyOr(me.Email, "-")},
			{"Role", me.Role},
			{"ID", me.ID},
		})
	}
}
