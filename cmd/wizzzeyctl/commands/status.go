package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/cmd/wizzzeyctl/cmdutil"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/output"
	"github.com/wizzzeystore/wizzzey-api/pkg/apiclient"
)

// serverStatus is the health report shown by the status command.
type serverStatus struct {
	Server    string `json:"server" yaml:"server"`
	Reachable bool   `json:"reachable" yaml:"reachable"`
	Service   string `json:"service,omitempty" yaml:"service,omitempty"`
	Database  string `json:"database,omitempty" yaml:"database,omitempty"`
	Uploads   string `json:"uploads,omitempty" yaml:"uploads,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check server health",
	Long: `Check whether the Wizzzey API server is reachable and healthy.

This calls the unauthenticated health endpoint, so it works without
being logged in as long as a server URL is known.

Examples:
  # Check the server from the current context
  wizzzeyctl status

  # Check a specific server
  wizzzeyctl status --server http://localhost:8080

  # Machine-readable output
  wizzzeyctl status -o json`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	serverURL, err := cmdutil.ResolveServerURL()
	if err != nil {
		return err
	}

	st := serverStatus{Server: serverURL}

	health, err := apiclient.New(serverURL).Health()
	if err != nil {
		st.Error = err.Error()
	} else {
		st.Reachable = true
		st.Service = health.Service
		st.Database = health.Database
		st.Uploads = health.Uploads
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
		printer := output.NewPrinter(os.Stdout, format, !cmdutil.IsColorDisabled())
		if !st.Reachable {
			printer.Error(fmt.Sprintf("Server %s is unreachable", serverURL))
			fmt.Printf("  %s\n", st.Error)
			return nil
		}
		printer.Success(fmt.Sprintf("Server %s is healthy", serverURL))
		return output.SimpleTable(os.Stdout, [][2]string{
			{"Service", st.Service},
			{"Database", st.Database},
			{"Uploads", st.Uploads},
		})
	}
}
