package cleanup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/cmd/wizzzeyctl/cmdutil"
	"github.com/wizzzeystore/wizzzey-api/internal/cli/output"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show what a cleanup run would delete",
	Long: `Compute which upload files a cleanup run would delete, without
deleting anything.

The server scans the database for referenced filenames, lists the uploads
directory, and reports the difference.

Examples:
  # Preview the next cleanup run
  wizzzeyctl cleanup preview

  # Preview as JSON (includes the full orphan list)
  wizzzeyctl cleanup preview -o json`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	preview, err := client.GetCleanupPreview()
	if err != nil {
		return err
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, preview)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, preview)
	default:
		fmt.Printf("Files in uploads: %d\n", preview.TotalFilesInUploads)
		fmt.Printf("Referenced:       %d\n", preview.ReferencedFiles)
		fmt.Printf("Orphaned:         %d\n", preview.OrphanedFiles)

		if len(preview.OrphanedFileList) == 0 {
			fmt.Println("\nNo orphaned files found.")
			return nil
		}

		fmt.Println()
		table := output.NewTableData("ORPHANED FILE")
		for _, name := range preview.OrphanedFileList {
			table.AddRow(name)
		}
		return output.PrintTable(os.Stdout, table)
	}
}
