package cmd

import (
	"fmt"

	"github.com/ginjaninja78/apology/internal/report"
	"github.com/ginjaninja78/apology/pkg/utils"
	"github.com/spf13/cobra"
)

// reportCmd prints the contents of a summary workbook.
var reportCmd = &cobra.Command{
	Use:   "report [" + utils.ReportFileName + "]",
	Short: "Print the summary workbook written by --report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := utils.ReportFileName
		if len(args) == 1 {
			path = args[0]
		}

		rows, err := report.Read(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		total := 0
		fmt.Fprintf(out, "%-24s %8s  %s\n", "GROUP", "RECORDS", "FILE")
		for _, row := range rows {
			fmt.Fprintf(out, "%-24s %8d  %s\n", row.Key, row.Records, row.File)
			total += row.Records
		}
		fmt.Fprintf(out, "%-24s %8d\n", report.TotalLabel, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
