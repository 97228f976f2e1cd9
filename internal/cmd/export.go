package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/todomvc/internal/export"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export todos as JSON, YAML, CSV or PDF",
	Long: `Export the todos selected by --route, with the counts over the whole
list, to stdout or to the file given by --output.

Examples:
  todomvc export --format yaml
  todomvc export --format pdf -o todos.pdf
  todomvc export --format csv --route '#/active'`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
	exportRoute  string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatJSON), "output format: "+formatNames())
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportRoute, "route", "r", todo.RouteAll, "route to export: '#/', '#/active' or '#/completed'")
}

func formatNames() string {
	var names []string
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return fmt.Errorf("%w (valid: %s)", err, formatNames())
	}

	e, err := openEnv("export")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); err == nil {
			err = cerr
		}
	}()

	report, err := export.Collect(cmd.Context(), e.store, todo.ParseRoute(exportRoute))
	if err != nil {
		return fmt.Errorf("failed to read todos: %w", err)
	}

	out := cmd.OutOrStdout()
	if exportOutput != "" {
		var f *os.File
		f, err = os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	if err := export.Write(out, format, report); err != nil {
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}
	e.logger.Info("exported todos", "format", string(format), "count", len(report.Tasks))

	if exportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d %s to %s\n", len(report.Tasks), plural(len(report.Tasks), "todo"), exportOutput)
	}
	return nil
}
