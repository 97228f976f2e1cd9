// Package export writes a task list to a file format for use outside the
// application.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/todomvc/internal/controller"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

// Format names an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV, FormatPDF}
}

// ParseFormat accepts a format name in any case. "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, s)
	}
}

// Report is the exported content: the tasks selected by Filter and the
// counts over the whole list.
type Report struct {
	Filter string      `json:"filter" yaml:"filter"`
	Counts todo.Counts `json:"counts" yaml:"counts"`
	Tasks  []todo.Task `json:"todos" yaml:"todos"`
}

// Collect reads a report for filter from store.
func Collect(ctx context.Context, store controller.Store, filter todo.Filter) (Report, error) {
	tasks, err := store.Read(ctx, filter.Query())
	if err != nil {
		return Report{}, err
	}
	counts, err := store.GetCount(ctx)
	if err != nil {
		return Report{}, err
	}
	if tasks == nil {
		tasks = []todo.Task{}
	}
	return Report{Filter: filter.String(), Counts: counts, Tasks: tasks}, nil
}

// Write encodes r to w in format.
func Write(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, r)
	case FormatPDF:
		return writePDF(w, r)
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, format)
	}
}

func writeCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "completed"}); err != nil {
		return err
	}
	for _, t := range r.Tasks {
		if err := cw.Write([]string{strconv.Itoa(t.ID), t.Title, strconv.FormatBool(t.Completed)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("todos", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "todos")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	summary := fmt.Sprintf("%s: %d left, %d completed, %d total",
		r.Filter, r.Counts.Active, r.Counts.Completed, r.Counts.Total)
	pdf.MultiCell(0, 6, summary, "0", "L", false)
	pdf.Ln(4)

	// The core fonts are cp1252; map titles through the matching translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, t := range r.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %d. %s", mark, t.ID, tr(t.Title))
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	return pdf.Output(w)
}
