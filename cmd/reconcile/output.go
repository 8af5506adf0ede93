package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter writes data in one format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates the formatter for format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// ParseFormat validates a format name. An empty name picks table output on
// a terminal and JSON otherwise.
func ParseFormat(s string, w io.Writer) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return format, nil
	case "":
		return DetectFormat(w), nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

// DetectFormat returns table output for terminals and JSON for pipes.
func DetectFormat(w io.Writer) Format {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatTable
	}

	return FormatJSON
}

// JSONFormatter outputs JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}

	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(data); err != nil {
		return err
	}

	return encoder.Close()
}

// Table is data prepared for table output. Notes are printed below it.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Notes   []string
}

// Tabular is implemented by values that know their table form.
type Tabular interface {
	Tables() []Table
}

// TableFormatter outputs tables. Values without a table form fall back to
// JSON.
type TableFormatter struct{}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	var tables []Table

	switch v := data.(type) {
	case Table:
		tables = []Table{v}
	case []Table:
		tables = v
	case Tabular:
		tables = v.Tables()
	default:
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}

	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if err := f.render(w, t); err != nil {
			return err
		}
	}

	return nil
}

func (f *TableFormatter) render(w io.Writer, t Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, t.Title); err != nil {
			return err
		}
	}

	if len(t.Rows) > 0 {
		table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{}))

		headers := make([]any, len(t.Headers))
		for i, h := range t.Headers {
			headers[i] = h
		}
		table.Header(headers...)

		for _, row := range t.Rows {
			cells := make([]any, len(row))
			for i, cell := range row {
				cells[i] = cell
			}
			if err := table.Append(cells...); err != nil {
				return err
			}
		}

		if err := table.Render(); err != nil {
			return err
		}
	}

	for _, note := range t.Notes {
		if _, err := fmt.Fprintln(w, note); err != nil {
			return err
		}
	}

	return nil
}
