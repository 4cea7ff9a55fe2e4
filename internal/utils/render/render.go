// Package render writes command output as a text table, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/redjax/whoami/internal/utils/strutils"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// Row is one label/value line of text output.
type Row struct {
	Label string
	Value string
	// Err replaces Value when set.
	Err string
}

// Document is a single piece of output. Text output shows Title and Rows;
// JSON and YAML encode Data.
type Document struct {
	Title string
	Rows  []Row
	Data  any
}

// Write renders doc to w in format ("text", "json" or "yaml").
func Write(w io.Writer, format string, doc Document) error {
	switch strings.ToLower(format) {
	case "", "text":
		return Text(w, doc.Title, doc.Rows)
	case "json":
		return JSON(w, doc.Data)
	case "yaml", "yml":
		return YAML(w, doc.Data)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Text writes rows as a two-column table under an optional title.
func Text(w io.Writer, title string, rows []Row) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
			return err
		}
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false

	for _, r := range rows {
		value := r.Value
		if r.Err != "" {
			value = errorStyle.Render("error: " + r.Err)
		}
		t.AppendRow(table.Row{strutils.ToTitleCase(r.Label), value})
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// Lines writes bare values one per line, for scripting.
func Lines(w io.Writer, values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}
