// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"taskcli/internal/service"
)

// TimeLayout renders timestamps as UTC ISO-8601 with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Format selects how list results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format: %s (want text, json or yaml)", s)
	}
}

// FormatTask writes one list row.
// Format: "ID: {id} | Description: {desc} | Status: {status} | CreatedAt: {ts} | UpdatedAt: {ts}\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "ID: %d | Description: %s | Status: %s | CreatedAt: %s | UpdatedAt: %s\n",
		task.ID,
		normalizeDescription(task.Description),
		task.Status,
		task.CreatedAt.UTC().Format(TimeLayout),
		task.UpdatedAt.UTC().Format(TimeLayout),
	)
}

// WriteTasks renders tasks in the given format.
// Text output has one row per task; json and yaml always emit an array,
// even when it is empty.
func WriteTasks(w io.Writer, format Format, tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}
	switch format {
	case FormatJSON:
		data, err := json.Marshal(tasks)
		if err != nil {
			return err
		}
		_, err = w.Write(pretty.Pretty(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, t := range tasks {
			FormatTask(w, t)
		}
		return nil
	}
}

// normalizeDescription keeps each row on one line.
// Empty or whitespace-only descriptions become "(untitled)".
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
