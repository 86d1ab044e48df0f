package share

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/conceptswipe/internal/session"
)

// Exporter writes a completed session in one format.
type Exporter interface {
	Export(rec *session.Record, w io.Writer) error
	Extension() string
}

// NewExporter creates an exporter for format.
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return &TextExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, md, json, yaml)", format)
	}
}

// TextExporter writes a plain summary followed by the saved notes.
type TextExporter struct{}

func (e *TextExporter) Export(rec *session.Record, w io.Writer) error {
	r := NewReport(rec)
	var b strings.Builder
	fmt.Fprintln(&b, Summary(rec))
	fmt.Fprintf(&b, "\nAccepted %d  Archived %d  Rejected %d  Time %s\n",
		r.Accepted, r.Archived, r.Rejected, Clock(r.ElapsedSeconds))
	fmt.Fprintf(&b, "Retention: %s\n", r.Retention)
	for _, n := range r.Notes {
		fmt.Fprintf(&b, "\n* %s\n  %s\n", n.Title, n.Body)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (e *TextExporter) Extension() string { return "txt" }

// MarkdownExporter writes a Markdown report.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(rec *session.Record, w io.Writer) error {
	r := NewReport(rec)
	var b strings.Builder
	fmt.Fprintf(&b, "# Session %s\n\n", r.SessionID)
	fmt.Fprintf(&b, "%s\n\n", Summary(rec))
	fmt.Fprintf(&b, "| Accepted | Archived | Rejected | Time | Mastery |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %s | %s |\n\n",
		r.Accepted, r.Archived, r.Rejected, Clock(r.ElapsedSeconds), percentCell(r.MasteryPercent))
	fmt.Fprintf(&b, "**Retention:** %s\n", r.Retention)

	if len(r.Notes) > 0 {
		fmt.Fprintf(&b, "\n## Saved notes\n")
		for _, n := range r.Notes {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", n.Title, n.Body)
			if len(n.Tags) > 0 {
				fmt.Fprintf(&b, "\n_%s_\n", "#"+strings.Join(n.Tags, " #"))
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (e *MarkdownExporter) Extension() string { return "md" }

func percentCell(p *int) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%d%%", *p)
}

// JSONExporter writes the report as indented JSON.
type JSONExporter struct{}

func (e *JSONExporter) Export(rec *session.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(rec))
}

func (e *JSONExporter) Extension() string { return "json" }

// YAMLExporter writes the report as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(rec *session.Record, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(NewReport(rec))
}

func (e *YAMLExporter) Extension() string { return "yaml" }
