package banner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/project-banner/internal/domain/project"
)

// Format selects how metadata is rendered.
type Format string

const (
	// FormatText is the welcome banner.
	FormatText Format = "text"
	// FormatTable is a key/value table.
	FormatTable Format = "table"
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a user-supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Text returns the three-line welcome banner.
func Text(info project.Info) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Welcome to your project %s version %s compiled in %s mode \n",
		info.Name, info.Version, info.Mode)
	fmt.Fprintf(&b, " application %s summary: '%s'\n",
		info.Application.Name, info.Application.Summary)
	fmt.Fprintf(&b, "Your code was git cloned on branch %s SHA1 %s\n",
		info.Git.Branch, info.Git.SHA1)

	return b.String()
}

// Render writes the welcome banner to w in a single write.
func Render(w io.Writer, info project.Info) error {
	if _, err := w.Write([]byte(Text(info))); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	return nil
}

// RenderFormat writes metadata to w in the requested format.
func RenderFormat(w io.Writer, info project.Info, format Format) error {
	switch format {
	case FormatText, "":
		return Render(w, info)
	case FormatTable:
		return RenderTable(w, info)
	case FormatJSON:
		return RenderJSON(w, info)
	case FormatYAML:
		return RenderYAML(w, info)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// RenderTable writes metadata as a key/value table.
func RenderTable(w io.Writer, info project.Info) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Project", info.Name},
		{"Version", info.Version.String()},
		{"Compilation mode", info.Mode.String()},
		{"Application", info.Application.Name},
		{"Summary", info.Application.Summary},
		{"Git branch", info.Git.Branch},
		{"Git SHA1", info.Git.SHA1},
	})
	t.SetStyle(table.StyleRounded)

	if _, err := io.WriteString(w, t.Render()+"\n"); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// view is the serialized shape of the metadata.
type view struct {
	Name            string `json:"name"             yaml:"name"`
	Version         string `json:"version"          yaml:"version"`
	CompilationMode string `json:"compilation_mode" yaml:"compilation_mode"`
	Application     string `json:"application"      yaml:"application"`
	Summary         string `json:"summary"          yaml:"summary"`
	GitBranch       string `json:"git_branch"       yaml:"git_branch"`
	GitSHA1         string `json:"git_sha1"         yaml:"git_sha1"`
}

func newView(info project.Info) view {
	return view{
		Name:            info.Name,
		Version:         info.Version.String(),
		CompilationMode: info.Mode.String(),
		Application:     info.Application.Name,
		Summary:         info.Application.Summary,
		GitBranch:       info.Git.Branch,
		GitSHA1:         info.Git.SHA1,
	}
}

// RenderJSON writes metadata as an indented JSON document.
func RenderJSON(w io.Writer, info project.Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(newView(info)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// RenderYAML writes metadata as a YAML document.
func RenderYAML(w io.Writer, info project.Info) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newView(info)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}

	return nil
}
