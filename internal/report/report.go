package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Analysis is the result of a limit-analysis run over a workflow directory.
type Analysis struct {
	Success       bool     `json:"success"`
	Path          string   `json:"path"`
	Warnings      []string `json:"warnings"`
	Info          []string `json:"info"`
	FilesAnalyzed int      `json:"files_analyzed"`
}

// Validation is the result of a workflow structure check.
type Validation struct {
	Success    bool     `json:"success"`
	Valid      bool     `json:"valid"`
	Path       string   `json:"path"`
	FoundFiles []string `json:"found_files"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
	Info       []string `json:"info"`
}

// CLIStatus reports whether the platform CLI is installed.
type CLIStatus struct {
	Success   bool   `json:"success"`
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Location  string `json:"location,omitempty"`
	Info      string `json:"info,omitempty"`
}

// Fetch reports the outcome of a documentation download.
type Fetch struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Path    string `json:"path,omitempty"`
	Bytes   int64  `json:"bytes"`
	Error   string `json:"error,omitempty"`
}

// Failure is the structured error envelope shared by all commands.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewFailure wraps an error message in the standard failure envelope.
func NewFailure(format string, args ...any) Failure {
	return Failure{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Print writes v as a single line of JSON to stdout.
func Print(v any) error {
	return Fprint(os.Stdout, v)
}

// Fprint writes v as a single line of JSON to w.
func Fprint(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
