// Package sarif serializes style diagnostics in SARIF 2.1.0 format so
// that editors and CI systems can ingest check results.
package sarif

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/ccheck-dev/ccheck/pkg/checker"
)

// SARIF 2.1.0 constants
const (
	SchemaURI   = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version     = "2.1.0"
	ToolName    = "ccheck"
	ToolVersion = "0.1.0"
)

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes one style rule
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result represents a single reported violation
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range
type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// ruleDescriptions names the style rules emitted by the checker.
var ruleDescriptions = map[string]string{
	"stmt-newline":  "Construct must start on a new line",
	"ws-before":     "Unexpected whitespace before token",
	"ws-after":      "Unexpected whitespace after token",
	"space-missing": "Expected whitespace around token",
	"indent":        "Wrong indentation level",
	"indent-spaces": "Leading spaces on a non-continuation line",
	"cont-indent":   "Continuation line not indented by four spaces",
	"indent-mix":    "Mixed tabs and spaces in indentation",
	"trailing-ws":   "Whitespace at end of line",
	"line-length":   "Line exceeds the length limit",
}

// NewReport creates a new SARIF report with initialized structure
func NewReport() *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules:   []Rule{},
					},
				},
				Results: []Result{},
			},
		},
	}
}

// AddRule registers a style rule in the report once.
func (r *Report) AddRule(id string) {
	for _, existing := range r.Runs[0].Tool.Driver.Rules {
		if existing.ID == id {
			return
		}
	}

	desc := ruleDescriptions[id]
	if desc == "" {
		desc = id
	}
	r.Runs[0].Tool.Driver.Rules = append(r.Runs[0].Tool.Driver.Rules, Rule{
		ID:               id,
		Name:             id,
		ShortDescription: ShortDescription{Text: desc},
	})
}

// AddResult adds one diagnostic to the report.
func (r *Report) AddResult(d checker.Diagnostic, filePath string) {
	r.AddRule(d.RuleID)

	result := Result{
		RuleID: d.RuleID,
		Level:  "warning",
		Message: Message{
			Text: d.Msg,
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(filePath),
					},
					Region: Region{
						StartLine:   d.BPos.Line,
						StartColumn: d.BPos.Col,
						EndLine:     d.EPos.Line,
						EndColumn:   d.EPos.Col,
					},
				},
			},
		},
	}
	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
