package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ccheck-dev/ccheck/pkg/checker"
	"github.com/ccheck-dev/ccheck/pkg/config"
	"github.com/ccheck-dev/ccheck/pkg/input"
	"github.com/ccheck-dev/ccheck/pkg/sarif"
	"github.com/ccheck-dev/ccheck/pkg/srcpos"
	"github.com/ccheck-dev/ccheck/pkg/walk"
)

// errViolations signals a clean run that found style violations; main
// maps it to a nonzero exit without an extra error line.
var errViolations = errors.New("style violations found")

// styles holds the color formatters for human output.
type styles struct {
	pos *color.Color
	msg *color.Color
}

// newStyles creates color formatters for diagnostics output.
// enabled=false respects --color=never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		pos: color.New(color.FgHiBlue),
		msg: color.New(color.FgHiWhite),
	}

	if !enabled {
		s.pos.DisableColor()
		s.msg.DisableColor()
	}

	return s
}

// jsonDiag is the JSON output form of one diagnostic.
type jsonDiag struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	EndLine int    `json:"end_line"`
	EndCol  int    `json:"end_col"`
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
}

func runRoot(cmd *cobra.Command, args []string) error {
	if flagTest {
		return checker.SelfTest(cmd.OutOrStdout())
	}

	if len(args) == 0 {
		return fmt.Errorf("no input files (see 'ccheck --help')")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagDumpAST || flagDumpToks {
		if len(args) != 1 {
			return fmt.Errorf("dump takes exactly one PATH")
		}
		if flagDumpToks {
			return dumpToks(cmd.OutOrStdout(), args[0])
		}
		return dumpAST(cmd.OutOrStdout(), args[0])
	}

	files, err := expandPaths(args)
	if err != nil {
		return err
	}

	setupColor()
	st := newStyles(!color.NoColor)

	violations := 0
	fatal := false
	report := sarif.NewReport()
	var jsonDiags []jsonDiag

	for _, path := range files {
		diags, err := processFile(path, cfg)
		if err != nil {
			// A lex/parse failure is fatal for this translation unit
			// only; the remaining files are still processed.
			fmt.Fprintln(cmd.OutOrStdout(), err)
			fatal = true
			continue
		}

		violations += len(diags)
		switch flagFormat {
		case "human":
			for _, d := range diags {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n",
					st.pos.Sprint(posString(d)), st.msg.Sprint(d.Msg))
			}
		case "json":
			for _, d := range diags {
				jsonDiags = append(jsonDiags, jsonDiag{
					File:    d.BPos.File,
					Line:    d.BPos.Line,
					Col:     d.BPos.Col,
					EndLine: d.EPos.Line,
					EndCol:  d.EPos.Col,
					RuleID:  d.RuleID,
					Message: d.Msg,
				})
			}
		case "sarif":
			for _, d := range diags {
				report.AddResult(d, d.BPos.File)
			}
		default:
			return fmt.Errorf("unknown output format: %s", flagFormat)
		}
	}

	switch flagFormat {
	case "json":
		if !flagFix {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(jsonDiags); err != nil {
				return err
			}
		}
	case "sarif":
		if !flagFix {
			data, err := report.ToJSON()
			if err != nil {
				return fmt.Errorf("serializing SARIF: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
		}
	}

	if fatal {
		return fmt.Errorf("fatal errors encountered")
	}
	if !flagFix && violations > 0 {
		return errViolations
	}
	return nil
}

// loadConfig resolves the style configuration: an explicit --config
// path, a .ccheck.yml in the working directory, or the defaults.
func loadConfig() (*config.Style, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	if _, err := os.Stat(".ccheck.yml"); err == nil {
		return config.LoadFile(".ccheck.yml")
	}
	return config.Default(), nil
}

// expandPaths resolves directory arguments into the C sources beneath
// them.
func expandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("target does not exist: %s", arg)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		found, err := walk.Sources(walk.Config{
			Root:          arg,
			IncludeHidden: flagHidden,
			MaxFileSize:   flagMaxSize,
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// processFile checks one translation unit and, in fix mode, rewrites
// it in place after preserving a backup.
func processFile(path string, cfg *config.Style) ([]checker.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c := checker.New(input.NewString(path, string(data)), cfg)
	diags, err := c.Run(flagFix)
	if err != nil {
		return nil, err
	}

	if !flagFix {
		return diags, nil
	}

	var fixed strings.Builder
	if err := c.Print(&fixed); err != nil {
		return nil, err
	}

	if fixed.String() == string(data) {
		return diags, nil
	}

	// Keep the original as <path>.orig unless a backup already exists.
	backup := path + ".orig"
	if _, err := os.Stat(backup); os.IsNotExist(err) {
		if err := os.WriteFile(backup, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing backup %s: %w", backup, err)
		}
	}

	if err := os.WriteFile(path, []byte(fixed.String()), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return diags, nil
}

func posString(d checker.Diagnostic) string {
	return srcpos.RangeString(d.BPos, d.EPos)
}

// setupColor decides whether human output is colored, following the
// --color flag, the NO_COLOR convention and whether stdout is a TTY.
func setupColor() {
	switch flagColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
}
