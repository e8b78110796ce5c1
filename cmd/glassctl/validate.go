package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"glass-connect-backend/internal/schema"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	validateKind     string
	validatePartial  bool
	validateFailFast bool
)

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", string(schema.KindLab), "Record kind: "+kindList())
	validateCmd.Flags().BoolVar(&validatePartial, "partial", false, "Validate records as partial updates")
	validateCmd.Flags().BoolVar(&validateFailFast, "fail-fast", false, "Stop at the first invalid record")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate import files",
	Long: `Validate JSON or YAML import files against the record rules.

Each file holds one record or a list of records. Files ending in .yaml or
.yml are read as YAML, everything else as JSON. Exits with code 3 when any
record is invalid.

Examples:
  glassctl validate --kind lab labs.json
  glassctl validate --kind lab-offer-profile --fail-fast profiles/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

// RecordResult is the outcome for one record of an import file.
type RecordResult struct {
	File   string        `json:"file"`
	Index  int           `json:"index"`
	Valid  bool          `json:"valid"`
	Issues schema.Issues `json:"issues"`
}

// ValidateReport summarises a validate run.
type ValidateReport struct {
	Kind    schema.Kind    `json:"kind"`
	Records int            `json:"records"`
	Invalid int            `json:"invalid"`
	Results []RecordResult `json:"results"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind := schema.Kind(validateKind)
	if !kind.IsValid() {
		return withCode(ExitError, "unknown kind %q (expected one of %s)", validateKind, kindList())
	}
	if validatePartial && !kind.SupportsPartial() {
		return withCode(ExitError, "kind %q has no partial shape", kind)
	}

	report, err := validateFiles(kind, validatePartial, validateFailFast, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		for _, r := range report.Results {
			if r.Valid {
				continue
			}
			for _, issue := range r.Issues {
				outputHuman(out, "%s[%d] %s: %s", r.File, r.Index, displayPath(issue.Path), issue.Message)
			}
		}
		outputHuman(out, "%d of %d records invalid", report.Invalid, report.Records)
	} else if err := outputJSON(out, report); err != nil {
		return err
	}

	if report.Invalid > 0 {
		return withCode(ExitDataError, "%d invalid record(s)", report.Invalid)
	}
	return nil
}

// validateFiles checks every record of every file. With failFast the run
// stops after the first invalid record.
func validateFiles(kind schema.Kind, partial, failFast bool, paths []string) (*ValidateReport, error) {
	report := &ValidateReport{Kind: kind, Results: []RecordResult{}}
	for _, path := range paths {
		records, err := readRecords(path)
		if err != nil {
			return nil, withCode(ExitDataError, "%s: %v", path, err)
		}
		for i, record := range records {
			issues, err := schema.CheckJSON(kind, partial, record)
			if err != nil {
				return nil, withCode(ExitDataError, "%s[%d]: %v", path, i, err)
			}
			if issues == nil {
				issues = schema.Issues{}
			}
			result := RecordResult{File: path, Index: i, Valid: len(issues) == 0, Issues: issues}
			report.Results = append(report.Results, result)
			report.Records++
			if !result.Valid {
				report.Invalid++
				if failFast {
					return report, nil
				}
			}
		}
	}
	return report, nil
}

// readRecords returns the JSON encoding of each record in path
func readRecords(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("YAML document has no JSON form: %w", err)
		}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	if data[0] != '[' {
		return []json.RawMessage{data}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return records, nil
}

func displayPath(path string) string {
	if path == "" {
		return "(record)"
	}
	return path
}

func kindList() string {
	kinds := schema.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
