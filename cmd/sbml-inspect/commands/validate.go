package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/sbml-kit/sbml-go/pkg/core"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON    bool
	Verbose bool
	Files   []string
}

// ValidationOutput represents the validation result for a file.
type ValidationOutput struct {
	Valid    bool          `json:"valid"`
	Errors   []IssueOutput `json:"errors,omitempty"`
	Warnings []IssueOutput `json:"warnings,omitempty"`
}

// IssueOutput represents a validation issue.
type IssueOutput struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	hasErrors := false
	results := make(map[string]*ValidationOutput)

	for _, file := range opts.Files {
		result := validateFile(file)
		results[file] = result

		if !result.Valid {
			hasErrors = true
		}

		if !opts.JSON {
			printValidationResult(stdout, file, result, opts.Verbose)
		}
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(output))
	}

	if hasErrors {
		return exitValidation
	}
	return exitSuccess
}

func validateFile(path string) *ValidationOutput {
	output := &ValidationOutput{Valid: true}

	doc, err := loadDocument(path)
	if err != nil {
		output.Valid = false
		output.Errors = append(output.Errors, IssueOutput{
			Code:    "PARSE",
			Message: err.Error(),
		})
		return output
	}

	checkDocument(doc, output)
	output.Valid = len(output.Errors) == 0
	return output
}

// checkDocument runs the structural checks: referential integrity of
// species references and rule variables, and duplicate identifiers.
func checkDocument(doc *core.Document, output *ValidationOutput) {
	m := doc.Model()
	if m == nil {
		output.Warnings = append(output.Warnings, IssueOutput{
			Code:    "NO_MODEL",
			Message: "document has no model",
		})
		return
	}

	ids := make(map[string]int)
	speciesIDs := make(map[string]bool)
	variables := make(map[string]bool)

	for _, p := range m.Parameters() {
		ids[p.ID()]++
		variables[p.ID()] = true
	}
	for _, s := range m.SpeciesList() {
		ids[s.ID()]++
		speciesIDs[s.ID()] = true
		variables[s.ID()] = true
		if s.Compartment() == "" {
			output.Warnings = append(output.Warnings, IssueOutput{
				Code:    "NO_COMPARTMENT",
				Message: fmt.Sprintf("species %q has no compartment", s.ID()),
			})
		}
	}
	for _, r := range m.Reactions() {
		ids[r.ID()]++
	}

	for id, n := range ids {
		if n > 1 {
			output.Errors = append(output.Errors, IssueOutput{
				Code:    "DUP_ID",
				Message: fmt.Sprintf("identifier %q declared %d times", id, n),
			})
		}
	}

	for _, r := range m.Reactions() {
		refs := append(r.Reactants(), r.Products()...)
		for _, sr := range refs {
			if sr.Species() == "" {
				output.Errors = append(output.Errors, IssueOutput{
					Code:    "EMPTY_REF",
					Message: fmt.Sprintf("reaction %q has a species reference without a species", r.ID()),
				})
				continue
			}
			if !speciesIDs[sr.Species()] {
				output.Errors = append(output.Errors, IssueOutput{
					Code:    "UNKNOWN_SPECIES",
					Message: fmt.Sprintf("reaction %q references undeclared species %q", r.ID(), sr.Species()),
				})
			}
		}
	}

	for _, rule := range m.Rules() {
		if rule.Variable() == "" {
			output.Errors = append(output.Errors, IssueOutput{
				Code:    "EMPTY_VARIABLE",
				Message: "rule has no variable",
			})
			continue
		}
		if !variables[rule.Variable()] {
			output.Warnings = append(output.Warnings, IssueOutput{
				Code:    "UNKNOWN_VARIABLE",
				Message: fmt.Sprintf("rule governs undeclared variable %q", rule.Variable()),
			})
		}
		if rule.Formula() == "" {
			output.Warnings = append(output.Warnings, IssueOutput{
				Code:    "EMPTY_FORMULA",
				Message: fmt.Sprintf("rule for %q has no formula", rule.Variable()),
			})
		}
	}
}

func printValidationResult(w io.Writer, file string, result *ValidationOutput, verbose bool) {
	if result.Valid && len(result.Warnings) == 0 {
		fmt.Fprintf(w, "%s: OK\n", file)
		return
	}

	if result.Valid {
		fmt.Fprintf(w, "%s: OK (with %d warnings)\n", file, len(result.Warnings))
	} else {
		fmt.Fprintf(w, "%s: FAILED (%d errors, %d warnings)\n", file, len(result.Errors), len(result.Warnings))
	}

	if verbose || !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  ERROR %s: %s\n", e.Code, e.Message)
		}
	}

	if verbose {
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  WARNING %s: %s\n", warn.Code, warn.Message)
		}
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Show all warnings")
	fs.BoolVar(&opts.Verbose, "v", false, "Show all warnings (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sbml-inspect validate [options] <files...>

Options:
  --json         Output results as JSON
  -v, --verbose  Show all warnings

Examples:
  sbml-inspect validate model.xml
  sbml-inspect validate --json model.xml model.snap`)
}
