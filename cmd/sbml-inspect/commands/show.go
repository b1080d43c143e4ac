package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sbml-kit/sbml-go/pkg/core"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format      string // text, json, yaml
	Annotations bool   // include raw annotation markup
	File        string
}

// ShowOutput represents the document for display.
type ShowOutput struct {
	File    string       `json:"file" yaml:"file"`
	Level   uint         `json:"level" yaml:"level"`
	Version uint         `json:"version" yaml:"version"`
	Model   *ModelOutput `json:"model,omitempty" yaml:"model,omitempty"`
}

// ModelOutput represents the model contents.
type ModelOutput struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name,omitempty" yaml:"name,omitempty"`
	Parameters []ParamOutput    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Species    []SpeciesOutput  `json:"species,omitempty" yaml:"species,omitempty"`
	Reactions  []ReactionOutput `json:"reactions,omitempty" yaml:"reactions,omitempty"`
	Rules      []RuleOutput     `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// ParamOutput represents a single parameter.
type ParamOutput struct {
	ID         string   `json:"id" yaml:"id"`
	Value      *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Units      string   `json:"units,omitempty" yaml:"units,omitempty"`
	Constant   bool     `json:"constant" yaml:"constant"`
	Annotation string   `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// SpeciesOutput represents a single species.
type SpeciesOutput struct {
	ID                   string   `json:"id" yaml:"id"`
	Compartment          string   `json:"compartment,omitempty" yaml:"compartment,omitempty"`
	InitialConcentration *float64 `json:"initialConcentration,omitempty" yaml:"initialConcentration,omitempty"`
	BoundaryCondition    bool     `json:"boundaryCondition" yaml:"boundaryCondition"`
	Constant             bool     `json:"constant" yaml:"constant"`
	Annotation           string   `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// ReactionOutput represents a single reaction.
type ReactionOutput struct {
	ID         string      `json:"id" yaml:"id"`
	Reversible bool        `json:"reversible" yaml:"reversible"`
	Reactants  []RefOutput `json:"reactants,omitempty" yaml:"reactants,omitempty"`
	Products   []RefOutput `json:"products,omitempty" yaml:"products,omitempty"`
}

// RefOutput represents a species reference.
type RefOutput struct {
	Species       string  `json:"species" yaml:"species"`
	Stoichiometry float64 `json:"stoichiometry" yaml:"stoichiometry"`
	Constant      bool    `json:"constant" yaml:"constant"`
}

// RuleOutput represents a rule.
type RuleOutput struct {
	Type     string `json:"type" yaml:"type"`
	Variable string `json:"variable" yaml:"variable"`
	Formula  string `json:"formula" yaml:"formula"`
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printShowUsage(stderr)
		return exitCommandError
	}

	doc, err := loadDocument(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	output := buildShowOutput(doc, opts)

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(output)
		fmt.Fprint(stdout, string(data))
	default:
		printShowText(stdout, output)
	}

	return exitSuccess
}

func buildShowOutput(doc *core.Document, opts ShowOptions) ShowOutput {
	output := ShowOutput{
		File:    opts.File,
		Level:   doc.Level(),
		Version: doc.Version(),
	}

	m := doc.Model()
	if m == nil {
		return output
	}
	mo := &ModelOutput{ID: m.ID(), Name: m.Name()}

	for _, p := range m.Parameters() {
		po := ParamOutput{ID: p.ID(), Units: p.Units(), Constant: p.Constant()}
		if p.IsSetValue() {
			v := p.Value()
			po.Value = &v
		}
		if opts.Annotations {
			po.Annotation = p.AnnotationString()
		}
		mo.Parameters = append(mo.Parameters, po)
	}

	for _, s := range m.SpeciesList() {
		so := SpeciesOutput{
			ID:                s.ID(),
			Compartment:       s.Compartment(),
			BoundaryCondition: s.BoundaryCondition(),
			Constant:          s.Constant(),
		}
		if s.IsSetInitialConcentration() {
			c := s.InitialConcentration()
			so.InitialConcentration = &c
		}
		if opts.Annotations {
			so.Annotation = s.AnnotationString()
		}
		mo.Species = append(mo.Species, so)
	}

	for _, r := range m.Reactions() {
		ro := ReactionOutput{ID: r.ID(), Reversible: r.Reversible()}
		for _, sr := range r.Reactants() {
			ro.Reactants = append(ro.Reactants, refOutput(sr))
		}
		for _, sr := range r.Products() {
			ro.Products = append(ro.Products, refOutput(sr))
		}
		mo.Reactions = append(mo.Reactions, ro)
	}

	for _, r := range m.Rules() {
		ruleType := "unknown"
		switch {
		case r.IsRate():
			ruleType = "rate"
		case r.IsAssignment():
			ruleType = "assignment"
		}
		mo.Rules = append(mo.Rules, RuleOutput{
			Type:     ruleType,
			Variable: r.Variable(),
			Formula:  r.Formula(),
		})
	}

	output.Model = mo
	return output
}

func refOutput(sr *core.SpeciesReference) RefOutput {
	return RefOutput{
		Species:       sr.Species(),
		Stoichiometry: sr.Stoichiometry(),
		Constant:      sr.Constant(),
	}
}

func printShowText(w io.Writer, output ShowOutput) {
	fmt.Fprintf(w, "File: %s\n", output.File)
	fmt.Fprintf(w, "SBML Level %d Version %d\n", output.Level, output.Version)

	if output.Model == nil {
		fmt.Fprintln(w, "\nNo model.")
		return
	}
	m := output.Model

	fmt.Fprintf(w, "\nModel: %s", m.ID)
	if m.Name != "" {
		fmt.Fprintf(w, " (%s)", m.Name)
	}
	fmt.Fprintln(w)

	if len(m.Parameters) > 0 {
		fmt.Fprintln(w, "\nParameters:")
		for _, p := range m.Parameters {
			fmt.Fprintf(w, "  %s", p.ID)
			if p.Value != nil {
				fmt.Fprintf(w, " = %g", *p.Value)
			}
			if p.Units != "" {
				fmt.Fprintf(w, " [%s]", p.Units)
			}
			if p.Constant {
				fmt.Fprint(w, " (constant)")
			}
			fmt.Fprintln(w)
		}
	}

	if len(m.Species) > 0 {
		fmt.Fprintln(w, "\nSpecies:")
		for _, s := range m.Species {
			fmt.Fprintf(w, "  %s", s.ID)
			if s.Compartment != "" {
				fmt.Fprintf(w, " in %s", s.Compartment)
			}
			if s.InitialConcentration != nil {
				fmt.Fprintf(w, ", initially %g", *s.InitialConcentration)
			}
			fmt.Fprintln(w)
		}
	}

	if len(m.Reactions) > 0 {
		fmt.Fprintln(w, "\nReactions:")
		for _, r := range m.Reactions {
			arrow := "->"
			if r.Reversible {
				arrow = "<->"
			}
			fmt.Fprintf(w, "  %s: %s %s %s\n",
				r.ID, refList(r.Reactants), arrow, refList(r.Products))
		}
	}

	if len(m.Rules) > 0 {
		fmt.Fprintln(w, "\nRules:")
		for _, r := range m.Rules {
			fmt.Fprintf(w, "  [%s] %s = %s\n", r.Type, r.Variable, r.Formula)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d parameters, %d species, %d reactions, %d rules\n",
		len(m.Parameters), len(m.Species), len(m.Reactions), len(m.Rules))
}

func refList(refs []RefOutput) string {
	if len(refs) == 0 {
		return "(none)"
	}
	out := ""
	for i, r := range refs {
		if i > 0 {
			out += " + "
		}
		if r.Stoichiometry != 1 {
			out += fmt.Sprintf("%g ", r.Stoichiometry)
		}
		out += r.Species
	}
	return out
}

func parseShowArgs(args []string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts := ShowOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.BoolVar(&opts.Annotations, "annotations", false, "Include raw annotation markup")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.File = remaining[0]
	}

	return opts, nil
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sbml-inspect show [options] <file>

Options:
  -f, --format    Output format (text, json, yaml) [default: text]
  --annotations   Include raw annotation markup in the output

Examples:
  sbml-inspect show model.xml
  sbml-inspect show --format json model.xml
  sbml-inspect show --annotations model.snap`)
}
