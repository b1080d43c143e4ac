package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sbml-kit/sbml-go/pkg/sbmlxml"
	"github.com/sbml-kit/sbml-go/pkg/snapshot"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string // Empty means stdout
	To     string // xml or snapshot; empty flips the input format
}

// RunConvert runs the convert command.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}

	input, err := os.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	target := opts.To
	if target == "" {
		if isMarkup(input) {
			target = "snapshot"
		} else {
			target = "xml"
		}
	}

	doc, err := loadDocument(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing input: %v\n", err)
		return exitCommandError
	}

	var output []byte
	switch target {
	case "xml":
		text, err := sbmlxml.Write(doc)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		output = []byte(text)
	case "snapshot":
		output, err = snapshot.Encode(doc)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	default:
		fmt.Fprintf(stderr, "Error: unknown target format %q\n", target)
		return exitCommandError
	}

	if opts.Output == "" || opts.Output == "-" {
		if _, err := stdout.Write(output); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
	} else {
		if err := os.WriteFile(opts.Output, output, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Converted %s -> %s (%s)\n", opts.Input, opts.Output, target)
	}

	return exitSuccess
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	opts := ConvertOptions{}

	fs.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.Output, "output", "", "Output file")
	fs.StringVar(&opts.To, "to", "", "Target format (xml, snapshot)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.Input = remaining[0]
	}

	return opts, nil
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: sbml-inspect convert [options] <file>

Converts between markup and snapshot formats. Without --to, the input
format is flipped.

Options:
  -o, --output  Output file (default: stdout)
  --to          Target format (xml, snapshot)

Examples:
  sbml-inspect convert model.xml -o model.snap
  sbml-inspect convert model.snap -o model.xml
  sbml-inspect convert --to xml model.snap`)
}
