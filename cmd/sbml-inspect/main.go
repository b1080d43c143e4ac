// sbml-inspect is a CLI tool for inspecting, validating, and converting
// SBML documents.
package main

import (
	"fmt"
	"os"

	"github.com/sbml-kit/sbml-go/cmd/sbml-inspect/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("sbml-inspect version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`sbml-inspect - SBML document inspection and conversion tool

Usage:
  sbml-inspect <command> [options] [file]

Commands:
  show       Display document contents in various formats
  validate   Check a document for structural problems
  convert    Convert between markup and snapshot formats

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  sbml-inspect show model.xml
  sbml-inspect show --format json model.xml
  sbml-inspect validate model.xml
  sbml-inspect convert model.xml -o model.snap

For command-specific help, run:
  sbml-inspect <command> --help`)
}
