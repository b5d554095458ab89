package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copyforge/copyforge/internal/cli"
	"github.com/copyforge/copyforge/internal/ui"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`copyforge - Terminal-based ad copy prompt builder

USAGE:
    copyforge [OPTIONS] [COMMAND]

OPTIONS:
    --help          Show this help information
    --version       Print version information

COMMANDS:
    (no command)       Start interactive TUI mode
    compose            Assemble the prompt for a brief and print it
    preview            Print the offline mock preview for a brief
    copy               Compose a prompt and copy it to the clipboard
    export             Compose a prompt and write it to a timestamped file
    catalogs           List the available tones, frameworks, styles and goals
    help               Show CLI command help

EXAMPLES:
    copyforge                                        # Start interactive mode
    copyforge compose --brief brief.yaml             # Compose from a YAML brief
    copyforge compose --mode headlines               # Headline prompt, defaults
    copyforge preview -b brief.yaml                  # Deterministic mock output
    copyforge copy -b brief.yaml                     # Prompt to clipboard
    copyforge export -b brief.yaml -o ./out          # Write prompt-<mode>-<ts>.txt
    copyforge help                                   # Detailed command help

Brief files are YAML; any omitted field keeps its default and out-of-range
numbers are clamped. Everything runs offline.
`)
}

func main() {
	var showVersion bool
	var showHelp bool

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("copyforge version %s\n", version)
		os.Exit(0)
	}

	// Check if we have command line arguments for CLI mode
	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.NewCLI()
		if err := cliHandler.ExecuteCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// No arguments provided - start TUI mode
	model, err := ui.NewModel()
	if err != nil {
		fmt.Println(err)
		return
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return
	}
}
