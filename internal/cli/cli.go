// Package cli provides the headless one-shot interface: compose, preview,
// copy or export without entering the TUI. The brief comes from a YAML file
// or stays at its defaults.
package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/copyforge/copyforge/internal/clipboard"
	"github.com/copyforge/copyforge/internal/composer"
	"github.com/copyforge/copyforge/internal/export"
	"github.com/copyforge/copyforge/internal/models"
	"github.com/copyforge/copyforge/internal/preview"
	"github.com/copyforge/copyforge/internal/validation"
)

// CLI executes headless commands against the pure core.
type CLI struct{}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{}
}

// ExecuteCommand processes a CLI command and returns the result.
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "compose":
		return c.compose(commandArgs)
	case "preview":
		return c.preview(commandArgs)
	case "copy":
		return c.copy(commandArgs)
	case "export":
		return c.export(commandArgs)
	case "catalogs":
		return c.catalogs()
	case "help":
		return c.printUsage()
	default:
		return fmt.Errorf("unknown command: %s (try 'help')", command)
	}
}

// commonOptions are the flags shared by every command.
type commonOptions struct {
	mode      models.Mode
	briefPath string
	output    string
}

func parseCommon(args []string) (commonOptions, error) {
	opts := commonOptions{mode: models.ModeAdCopy}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--mode", "-m":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--mode requires a value")
			}
			i++
			switch strings.ToLower(args[i]) {
			case "ad-copy", "adcopy", "ad copy":
				opts.mode = models.ModeAdCopy
			case "headlines", "headline":
				opts.mode = models.ModeHeadlines
			default:
				return opts, fmt.Errorf("unknown mode %q (use ad-copy or headlines)", args[i])
			}
		case "--brief", "-b":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--brief requires a file path")
			}
			i++
			opts.briefPath = args[i]
		case "--output", "-o":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--output requires a value")
			}
			i++
			opts.output = args[i]
		}
	}

	return opts, nil
}

// loadBrief reads a YAML brief file, or returns the default brief when no
// path is given. The result is normalized and catalog-checked.
func loadBrief(path string) (models.Brief, error) {
	b := models.DefaultBrief()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("failed to read brief: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("failed to parse brief: %w", err)
	}

	validation.Normalize(&b)
	if err := validation.Validate(b); err != nil {
		return b, err
	}
	return b, nil
}

// compose prints the composed prompt, or writes it when --output is set.
func (c *CLI) compose(args []string) error {
	opts, err := parseCommon(args)
	if err != nil {
		return err
	}
	brief, err := loadBrief(opts.briefPath)
	if err != nil {
		return err
	}

	prompt := composer.Compose(opts.mode, brief)

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(prompt), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		fmt.Printf("Wrote prompt to %s\n", opts.output)
		return nil
	}

	fmt.Print(prompt)
	return nil
}

// preview prints the mock preview items for the selected mode.
func (c *CLI) preview(args []string) error {
	opts, err := parseCommon(args)
	if err != nil {
		return err
	}
	brief, err := loadBrief(opts.briefPath)
	if err != nil {
		return err
	}

	if opts.mode == models.ModeHeadlines {
		for i, h := range preview.SimulateHeadlines(brief) {
			fmt.Printf("%2d. %s\n", i+1, h)
		}
		return nil
	}

	for i, v := range preview.SimulateAdCopy(brief) {
		fmt.Printf("--- Variation %d ---\n%s\n", i+1, v.Body)
		if v.TextOnCreative != "" {
			fmt.Printf("TOC: %s\n", v.TextOnCreative)
		}
	}
	return nil
}

// copy puts the composed prompt on the system clipboard.
func (c *CLI) copy(args []string) error {
	opts, err := parseCommon(args)
	if err != nil {
		return err
	}
	brief, err := loadBrief(opts.briefPath)
	if err != nil {
		return err
	}

	msg, err := clipboard.CopyWithFallback(composer.Compose(opts.mode, brief))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// export writes the composed prompt to a timestamped file. --output names a
// directory here.
func (c *CLI) export(args []string) error {
	opts, err := parseCommon(args)
	if err != nil {
		return err
	}
	brief, err := loadBrief(opts.briefPath)
	if err != nil {
		return err
	}

	path, err := export.WritePrompt(opts.output, opts.mode, composer.Compose(opts.mode, brief))
	if err != nil {
		return err
	}
	fmt.Printf("Wrote prompt to %s\n", path)
	return nil
}

// catalogs lists the accepted values for every enumerated brief field.
func (c *CLI) catalogs() error {
	sections := []struct {
		name    string
		entries []string
	}{
		{"Tones", models.Tones},
		{"Frameworks (ad-copy mode)", models.Frameworks},
		{"Headline styles (headline mode)", models.HeadlineStyles},
		{"Languages", models.Languages},
		{"Campaign goals", models.CampaignGoals},
		{"Aspect ratios", models.AspectRatios},
	}

	for _, s := range sections {
		fmt.Printf("%s:\n", s.name)
		for _, entry := range s.entries {
			fmt.Printf("  %s\n", entry)
		}
		fmt.Println()
	}
	return nil
}

func (c *CLI) printUsage() error {
	fmt.Print(`copyforge CLI mode

USAGE:
    copyforge <command> [flags]

COMMANDS:
    compose     Print the composed LLM prompt
    preview     Print the offline mock preview
    copy        Copy the composed prompt to the clipboard
    export      Write the prompt to prompt-{mode}-{timestamp}.txt
    catalogs    List accepted values for the choice fields
    help        Show this help

FLAGS:
    --mode, -m      ad-copy (default) or headlines
    --brief, -b     YAML brief file (defaults used when omitted)
    --output, -o    Output file (compose) or directory (export)

EXAMPLES:
    copyforge compose --brief launch.yaml
    copyforge compose -m headlines -b launch.yaml -o prompt.txt
    copyforge preview --brief launch.yaml
    copyforge copy -b launch.yaml
    copyforge export -b launch.yaml -o ./prompts
`)
	return nil
}
