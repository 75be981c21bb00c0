package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lamchakchan/ai-tools/internal/catalog"
	"github.com/lamchakchan/ai-tools/internal/directory"
	"github.com/lamchakchan/ai-tools/internal/platform"
	"github.com/lamchakchan/ai-tools/internal/tui"
)

// version is set via -ldflags at build time
var version = "dev"

const helpText = `
ai-tools - AI Tools Directory

Usage:
  ai-tools [command] [options]

Commands:
  (none)                         Browse the directory interactively (TTY only)
  list                           List tools
    [--search, -s TEXT]          Match tool name or category (case-insensitive)
    [--category, -c NAME]        Only tools in this category
    [--sort name|popularity]     Sort order (default: popularity)
    [--json]                     JSON output
  categories [--json]            Categories with tool counts
  featured [--json]              Featured tools
  show <id> [--json]             Quick view of a single tool

Options:
  --help, -h       Show this help message
  --version, -v    Show version

Environment:
  AITOOLS_SORT     Default sort order for list and the interactive view
  AITOOLS_LOG      Write debug logs to this file
  NO_COLOR         Disable colors and the interactive view

Examples:
  ai-tools
  ai-tools list --search learning
  ai-tools list --category Robotics --sort name
  ai-tools categories
  ai-tools show 3
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	platform.InitColor()
	cfg := platform.LoadConfig()

	log, err := platform.NewLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	c, err := catalog.New(catalog.Sample())
	if err != nil {
		fmt.Fprintf(stderr, "Error loading catalog: %v\n", err)
		return 1
	}

	sort := catalog.ParseSortKey(cfg.DefaultSort)
	if sort == "" {
		sort = catalog.DefaultSort
	}
	runner := directory.New(c, stdout, sort)

	if len(args) == 0 {
		if !cfg.Accessible && platform.StdoutIsTerminal() {
			return exitOn(stderr, log, "tui", tui.Run(c, tui.Options{Sort: sort, Logger: log}))
		}
		return exitOn(stderr, log, "list", runner.List(nil))
	}

	command := args[0]
	log.Debug("command", zap.String("name", command), zap.Strings("args", args[1:]))

	switch command {
	case "--help", "-h":
		fmt.Fprint(stdout, helpText)
		return 0
	case "--version", "-v":
		fmt.Fprintf(stdout, "ai-tools %s\n", version)
		return 0
	case "list":
		return exitOn(stderr, log, command, runner.List(args[1:]))
	case "categories":
		return exitOn(stderr, log, command, runner.Categories(args[1:]))
	case "featured":
		return exitOn(stderr, log, command, runner.Featured(args[1:]))
	case "show":
		return exitOn(stderr, log, command, runner.Show(args[1:]))
	default:
		platform.PrintErrorLine(stderr, "Unknown command: "+command)
		fmt.Fprint(stderr, helpText)
		return 1
	}
}

// exitOn reports err and converts it to an exit code. Bad or unknown tool
// IDs get a hint pointing at the listing.
func exitOn(stderr io.Writer, log *zap.Logger, command string, err error) int {
	if err == nil {
		return 0
	}
	log.Warn("command failed", zap.String("command", command), zap.Error(err))
	fmt.Fprintf(stderr, "%s %v\n", platform.Red("Error:"), err)
	switch {
	case catalog.IsNotFound(err):
		platform.PrintWarningLine(stderr, "Run 'ai-tools list' to see tool IDs.")
	case catalog.IsValidation(err):
		platform.PrintWarningLine(stderr, "Tool IDs are numbers; run 'ai-tools list' to see them.")
	}
	return 1
}
