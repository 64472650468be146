// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and simple command handlers for arena.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogs
	CmdChat
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	JSON       bool   // Output in JSON format
	ConfigPath string // --config overrides ~/.arena/config.toml
	SeedPath   string // --seed overrides the configured seed file

	// logs
	Search string
	Level  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `arena - terminal client for the arena community

Usage:
  arena                      Start the TUI (default)
  arena tui                  Start the TUI
  arena logs [query]         Filter and print the log corpus
    --search, -s TEXT        Case-insensitive match on message or source
    --level, -l LEVEL        all, info, warning, error or success
    --json                   Output in JSON format
  arena chat                 Line-mode chat
  arena version [--json]     Show version information
  arena help                 Show this help

Global flags:
  --config FILE              Read configuration from FILE
  --seed FILE                Read seed data from FILE (.toml, .yaml, .yml)
  -q, --quiet                Suppress banners and hints

Chat commands:
  /dm NAME                   Direct your next message to NAME
  /cancel                    Return to the global feed
  /threads                   List direct message threads
  /feed [N]                  Show the newest N global messages
  /players                   Show online players
  /help                      Show chat commands
  /quit                      Leave

TUI keys:
  F1 help   F2 dashboard   F3 chat   esc dismiss toast   ctrl+c quit

Version: %s
`

// PrintUsage writes the usage text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "arena version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv (without the program name) into a command and args.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "logs", "log":
		parseLogsArgs(&parsedArgs, remaining)
		return CmdLogs, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		parsedArgs.Raw = nil
		return CmdHelp, parsedArgs

	default:
		// Unknown commands get the help text instead of a silent TUI.
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--json":
			parsedArgs.JSON = true
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		case "--seed":
			if i+1 < len(args) {
				i++
				parsedArgs.SeedPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--seed="):
				parsedArgs.SeedPath = strings.TrimPrefix(arg, "--seed=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseLogsArgs fills the logs filter. Positionals form the search text
// when --search is absent.
func parseLogsArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Search = p.Flag("search", "s")
	if args.Search == "" {
		args.Search = JoinPositionalArgs(p, 0)
	}
	args.Level = p.Flag("level", "l")
	if args.Level == "" {
		args.Level = "all"
	}
	if p.BoolFlag("json") {
		args.JSON = true
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleVersion writes version information, as JSON when requested.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print(w)
	}
	PrintVersion(w)
	return nil
}

// HandleHelp writes the usage text. Unknown commands are reported first.
func HandleHelp(w io.Writer, args Args) error {
	if len(args.Raw) > 0 {
		fmt.Fprintf(w, "%s unknown command %q\n\n", WarningStyle.Render("[!]"), args.Raw[0])
	}
	PrintUsage(w)
	if len(args.Raw) > 0 {
		return NewValidationError("command", args.Raw[0], "not recognized")
	}
	return nil
}
