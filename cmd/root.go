package cmd

import (
	"fmt"
	"os"
)

// knownSubcommands is the set of CLI subcommands that bypass the TUI.
var knownSubcommands = map[string]bool{
	"identity": true,
	"check":    true,
	"config":   true,
	"themes":   true,
	"version":  true,
	"help":     true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "identity":
		identityCmd(args[1:])
	case "check":
		checkCmd(args[1:])
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Println("pulse v0.1.0")
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pulse - latency probe monitor

Usage:
  pulse                     Launch TUI monitor
  pulse --board NAME        Launch with specific board
  pulse --theme NAME        Launch with theme override
  pulse identity <cmd>      Manage probe credentials
  pulse check KIND ADDRESS  Probe a target once and print the round trip
  pulse config <cmd>        Manage configuration
  pulse themes              List available themes
  pulse version             Show version
  pulse help                Show this help

Identity Commands:
  pulse identity list              List all identities
  pulse identity add               Add a new identity (interactive)
  pulse identity remove NAME       Remove an identity
  pulse identity test NAME KIND ADDRESS  Probe once with an identity

Check:
  pulse check http https://example.com/healthz
  pulse check tcp db.internal:5432
  pulse check --identity NAME snmp router.local

Config Commands:
  pulse config path                Show config directory path
  pulse config theme NAME          Set default theme
  pulse config identity NAME       Set default identity
  pulse config board NAME          Set default board`)
}
