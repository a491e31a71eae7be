package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/burntnail/pulse/cmd"
	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/config"
	"github.com/burntnail/pulse/internal/engine"
	"github.com/burntnail/pulse/internal/identity"
	"github.com/burntnail/pulse/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if len(os.Args) > 1 && cmd.IsSubcommand(os.Args[1]) {
		cmd.Execute(os.Args[1:])
		return
	}

	cfg := config.DefaultConfig()
	if cfgDir, err := config.GetConfigDir(); err == nil {
		if loaded, loadErr := config.LoadConfig(filepath.Join(cfgDir, "config.toml")); loadErr == nil {
			cfg = loaded
		}
	}
	applyLaunchFlags(cfg, os.Args[1:])

	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider := openIdentityStore()
	mgr := engine.NewManager()

	boardsDir, err := config.GetBoardsDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	activeBoard := startInitialBoard(mgr, provider, boardsDir, cfg)

	watcher, err := board.NewWatcher(boardsDir)
	if err != nil {
		// Live reload is a convenience; run without it.
		watcher = nil
	}

	model := tui.NewAppModel(cfg, mgr, provider, watcher, boardsDir, activeBoard)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		mgr.StopAll()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyLaunchFlags overrides config values from --board and --theme
// arguments. Unknown flags are ignored so the TUI still launches.
func applyLaunchFlags(cfg *config.Config, args []string) {
	for i := 0; i < len(args)-1; i++ {
		switch args[i] {
		case "--board":
			cfg.DefaultBoard = args[i+1]
			i++
		case "--theme":
			cfg.Theme = args[i+1]
			i++
		}
	}
}

// openIdentityStore tries to open the encrypted identity store without
// prompting. A vault with a non-empty master key needs PULSE_MASTER_KEY
// set; otherwise targets that require credentials stay unresolved until
// the store is opened through the CLI.
func openIdentityStore() identity.Provider {
	path, err := config.GetIdentityStorePath()
	if err != nil {
		return nil
	}

	password := []byte(os.Getenv("PULSE_MASTER_KEY"))
	store, err := identity.NewFileStore(path, password)
	if err != nil {
		return nil
	}
	return store
}

// startInitialBoard starts a poller for the configured default board, or
// the first board on disk when no default is set. Returns the board name,
// or empty when nothing could be started.
func startInitialBoard(mgr *engine.Manager, provider identity.Provider, boardsDir string, cfg *config.Config) string {
	names, err := board.List(boardsDir)
	if err != nil || len(names) == 0 {
		return ""
	}

	name := names[0]
	if cfg.DefaultBoard != "" {
		for _, n := range names {
			if n == cfg.DefaultBoard {
				name = n
				break
			}
		}
	}

	b, err := board.Load(filepath.Join(boardsDir, name+".toml"))
	if err != nil {
		return ""
	}
	if err := mgr.Start(b, provider); err != nil {
		return ""
	}
	return name
}
