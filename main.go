// arena - a terminal client for the arena community.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/arena-tui/internal/cli"
	"github.com/jeranaias/arena-tui/internal/config"
	"github.com/jeranaias/arena-tui/internal/conversation"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/seed"
	"github.com/jeranaias/arena-tui/internal/session"
	"github.com/jeranaias/arena-tui/internal/ui/app"
	"github.com/jeranaias/arena-tui/internal/ui/dashboard"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdVersion:
		err = cli.HandleVersion(os.Stdout, args)
	case cli.CmdHelp:
		err = cli.HandleHelp(os.Stdout, args)
	case cli.CmdLogs:
		err = runLogs(args)
	case cli.CmdChat:
		err = runChat(args)
	default:
		err = runTUI(args)
	}

	if err != nil {
		cli.DisplayError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

// =============================================================================
// STARTUP
// =============================================================================

// runtimeState is everything a command needs after startup.
type runtimeState struct {
	cfg        *config.Config
	seed       *seed.Seed
	controller *conversation.Controller
	closeLog   func()
}

// start loads config and seed data and builds the conversation core.
func start(args cli.Args) (*runtimeState, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}
	if args.SeedPath != "" {
		cfg.Seed.Path = args.SeedPath
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return nil, err
	}

	s, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		closeLog()
		return nil, err
	}

	store, err := conversation.NewStore(cfg.Identity.Name, s.Feed, s.Threads)
	if err != nil {
		closeLog()
		return nil, err
	}
	ctrl := conversation.NewController(store, conversation.WithObserver(logEvent))

	log.Printf("STARTUP | version=%s self=%s seed=%q messages=%d threads=%d logs=%d",
		Version, cfg.Identity.Name, cfg.Seed.Path, len(s.Feed), len(s.Threads), len(s.Logs))

	return &runtimeState{cfg: cfg, seed: s, controller: ctrl, closeLog: closeLog}, nil
}

// loadConfig reads --config if given, otherwise ~/.arena. A broken config
// file is reported and the defaults are used.
func loadConfig(args cli.Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		return config.LoadFromPath(args.ConfigPath)
	}
	cfg, err := config.Load()
	if cfg == nil {
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v (using defaults)\n", cli.WarningStyle.Render("[!]"), err)
	}
	return cfg, nil
}

// setupLogging sends the standard logger to the configured file, or
// discards it. The TUI owns the terminal, so logs never go to stderr.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Log.File == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.Log.File, "arena")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func logEvent(ev conversation.Event) {
	switch ev.Kind {
	case conversation.EventModeChanged:
		log.Printf("MODE_CHANGED | from=%s to=%s", ev.Transition.From, ev.Transition.To)
	case conversation.EventBroadcastPosted:
		log.Printf("BROADCAST_POSTED | id=%d", ev.Result.Message.ID)
	case conversation.EventReplySent:
		log.Printf("REPLY_SENT | contact=%s", ev.Result.Thread.Contact)
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func runLogs(args cli.Args) error {
	rt, err := start(args)
	if err != nil {
		return err
	}
	defer rt.closeLog()
	return cli.HandleLogs(os.Stdout, args, rt.seed.Logs)
}

func runChat(args cli.Args) error {
	rt, err := start(args)
	if err != nil {
		return err
	}
	defer rt.closeLog()
	return cli.HandleChat(args, rt.controller, rt.seed.Players)
}

// runTUI starts the full-screen client.
func runTUI(args cli.Args) error {
	rt, err := start(args)
	if err != nil {
		return err
	}
	defer rt.closeLog()

	screen, err := app.ParseScreen(rt.cfg.UI.StartScreen)
	if err != nil {
		return err
	}

	seedPath := rt.cfg.Seed.Path
	loader := func() ([]model.LogEntry, error) {
		s, err := seed.Load(seedPath)
		if err != nil {
			return nil, err
		}
		return s.Logs, nil
	}

	m := app.New(app.Options{
		Theme:         styles.NewThemeFor(rt.cfg.UI.Theme),
		Controller:    rt.controller,
		Sessions:      session.NewManager(nil),
		Players:       rt.seed.Players,
		Logs:          rt.seed.Logs,
		Loader:        loader,
		StartScreen:   screen,
		ToastDuration: time.Duration(rt.cfg.UI.ToastSeconds) * time.Second,
	})

	var opts []tea.ProgramOption
	if rt.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	if seedPath != "" && rt.cfg.Seed.Watch {
		w, err := seed.NewWatcher(seedPath, seed.DefaultDebounce, func(s *seed.Seed, err error) {
			if err != nil {
				p.Send(dashboard.LogsLoadedMsg{Err: err, Watched: true})
				return
			}
			p.Send(dashboard.LogsLoadedMsg{Entries: s.Logs, Watched: true})
		})
		if err != nil {
			return fmt.Errorf("failed to watch seed file: %w", err)
		}
		if err := w.Watch(); err != nil {
			w.Close()
			return fmt.Errorf("failed to watch seed file: %w", err)
		}
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running arena: %w", err)
	}
	return nil
}
