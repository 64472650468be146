// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - line-mode chat over the conversation controller.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/arena-tui/internal/config"
	"github.com/jeranaias/arena-tui/internal/conversation"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/util"
)

// defaultFeedLines is how many messages /feed shows without an argument.
const defaultFeedLines = 10

var chatCommands = []string{"/dm ", "/cancel", "/threads", "/feed", "/players", "/help", "/quit"}

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with history loaded from the config directory.
func NewChatCLI(complete liner.Completer) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if complete != nil {
		line.SetCompleter(complete)
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line with history navigation.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with 0600 permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession executes chat input against a controller.
type ChatSession struct {
	Controller *conversation.Controller
	Players    []model.Player
	Out        io.Writer
}

// Prompt returns the prompt for the current mode.
func (s *ChatSession) Prompt() string {
	if contact, ok := s.Controller.Mode().Contact(); ok {
		return "arena -> " + contact + "> "
	}
	return "arena> "
}

// Complete suggests slash commands and, after "/dm ", contact names.
func (s *ChatSession) Complete(line string) []string {
	if rest, ok := strings.CutPrefix(line, "/dm "); ok {
		var out []string
		for _, name := range s.contacts() {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(rest)) {
				out = append(out, "/dm "+name)
			}
		}
		return out
	}
	var out []string
	for _, c := range chatCommands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

// contacts lists thread contacts followed by players without a thread.
func (s *ChatSession) contacts() []string {
	store := s.Controller.Store()
	var names []string
	for _, t := range store.Threads() {
		names = append(names, t.Contact)
	}
	for _, p := range s.Players {
		if !store.HasThread(p.Name) {
			names = append(names, p.Name)
		}
	}
	return names
}

// Exec runs one line of input. It returns false when the session should end.
func (s *ChatSession) Exec(input string) (bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return true, nil
	}
	if strings.HasPrefix(input, "/") {
		return s.execCommand(input)
	}
	return true, s.send(input)
}

func (s *ChatSession) execCommand(input string) (bool, error) {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	arg := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch cmd {
	case "/quit", "/exit", "/q":
		return false, nil

	case "/help", "/?":
		s.printHelp()

	case "/dm", "/msg":
		if arg == "" {
			return true, NewValidationErrorWithExample("contact", arg, "a contact name is required", "/dm Player123")
		}
		s.Controller.SelectContact(arg)
		fmt.Fprintf(s.Out, "%s Messaging %s. /cancel returns to the global feed.\n", InfoStyle.Render("[i]"), SenderStyle.Render(arg))
		if !s.Controller.Store().HasThread(arg) {
			fmt.Fprintf(s.Out, "%s No conversation with %s yet.\n", WarningStyle.Render("[!]"), arg)
		}

	case "/cancel":
		if t := s.Controller.CancelDirect(); t.Changed() {
			fmt.Fprintf(s.Out, "%s Back to the global feed.\n", InfoStyle.Render("[i]"))
		} else {
			fmt.Fprintf(s.Out, "%s Already on the global feed.\n", DimStyle.Render("[i]"))
		}

	case "/threads", "/dms":
		s.printThreads()

	case "/feed":
		n := defaultFeedLines
		if arg != "" {
			v, err := strconv.Atoi(arg)
			if err != nil || v <= 0 {
				return true, NewValidationError("count", arg, "must be a positive number")
			}
			n = v
		}
		s.printFeed(n)

	case "/players", "/online":
		s.printPlayers()

	default:
		return true, NewValidationErrorWithExample("command", cmd, "unknown chat command", "/help")
	}
	return true, nil
}

func (s *ChatSession) send(content string) error {
	res, err := s.Controller.Send(content)
	if err != nil {
		if errors.Is(err, conversation.ErrUnknownContact) {
			return fmt.Errorf("message not sent: %w", err)
		}
		return err
	}

	if res.IsDirect() && res.Notice != nil {
		fmt.Fprintf(s.Out, "%s %s %s\n",
			SuccessStyle.Render("[OK]"),
			SuccessStyle.Render(res.Notice.Title()),
			res.Notice.Description())
		return nil
	}
	fmt.Fprintln(s.Out, formatMessage(res.Message))
	return nil
}

// =============================================================================
// OUTPUT
// =============================================================================

func (s *ChatSession) printHelp() {
	fmt.Fprintln(s.Out, TitleStyle.Render("Chat commands"))
	fmt.Fprintln(s.Out, "  /dm NAME      Direct your next message to NAME")
	fmt.Fprintln(s.Out, "  /cancel       Return to the global feed")
	fmt.Fprintln(s.Out, "  /threads      List direct message threads")
	fmt.Fprintln(s.Out, "  /feed [N]     Show the newest N global messages")
	fmt.Fprintln(s.Out, "  /players      Show online players")
	fmt.Fprintln(s.Out, "  /quit         Leave")
}

func (s *ChatSession) printThreads() {
	threads := s.Controller.Store().Threads()
	if len(threads) == 0 {
		fmt.Fprintln(s.Out, DimStyle.Render("No direct messages."))
		return
	}
	for _, t := range threads {
		unread := ""
		if t.HasUnread() {
			unread = " " + WarningStyle.Render(fmt.Sprintf("(%d unread)", t.Unread))
		}
		fmt.Fprintf(s.Out, "%s%s %s %s\n",
			SenderStyle.Render(t.Contact), unread,
			DimStyle.Render(t.LastMessage.SentAt), t.LastMessage.Content)
	}
}

func (s *ChatSession) printFeed(n int) {
	feed := s.Controller.Store().Feed()
	if n < len(feed) {
		feed = feed[:n]
	}
	// Oldest first, so the newest line sits above the prompt.
	for i := len(feed) - 1; i >= 0; i-- {
		fmt.Fprintln(s.Out, formatMessage(feed[i]))
	}
}

func (s *ChatSession) printPlayers() {
	nameWidth := 0
	for _, p := range s.Players {
		nameWidth = max(nameWidth, util.StringWidth(p.Name))
	}
	for _, p := range s.Players {
		status := InfoStyle.Render(p.Status)
		if p.InGame() {
			status = SuccessStyle.Render(p.Status)
		}
		fmt.Fprintf(s.Out, "%s %s\n", SenderStyle.Render(util.PadRight(p.Name, nameWidth)), status)
	}
}

func formatMessage(m model.Message) string {
	return fmt.Sprintf("%s %s %s", DimStyle.Render("["+m.SentAt+"]"), SenderStyle.Render(m.Sender+":"), m.Content)
}

// =============================================================================
// REPL
// =============================================================================

// HandleChat runs the interactive chat loop until /quit, Ctrl+C or EOF.
func HandleChat(args Args, ctrl *conversation.Controller, players []model.Player) error {
	if err := RequiresTTY("chat"); err != nil {
		return err
	}

	session := &ChatSession{
		Controller: ctrl,
		Players:    players,
		Out:        os.Stdout,
	}
	input := NewChatCLI(session.Complete)
	defer input.Close()

	if !args.Quiet {
		fmt.Println(TitleStyle.Render("arena chat") + DimStyle.Render("  /help for commands, /quit to leave"))
		session.printFeed(defaultFeedLines)
	}
	log.Printf("CHAT_REPL_START | self=%s", ctrl.Store().Self())

	for {
		line, err := input.ReadInput(session.Prompt())
		if err != nil {
			// Ctrl+C (liner.ErrPromptAborted) or EOF both end the session.
			fmt.Println()
			return nil
		}

		cont, err := session.Exec(line)
		if err != nil {
			DisplayError(os.Stderr, err)
		}
		if !cont {
			return nil
		}
	}
}
