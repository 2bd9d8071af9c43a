// File: tui.go
// Title: TUI Shell Command
// Description: CLI command for the Bubbletea shell.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/rbdb/internal/session"
	"github.com/msto63/rbdb/internal/tui/shell"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive TUI shell",
	Long: `Starts the full-screen terminal UI.

The TUI shows a scrollable transcript of commands and results above a
single-line input. Successes are green, warnings amber, malformed
queries red.

Keys:
  Enter       run command
  ↑/↓         input history
  PgUp/PgDn   scroll transcript
  Ctrl+L      clear transcript
  Ctrl+C      quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return err
	}

	// The logger must not write to the terminal while the TUI owns it.
	logger := newLogger(cfg).WithOutput(logSink(cfg.GetString("log.file")))

	if err := shell.Run(shell.Config{
		Prompt:        cfg.GetString("shell.prompt", "RBDB -> "),
		MaxLineLength: cfg.GetInt("shell.max_line_length", session.DefaultMaxLineLength),
		Logger:        logger,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}

	return nil
}

// logSink returns a log destination that stays off the terminal: the
// configured log file when one is set, otherwise nothing.
func logSink(path string) io.Writer {
	if path == "" {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}
