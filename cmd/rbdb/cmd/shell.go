// File: shell.go
// Title: Plain Shell Command
// Description: Line-oriented interactive shell over stdin/stdout. This
//              is the default command and also available as "shell".
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	rbdberror "github.com/msto63/rbdb/internal/core/error"
	rbdblog "github.com/msto63/rbdb/internal/core/log"
	"github.com/msto63/rbdb/internal/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell (default)",
	Long: `Starts the line-oriented interactive shell.

Each input line is one command: a verb (INSERT, SELECT, UPDATE,
DELETE), a key, and for INSERT and UPDATE a value. Results go to
stdout, warnings and malformed-query messages to stderr. The session
ends on quit, exit, or end of input.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return err
	}
	logger := newLogger(cfg)

	sess := session.New(session.Options{
		Logger:        logger,
		MaxLineLength: cfg.GetInt("shell.max_line_length", session.DefaultMaxLineLength),
	})
	prompt := cfg.GetString("shell.prompt", "RBDB -> ")

	fmt.Println("Database has started...")
	if verbose {
		fmt.Fprintf(os.Stderr, "args: %s\n", strings.Join(os.Args, " "))
	}
	logger.Info("session started", rbdblog.Fields{
		"session_id": sess.ID(),
	})

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)

		if !scanner.Scan() {
			// EOF ends the session cleanly; a read error does not.
			if err := scanner.Err(); err != nil {
				return rbdberror.Wrap(err, "reading input").
					WithCode(rbdberror.CodeIOFailure)
			}
			fmt.Println()
			break
		}
		line := scanner.Text()

		if session.IsSentinel(line) {
			break
		}

		result, err := sess.ProcessLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Query is malformed: %v\n", err)
			continue
		}

		for _, warning := range result.Warnings {
			fmt.Fprintln(os.Stderr, warning.Message)
		}
		if result.Output != "" {
			fmt.Println(result.Output)
		}
	}

	logger.Info("session ended", rbdblog.Fields{
		"session_id": sess.ID(),
		"entries":    sess.Table().Len(),
	})
	return nil
}
