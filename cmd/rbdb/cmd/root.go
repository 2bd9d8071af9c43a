package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/rbdb/internal/core/config"
	rbdberror "github.com/msto63/rbdb/internal/core/error"
	rbdblog "github.com/msto63/rbdb/internal/core/log"
)

var (
	cfgFile string
	verbose bool
)

const defaultConfigPath = "./configs/rbdb.toml"

var rootCmd = &cobra.Command{
	Use:   "rbdb",
	Short: "RBDB - interactive in-memory key/value database",
	Long: `RBDB is an interactive command processor over a single
in-memory key/value table.

Verbs:
  INSERT key value  - add a new entry
  SELECT key        - print the stored value
  UPDATE key value  - replace an existing entry
  DELETE key        - remove an entry

Type quit or exit to end the session.`,
	RunE: runShell,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/rbdb.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// configDefaults are used when no config file is present.
func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"shell.prompt":          "RBDB -> ",
		"shell.max_line_length": 4096,
		"log.level":             "info",
		"log.format":            "text",
	}
}

// loadConfig loads the config file named by --config, falling back to
// the default path and then to built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadWithOptions(path, config.LoadOptions{
		EnvPrefix: "RBDB",
		Defaults:  configDefaults(),
	})
	if err != nil {
		// A missing default config file is fine; an explicit --config
		// that cannot be loaded is not.
		if cfgFile == "" && rbdberror.HasCode(err, rbdberror.CodeMissingConfig) {
			return config.NewFromDefaults(configDefaults(), "RBDB"), nil
		}
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger from config. Output goes to
// stderr so stdout stays reserved for query results.
func newLogger(cfg *config.Config) *rbdblog.Logger {
	level := rbdblog.DefaultLevel()
	if parsed, err := rbdblog.ParseLevel(cfg.GetString("log.level", "info")); err == nil {
		level = parsed
	}
	if verbose {
		level = rbdblog.LevelDebug
	}

	format := rbdblog.FormatText
	if parsed, err := rbdblog.ParseFormat(cfg.GetString("log.format", "text")); err == nil {
		format = parsed
	}

	return rbdblog.NewWithConfig(rbdblog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "rbdb",
	})
}
