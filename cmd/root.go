package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vitae/internal/config"
	"github.com/abhisek/vitae/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vitae",
	Short: "Interactive résumé for the terminal",
	Long: "vitae renders a résumé as a tabbed terminal page with animated skill bars, " +
		"reveal-on-scroll entries, tilting project cards and a persisted light/dark theme.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VITAE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides VITAE_CONFIG env var)")

	rootCmd.Flags().String("resume", "", "Path to résumé YAML file (default: built-in sample)")
	rootCmd.Flags().String("open", "", "Section id to show first")
	rootCmd.Flags().Bool("no-watch", false, "Do not reload the résumé file when it changes")

	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, else the default
// location, with VITAE_* overrides applied.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then VITAE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the preference database.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
