package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vitae/internal/app"
	"github.com/abhisek/vitae/internal/logging"
	"github.com/abhisek/vitae/internal/resume"
	"github.com/abhisek/vitae/internal/store"
)

// runApp loads config, résumé and preferences, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if p, _ := cmd.Flags().GetString("resume"); p != "" {
		cfg.Resume = p
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Watch = false
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	r := resume.Default()
	if cfg.Resume != "" {
		r, err = resume.Load(cfg.Resume)
		if err != nil {
			return err
		}
	}

	opts := app.Options{
		Resume:     r,
		ResumePath: cfg.Resume,
		Config:     cfg,
		Log:        log,
	}
	opts.Open, _ = cmd.Flags().GetString("open")

	// The page works without persistence; the theme just won't stick.
	st, err := openStore(cmd, cfg)
	if err != nil {
		log.Warn("preferences unavailable", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Preferences unavailable:", err)
		opts.Prefs = store.NewMemoryPreferences()
	} else {
		defer st.Close()
		opts.Prefs = st.Preferences()
	}

	return app.Run(opts)
}
