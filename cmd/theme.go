package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vitae/internal/store"
	"github.com/abhisek/vitae/internal/ui/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or set the persisted theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		prefs := st.Preferences()
		current := theme.NewController(prefs, nil, nil, 0, 0).InitialTheme(ctx)
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		}

		next, err := setTheme(ctx, prefs, args[0], current)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

// setTheme resolves arg against current and persists the result.
func setTheme(ctx context.Context, prefs store.PreferenceRepo, arg string, current theme.Mode) (theme.Mode, error) {
	next := current.Opposite()
	if arg != "toggle" {
		m, ok := theme.ParseMode(arg)
		if !ok {
			return current, fmt.Errorf("unknown theme %q: want light, dark or toggle", arg)
		}
		next = m
	}
	if err := prefs.Set(ctx, theme.PreferenceKey, next.String()); err != nil {
		return current, fmt.Errorf("set theme preference: %w", err)
	}
	return next, nil
}
