package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vitae/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the persisted theme preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Preferences().Delete(cmd.Context(), theme.PreferenceKey); err != nil {
			return fmt.Errorf("delete theme preference: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Theme preference cleared; next start uses light mode.")
		return nil
	},
}
