package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientdir/internal/cli"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/database"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	showConfig  bool
	resetConfig bool
)

// configFlags are the flags configure persists when given.
var configFlags = []string{"api-url", "timeout", "log-level", "log-format", "remote-persists-creates"}

var errNoDatabase = errors.New("configuration database is unavailable")

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure clientdir settings",
	Long: `Configure the collection endpoint, request timeout and logging.

Without flags an interactive form is shown. With any of --api-url, --timeout,
--log-level, --log-format or --remote-persists-creates the given values are
stored directly.

Examples:
  clientdir configure
  clientdir configure --show
  clientdir configure --api-url http://localhost:3000/users --timeout 10
  clientdir configure --reset`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()

		if showConfig {
			return runShowConfig(w, current.db, current.cfg)
		}

		if current.db == nil {
			return errNoDatabase
		}

		if resetConfig {
			if err := current.db.ResetConfig(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(w, "Configuration reset to defaults.")

			return nil
		}

		if anyChanged(cmd.Flags(), configFlags) {
			return runSetConfig(w, current.db, cmd.Flags())
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive configuration needs a terminal; pass the values as flags")
		}

		m, err := cli.NewConfigureModel(current.db)
		if err != nil {
			return err
		}

		p := tea.NewProgram(&m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		if configModel, ok := finalModel.(*cli.ConfigureModel); ok && configModel.Err != nil {
			return configModel.Err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&showConfig, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&resetConfig, "reset", "r", false, "Reset configuration to defaults")
	configureCmd.Flags().Bool("remote-persists-creates", false, "Treat created clients as stored by the collection")
}

func anyChanged(flags *pflag.FlagSet, names []string) bool {
	for _, name := range names {
		if f := flags.Lookup(name); f != nil && f.Changed {
			return true
		}
	}

	return false
}

// runShowConfig prints the effective configuration as YAML.
func runShowConfig(w io.Writer, db database.Store, cfg model.Config) error {
	stored := false

	if db != nil {
		has, err := db.HasConfig()
		if err != nil {
			return err
		}

		stored = has
	}

	source := "defaults"
	if stored {
		source = "stored"
	}

	_, _ = fmt.Fprintf(w, "# effective configuration (base: %s, then environment and flags)\n", source)

	return encoding.Write(w, encoding.FormatYAML, cfg)
}

// runSetConfig stores the flag values on top of the stored configuration.
func runSetConfig(w io.Writer, db database.Store, flags *pflag.FlagSet) error {
	cfg, err := db.GetConfig()
	if err != nil {
		return err
	}

	if err := applyFlags(flags, cfg); err != nil {
		return err
	}

	if err := core.ValidateConfig(*cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := db.SaveConfig(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, "Configuration saved.")

	return nil
}
