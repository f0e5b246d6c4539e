package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientdir/internal/application"
	"github.com/inovacc/clientdir/internal/cli"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive client dashboard",
	Long: `Open the interactive client dashboard.

The collection is fetched once when the dashboard starts. Use / to search,
a to add, enter to view, e to edit and d to delete a client. Logs are written
to the application log file unless --log-file is given.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the dashboard needs an interactive terminal; use \"%s list\" instead", application.AppName)
	}

	dir, err := current.newDirectory()
	if err != nil {
		return err
	}

	m := cli.NewDashboard(dir, cli.DashboardOptions{
		Logger:  current.logger,
		Timeout: core.Timeout(current.cfg),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()

	return err
}
