package cmd

import (
	"io"

	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listOutput string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List clients",
	Long: `List the clients of the collection.

--search keeps clients whose name, email or company name contains the query,
ignoring case.

Examples:
  clientdir list
  clientdir list --search romaguera
  clientdir list -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := encoding.ParseFormat(listOutput)
		if err != nil {
			return err
		}

		dir, err := current.loadDirectory(cmd.Context())
		if err != nil {
			return err
		}

		return runList(cmd.OutOrStdout(), dir, listSearch, format)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only list clients matching the query")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format: table, json, yaml")
}

func runList(w io.Writer, dir *core.Directory, query string, format encoding.Format) error {
	return renderClients(w, dir.Search(query), format)
}
