package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/spf13/cobra"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the details of a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		format, err := encoding.ParseFormat(showOutput)
		if err != nil {
			return err
		}

		dir, err := current.loadDirectory(cmd.Context())
		if err != nil {
			return err
		}

		return runShow(cmd.OutOrStdout(), dir, id, format)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "table", "Output format: table, json, yaml")
}

func runShow(w io.Writer, dir *core.Directory, id int, format encoding.Format) error {
	c, err := dir.Get(id)
	if err != nil {
		return err
	}

	return renderClient(w, c, format)
}

// parseID parses a positive client id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid client id %q", arg)
	}

	return id, nil
}
