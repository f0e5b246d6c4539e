package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete clients",
	Long: `Delete one or more clients from the collection.

You are asked to confirm unless --yes is given. Several ids are deleted
concurrently; each succeeds or fails on its own.

Examples:
  clientdir delete 3
  clientdir delete 3 4 5 --yes`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int, 0, len(args))

		for _, arg := range args {
			id, err := parseID(arg)
			if err != nil {
				return err
			}

			ids = append(ids, id)
		}

		if !deleteYes && !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to delete without confirmation: stdin is not a terminal, pass --yes")
		}

		dir, err := current.loadDirectory(cmd.Context())
		if err != nil {
			return err
		}

		return runDelete(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), dir, ids, deleteYes)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking for confirmation")
}

func runDelete(ctx context.Context, in io.Reader, out io.Writer, dir *core.Directory, ids []int, yes bool) error {
	ids = core.UniqueIDs(ids)

	if len(ids) == 1 {
		return deleteOne(ctx, in, out, dir, ids[0], yes)
	}

	clients := make([]model.Client, 0, len(ids))

	for _, id := range ids {
		c, err := dir.Get(id)
		if err != nil {
			return err
		}

		clients = append(clients, c)
	}

	if !yes {
		for _, c := range clients {
			_, _ = fmt.Fprintf(out, "  %d  %s\n", c.ID, c.Name)
		}

		if !promptConfirm(in, out, fmt.Sprintf("Delete these %d clients? [y/N]: ", len(clients))) {
			_, _ = fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	err := dir.DeleteMany(ctx, ids)

	for _, id := range ids {
		if !dir.Store().Contains(id) {
			_, _ = fmt.Fprintf(out, "Deleted client %d.\n", id)
		}
	}

	return err
}

func deleteOne(ctx context.Context, in io.Reader, out io.Writer, dir *core.Directory, id int, yes bool) error {
	if yes {
		if err := dir.Delete(ctx, id); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Deleted client %d.\n", id)

		return nil
	}

	confirmed, err := dir.ConfirmDelete(ctx, id, func(c model.Client) bool {
		_, _ = fmt.Fprintf(out, "%s (%d)\n", c.Name, c.ID)
		return promptConfirm(in, out, "Are you sure you want to delete this client? [y/N]: ")
	})

	if err != nil {
		return err
	}

	if !confirmed {
		_, _ = fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	_, _ = fmt.Fprintf(out, "Deleted client %d.\n", id)

	return nil
}
