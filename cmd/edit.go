package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	editDraft  model.Draft
	editOutput string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a client",
	Long: `Edit the name, email, phone or company name of a client.

Fields without a flag keep their current value.

Examples:
  clientdir edit 3 --phone 555-0199
  clientdir edit 3 --company "Romaguera-Jacobson" --email nathan@example.net`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		format, err := encoding.ParseFormat(editOutput)
		if err != nil {
			return err
		}

		dir, err := current.loadDirectory(cmd.Context())
		if err != nil {
			return err
		}

		return runEdit(cmd.Context(), cmd.OutOrStdout(), dir, id, changedDraft(cmd.Flags(), editDraft), format)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	addDraftFlags(editCmd, &editDraft)
	editCmd.Flags().StringVarP(&editOutput, "output", "o", "table", "Output format: table, json, yaml")
}

// draftPatch holds the fields given on the command line; nil means unchanged.
type draftPatch struct {
	Name, Email, Phone, Company *string
}

func changedDraft(flags *pflag.FlagSet, d model.Draft) draftPatch {
	var p draftPatch

	if flags.Changed("name") {
		p.Name = &d.Name
	}

	if flags.Changed("email") {
		p.Email = &d.Email
	}

	if flags.Changed("phone") {
		p.Phone = &d.Phone
	}

	if flags.Changed("company") {
		p.Company = &d.Company
	}

	return p
}

// apply overlays the patch onto d.
func (p draftPatch) apply(d model.Draft) model.Draft {
	if p.Name != nil {
		d.Name = *p.Name
	}

	if p.Email != nil {
		d.Email = *p.Email
	}

	if p.Phone != nil {
		d.Phone = *p.Phone
	}

	if p.Company != nil {
		d.Company = *p.Company
	}

	return d
}

func (p draftPatch) empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Company == nil
}

func runEdit(ctx context.Context, w io.Writer, dir *core.Directory, id int, patch draftPatch, format encoding.Format) error {
	if patch.empty() {
		return fmt.Errorf("nothing to change: pass at least one of --name, --email, --phone, --company")
	}

	existing, err := dir.Get(id)
	if err != nil {
		return err
	}

	c, err := dir.Update(ctx, id, patch.apply(model.DraftFromClient(existing)))
	if err != nil {
		return validationFailure(err)
	}

	if format != encoding.FormatTable {
		return renderClient(w, *c, format)
	}

	_, _ = fmt.Fprintf(w, "Client %d updated.\n", c.ID)

	return nil
}
