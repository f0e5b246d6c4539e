package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/spf13/cobra"
)

var (
	addDraft  model.Draft
	addOutput string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client",
	Long: `Add a client to the collection.

The username is derived from the part of the email before the @.

Examples:
  clientdir add --name "Ada Lovelace" --email ada@example.com --phone 555-0100 --company "Analytical Engines"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := encoding.ParseFormat(addOutput)
		if err != nil {
			return err
		}

		// Reject bad input before touching the network.
		if errs := core.Validate(addDraft); !errs.Empty() {
			return validationFailure(&core.ValidationError{Fields: errs})
		}

		dir, err := current.loadDirectory(cmd.Context())
		if err != nil {
			return err
		}

		return runAdd(cmd.Context(), cmd.OutOrStdout(), dir, addDraft, format)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addDraftFlags(addCmd, &addDraft)
	addCmd.Flags().StringVarP(&addOutput, "output", "o", "table", "Output format: table, json, yaml")
}

// addDraftFlags binds the client form fields to flags.
func addDraftFlags(cmd *cobra.Command, d *model.Draft) {
	cmd.Flags().StringVar(&d.Name, "name", "", "Client name")
	cmd.Flags().StringVar(&d.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&d.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&d.Company, "company", "", "Company name")
}

func runAdd(ctx context.Context, w io.Writer, dir *core.Directory, draft model.Draft, format encoding.Format) error {
	c, err := dir.Create(ctx, draft)
	if err != nil {
		return validationFailure(err)
	}

	if format != encoding.FormatTable {
		return renderClient(w, *c, format)
	}

	_, _ = fmt.Fprintf(w, "Client %q added with ID %d.\n", c.Name, c.ID)

	if c.IsLocal() {
		_, _ = fmt.Fprintln(w, "Note: the collection did not persist this client.")
	}

	return nil
}

// validationFailure lists each field message of a validation error. Other
// errors are returned unchanged.
func validationFailure(err error) error {
	fields, ok := core.AsValidationError(err)
	if !ok {
		return err
	}

	var b strings.Builder

	b.WriteString("invalid client:")

	for _, f := range fields.Fields() {
		fmt.Fprintf(&b, "\n  %s: %s", f, fields[f])
	}

	return fmt.Errorf("%s", b.String())
}
