package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
)

// nameWidth caps the NAME column of the client table.
const nameWidth = 30

// renderClients writes clients in the requested format.
func renderClients(w io.Writer, clients []model.Client, format encoding.Format) error {
	if clients == nil {
		clients = []model.Client{}
	}

	if format != encoding.FormatTable {
		return encoding.Write(w, format, clients)
	}

	if len(clients) == 0 {
		printEmptyResult(w, "")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "ID\tNAME\tUSERNAME\tEMAIL\tPHONE\tCOMPANY")
	_, _ = fmt.Fprintln(tw, "--\t----\t--------\t-----\t-----\t-------")

	for _, c := range clients {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			truncateString(c.Name, nameWidth),
			c.Handle(),
			c.Email,
			c.ShortPhone(),
			c.Company.Name,
		)
	}

	return tw.Flush()
}

// detailOrder is the row order of the client info box.
var detailOrder = []string{"ID", "Name", "Username", "Email", "Phone", "Website", "Company", "Catch phrase", "Address"}

// renderClient writes a single client in the requested format.
func renderClient(w io.Writer, c model.Client, format encoding.Format) error {
	if format != encoding.FormatTable {
		return encoding.Write(w, format, c)
	}

	items := map[string]string{
		"ID":           strconv.Itoa(c.ID),
		"Name":         c.Name,
		"Username":     c.Handle(),
		"Email":        c.Email,
		"Phone":        c.Phone,
		"Website":      c.WebsiteURL(),
		"Company":      c.Company.Name,
		"Catch phrase": c.Company.CatchPhrase,
		"Address":      c.Address.String(),
	}

	printInfoBox(w, "Details for "+c.Name, items, detailOrder)

	return nil
}
