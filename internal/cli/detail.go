package cli

import (
	"fmt"
	"strings"

	"github.com/inovacc/clientdir/internal/model"
)

// detailView renders the read-only detail modal for c. Fields the record
// does not carry are left out.
func detailView(c model.Client) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Details for "+c.Name) + "\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}

		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-13s", label+":")), value)
	}

	field("Name", c.Name)
	field("Username", c.Handle())
	field("Email", c.Email)
	field("Phone", c.Phone)

	if url := c.WebsiteURL(); url != "" {
		field("Website", linkStyle.Render(url))
	}

	field("Company", c.Company.Name)
	field("Catch phrase", c.Company.CatchPhrase)
	field("Address", c.Address.String())

	if c.IsLocal() {
		b.WriteString("\n" + subtleStyle.Render("Created in this session; not stored remotely.") + "\n")
	}

	b.WriteString("\n" + subtleStyle.Render("e: edit • d: delete • esc: close"))

	return modalStyle.Render(b.String())
}
