package core

import (
	"strings"

	"github.com/inovacc/clientdir/internal/model"
	"golang.org/x/text/cases"
)

// Filter returns the clients whose name, email or company name contains
// query, ignoring case. An empty query returns clients unchanged. Order is
// preserved.
func Filter(clients []model.Client, query string) []model.Client {
	if query == "" {
		return clients
	}

	// A Caser keeps state, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]model.Client, 0, len(clients))

	for _, c := range clients {
		if matches(fold, c, needle) {
			out = append(out, c)
		}
	}

	return out
}

func matches(fold cases.Caser, c model.Client, needle string) bool {
	for _, field := range []string{c.Name, c.Email, c.Company.Name} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}

	return false
}
