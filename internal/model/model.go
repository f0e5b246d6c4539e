package model

import (
	"fmt"
	"strings"
)

// Origin records where a client record came from. It is set once, when the
// record enters the local store, and never travels on the wire.
type Origin int

const (
	// OriginRemote marks records the remote collection knows about.
	OriginRemote Origin = iota
	// OriginLocal marks records created in this session that the remote
	// collection never persisted.
	OriginLocal
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Company is the organisation a client belongs to.
type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase,omitempty" yaml:"catch_phrase,omitempty"`
	BS          string `json:"bs,omitempty" yaml:"bs,omitempty"`
}

// Address is the postal address returned by the remote collection. It is only
// shown in the detail view.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
}

// String joins the non-empty address parts with ", ".
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	parts := make([]string, 0, 4)

	for _, p := range []string{a.Street, a.Suite, a.City, a.Zipcode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// Client is a single record of the client directory.
type Client struct {
	// ID is unique within the local store
	ID int `json:"id" yaml:"id"`

	// Name is the display name of the client
	Name string `json:"name" yaml:"name"`

	// Username is derived from the email's local part when written by us
	Username string `json:"username,omitempty" yaml:"username,omitempty"`

	// Email is the contact address
	Email string `json:"email" yaml:"email"`

	// Phone may carry an extension after a space, e.g. "1-770-736-8031 x56442"
	Phone string `json:"phone" yaml:"phone"`

	// Website is the bare host name, without scheme
	Website string `json:"website,omitempty" yaml:"website,omitempty"`

	// Address is nil for records we created ourselves
	Address *Address `json:"address,omitempty" yaml:"address,omitempty"`

	// Company holds at least the company name
	Company Company `json:"company" yaml:"company"`

	// Origin is the provenance of the record
	Origin Origin `json:"-" yaml:"-"`
}

// ShortPhone returns the phone number up to the first space, dropping any
// extension.
func (c Client) ShortPhone() string {
	phone, _, _ := strings.Cut(strings.TrimSpace(c.Phone), " ")
	return phone
}

// WebsiteURL returns the website as an http link, or "" when unset.
func (c Client) WebsiteURL() string {
	if c.Website == "" {
		return ""
	}

	if strings.HasPrefix(c.Website, "http://") || strings.HasPrefix(c.Website, "https://") {
		return c.Website
	}

	return "http://" + c.Website
}

// Handle returns "@username", or "" when the record has no username.
func (c Client) Handle() string {
	if c.Username == "" {
		return ""
	}

	return fmt.Sprintf("@%s", c.Username)
}

// IsLocal reports whether the record was never persisted remotely.
func (c Client) IsLocal() bool {
	return c.Origin == OriginLocal
}
