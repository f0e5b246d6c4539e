package model

import "strings"

// Draft is the in-progress content of the add/edit form. It lives only as long
// as the form that owns it.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// DraftFromClient pre-populates a draft for editing an existing record.
func DraftFromClient(c Client) Draft {
	return Draft{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Company: c.Company.Name,
	}
}

// Payload is the record shape sent on create and update requests.
type Payload struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Company  Company `json:"company"`
	Username string  `json:"username"`
}

// Payload converts the draft into its wire shape. The username is the local
// part of the email address.
func (d Draft) Payload() Payload {
	return Payload{
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Company:  Company{Name: d.Company},
		Username: UsernameFromEmail(d.Email),
	}
}

// UsernameFromEmail returns the text before the first "@". An email without
// "@" is returned unchanged.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Apply copies the payload's writable fields onto c, leaving the id, origin
// and detail-only fields untouched. The username follows the payload, so an
// edit re-derives it from the email.
func (p Payload) Apply(c Client) Client {
	c.Name = p.Name
	c.Email = p.Email
	c.Phone = p.Phone
	c.Company.Name = p.Company.Name
	c.Username = p.Username

	return c
}

// Client builds a record from the payload with the given id.
func (p Payload) Client(id int) Client {
	return p.Apply(Client{ID: id})
}
