package core

import (
	"regexp"
	"slices"
	"strings"

	"github.com/inovacc/clientdir/internal/model"
)

// Field names used as FieldErrors keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"

	// FieldForm carries form-level failures such as a rejected save. Validate
	// never sets it.
	FieldForm = "form"
)

// Validation messages shown next to the offending field.
const (
	MsgNameRequired    = "Name is required."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgPhoneRequired   = "Phone number is required."
	MsgCompanyRequired = "Company name is required."
)

// emailPattern is a minimal syntactic check, not RFC validation.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps a field name to a human-readable message. An empty set
// means the draft is valid.
type FieldErrors map[string]string

// Empty reports whether there are no errors.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Fields returns the field names with errors, sorted.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}

	slices.Sort(fields)

	return fields
}

// Validate checks a draft and returns one message per invalid field. It has
// no side effects.
func Validate(d model.Draft) FieldErrors {
	errs := make(FieldErrors)

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if !ValidEmail(d.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs[FieldPhone] = MsgPhoneRequired
	}

	if strings.TrimSpace(d.Company) == "" {
		errs[FieldCompany] = MsgCompanyRequired
	}

	return errs
}

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
