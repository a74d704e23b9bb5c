package forms

import "strings"

// ContactForm validates the public contact form.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Errors  Errors
}

// Validate populates Errors and reports whether the submission is clean.
// It never fails out-of-band: bad input only ever produces field messages.
func (f *ContactForm) Validate() bool {
	f.Errors = Errors{}

	if isBlank(f.Name) {
		f.Errors.Add("name", "This field is required.")
	} else if len(f.Name) > 200 {
		f.Errors.Add("name", "Ensure this value has at most 200 characters.")
	}

	if isBlank(f.Email) {
		f.Errors.Add("email", "This field is required.")
	} else if !ValidEmail(strings.TrimSpace(f.Email)) {
		f.Errors.Add("email", "Enter a valid email address.")
	}

	if isBlank(f.Message) {
		f.Errors.Add("message", "This field is required.")
	}

	return len(f.Errors) == 0
}
