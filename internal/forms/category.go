package forms

// CategoryForm validates category suggestions.
type CategoryForm struct {
	Name   string
	Errors Errors
}

func (f *CategoryForm) Validate() bool {
	f.Errors = Errors{}

	if isBlank(f.Name) {
		f.Errors.Add("name", "This field is required.")
	} else if len(f.Name) > 100 {
		f.Errors.Add("name", "Ensure this value has at most 100 characters.")
	}

	return len(f.Errors) == 0
}
