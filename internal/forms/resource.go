package forms

import "strings"

// ResourceForm validates resource submissions and edits. The category
// reference is only checked for presence here; whether it exists and is
// published is the handler's call against the store.
type ResourceForm struct {
	Name        string
	Description string
	URL         string
	CategoryID  uint
	Keywords    []string
	Errors      Errors
}

func (f *ResourceForm) Validate() bool {
	f.Errors = Errors{}

	if isBlank(f.Name) {
		f.Errors.Add("name", "This field is required.")
	} else if len(f.Name) > 200 {
		f.Errors.Add("name", "Ensure this value has at most 200 characters.")
	}

	if isBlank(f.Description) {
		f.Errors.Add("description", "This field is required.")
	}

	if isBlank(f.URL) {
		f.Errors.Add("url", "This field is required.")
	} else if !ValidURL(strings.TrimSpace(f.URL)) {
		f.Errors.Add("url", "Enter a valid URL.")
	}

	if f.CategoryID == 0 {
		f.Errors.Add("category", "This field is required.")
	}

	if len(f.Keywords) == 0 {
		f.Errors.Add("keywords", "Enter at least one keyword.")
	}

	return len(f.Errors) == 0
}

// ParseKeywords splits a comma-separated tag list, trims whitespace and
// drops blanks and case-insensitive duplicates. Order of first appearance
// is kept, though nothing downstream depends on it.
func ParseKeywords(raw string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, name)
	}
	return keywords
}
