package utils

import (
	"strings"

	"devshelf/internal/models"
)

// SearchField selects which resource fields a search query runs against.
type SearchField int

const (
	FieldName SearchField = iota
	FieldDescription
	FieldKeywords
)

// ParseSearchFields maps the repeated "in" query values to search fields,
// dropping unknown selectors. With no usable selector the search runs
// against the name only.
func ParseSearchFields(values []string) []SearchField {
	var fields []SearchField
	seen := make(map[SearchField]bool)
	for _, v := range values {
		var f SearchField
		switch v {
		case "name":
			f = FieldName
		case "description":
			f = FieldDescription
		case "keywords":
			f = FieldKeywords
		default:
			continue
		}
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		fields = []SearchField{FieldName}
	}
	return fields
}

// SearchResources returns the resources whose selected fields contain the
// query, case-insensitively. Matches across several fields are the union,
// de-duplicated by construction since each resource is visited once. An
// empty query yields an empty result, not the full collection.
func SearchResources(query string, fields []SearchField, resources []models.Resource) []models.Resource {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []models.Resource
	for _, r := range resources {
		if matchesResource(query, fields, r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesResource(query string, fields []SearchField, r models.Resource) bool {
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.Contains(strings.ToLower(r.Name), query) {
				return true
			}
		case FieldDescription:
			if strings.Contains(strings.ToLower(r.Description), query) {
				return true
			}
		case FieldKeywords:
			for _, kw := range r.Keywords {
				if strings.Contains(strings.ToLower(kw.Name), query) {
					return true
				}
			}
		}
	}
	return false
}
