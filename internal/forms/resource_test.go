package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validResourceForm() *ResourceForm {
	return &ResourceForm{
		Name:        "Go Tutorial",
		Description: "A comprehensive guide to Go.",
		URL:         "https://go.dev/tour/",
		CategoryID:  1,
		Keywords:    []string{"go", "tutorial"},
	}
}

func TestResourceFormValidData(t *testing.T) {
	form := validResourceForm()
	assert.True(t, form.Validate())
	assert.Empty(t, form.Errors)
}

func TestResourceFormMissingData(t *testing.T) {
	form := &ResourceForm{}
	assert.False(t, form.Validate())
	for _, field := range []string{"name", "description", "url", "category", "keywords"} {
		assert.True(t, form.Errors.Has(field), "expected error on %s", field)
	}
}

func TestResourceFormWhitespaceOnly(t *testing.T) {
	form := &ResourceForm{Name: "   ", Description: "   ", URL: "   "}
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("name"))
	assert.True(t, form.Errors.Has("description"))
	assert.True(t, form.Errors.Has("url"))
}

func TestResourceFormInvalidURL(t *testing.T) {
	form := validResourceForm()
	form.URL = "not-a-valid-url"
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("url"))
}

func TestResourceFormURLLabelLength(t *testing.T) {
	// A single host label over 63 characters is invalid even inside an
	// otherwise well-formed URL.
	form := validResourceForm()
	form.URL = "https://" + strings.Repeat("a", 64) + ".example.com/path"
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("url"))

	// Labels of exactly 63 are fine regardless of total URL length.
	label := strings.Repeat("a", 63)
	form.URL = "https://" + label + "." + label + "." + label + ".com/" + strings.Repeat("x", 500)
	assert.True(t, form.Validate())
}

func TestResourceFormLongName(t *testing.T) {
	form := validResourceForm()
	form.Name = strings.Repeat("T", 200)
	assert.True(t, form.Validate())

	form.Name = strings.Repeat("T", 201)
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("name"))
}

func TestResourceFormNoKeywords(t *testing.T) {
	form := validResourceForm()
	form.Keywords = nil
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("keywords"))
}

func TestResourceFormManyKeywords(t *testing.T) {
	form := validResourceForm()
	form.Keywords = strings.Split(strings.Repeat("k,", 50), ",")[:50]
	assert.True(t, form.Validate())
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"go", "web", "framework"}, ParseKeywords("go, web ,framework"))
	assert.Equal(t, []string{"go"}, ParseKeywords("go,GO, go "))
	assert.Nil(t, ParseKeywords("  , ,,"))
	assert.Nil(t, ParseKeywords(""))
}

func TestCategoryFormValidation(t *testing.T) {
	form := &CategoryForm{Name: "Web Development"}
	assert.True(t, form.Validate())

	form = &CategoryForm{Name: "   "}
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("name"))

	form = &CategoryForm{Name: strings.Repeat("C", 101)}
	assert.False(t, form.Validate())
	assert.True(t, form.Errors.Has("name"))
}

func TestValidURLSchemes(t *testing.T) {
	assert.True(t, ValidURL("http://example.com"))
	assert.True(t, ValidURL("ftp://files.example.com/pub"))
	assert.False(t, ValidURL("javascript:alert(1)"))
	assert.False(t, ValidURL("example.com"))
	assert.False(t, ValidURL("https://"))
}
