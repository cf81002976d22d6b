package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		entry ResumeEntry
		want  string
	}{
		{"closed range", ResumeEntry{StartDate: "Jan 2020", EndDate: "Mar 2022"}, "Jan 2020 - Mar 2022"},
		{"current ignores end date", ResumeEntry{StartDate: "Jan 2020", EndDate: "Mar 2022", Current: true}, "Jan 2020 - Present"},
		{"missing end date", ResumeEntry{StartDate: "Jan 2020"}, "Jan 2020 - Present"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry.DateRange())
		})
	}
}

func TestContactMarkdown(t *testing.T) {
	got := ContactMarkdown("Ada Lovelace", ContactInfo{
		Email:    "ada@example.com",
		LinkedIn: "https://linkedin.com/in/ada",
	})

	assert.Contains(t, got, `<div align="center">Ada Lovelace</div>`)
	assert.Contains(t, got, "ada@example.com | [LinkedIn](https://linkedin.com/in/ada)")
	assert.NotContains(t, got, "Twitter")
}

func TestContactMarkdownNoDetails(t *testing.T) {
	got := ContactMarkdown("Ada Lovelace", ContactInfo{})
	assert.Equal(t, `## <div align="center">Ada Lovelace</div>`, got)
}

func TestEntriesToMarkdown(t *testing.T) {
	entries := []ResumeEntry{
		{Title: "Engineer", Organization: "Acme", StartDate: "Jan 2020", EndDate: "Dec 2021", Description: "Built things."},
		{Title: "Senior Engineer", Organization: "Globex", StartDate: "Jan 2022", Current: true, Description: "Built bigger things."},
	}

	got := EntriesToMarkdown("Work Experience", entries)

	assert.True(t, strings.HasPrefix(got, "## Work Experience"))
	assert.Contains(t, got, "### Engineer @ Acme\nJan 2020 - Dec 2021")
	assert.Contains(t, got, "### Senior Engineer @ Globex\nJan 2022 - Present")
	assert.Contains(t, got, "Built bigger things.")
}

func TestEntriesToMarkdownEmpty(t *testing.T) {
	assert.Empty(t, EntriesToMarkdown("Education", nil))
}

func TestBuildResumeMarkdownSkipsEmptySections(t *testing.T) {
	got := BuildResumeMarkdown("Ada Lovelace", ContactInfo{Email: "ada@example.com"},
		"Engineer with a decade of experience.", "", nil,
		[]ResumeEntry{{Title: "BSc", Organization: "University", StartDate: "2010", EndDate: "2014", Description: "Mathematics."}},
		nil)

	assert.Contains(t, got, "## Professional Summary")
	assert.Contains(t, got, "## Education")
	assert.NotContains(t, got, "## Skills")
	assert.NotContains(t, got, "## Work Experience")
	assert.NotContains(t, got, "## Projects")

	// Section order is fixed: header, summary, then dated sections.
	assert.Less(t, strings.Index(got, "Ada Lovelace"), strings.Index(got, "## Professional Summary"))
	assert.Less(t, strings.Index(got, "## Professional Summary"), strings.Index(got, "## Education"))
}
