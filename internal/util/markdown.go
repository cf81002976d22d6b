package util

import (
	"fmt"
	"strings"
)

// ContactInfo is the resume header block.
type ContactInfo struct {
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// ResumeEntry is a single dated item in an experience, education or
// project section.
type ResumeEntry struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// DateRange renders "Jan 2024 - Present" style ranges. Entries marked
// current ignore EndDate.
func (e ResumeEntry) DateRange() string {
	if e.Current || e.EndDate == "" {
		return fmt.Sprintf("%s - Present", e.StartDate)
	}
	return fmt.Sprintf("%s - %s", e.StartDate, e.EndDate)
}

// ContactMarkdown renders the centered resume header.
func ContactMarkdown(name string, c ContactInfo) string {
	var parts []string
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Mobile != "" {
		parts = append(parts, c.Mobile)
	}
	if c.LinkedIn != "" {
		parts = append(parts, fmt.Sprintf("[LinkedIn](%s)", c.LinkedIn))
	}
	if c.Twitter != "" {
		parts = append(parts, fmt.Sprintf("[Twitter](%s)", c.Twitter))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## <div align=\"center\">%s</div>", name)
	if len(parts) > 0 {
		b.WriteString("\n\n<div align=\"center\">\n\n")
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n\n</div>")
	}
	return b.String()
}

// EntriesToMarkdown renders one dated section. Empty sections render to
// an empty string so callers can join sections unconditionally.
func EntriesToMarkdown(heading string, entries []ResumeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(entries)+1)
	blocks = append(blocks, fmt.Sprintf("## %s", heading))
	for _, e := range entries {
		blocks = append(blocks, fmt.Sprintf("### %s @ %s\n%s\n\n%s",
			e.Title, e.Organization, e.DateRange(), e.Description))
	}
	return strings.Join(blocks, "\n\n")
}

// BuildResumeMarkdown assembles the full resume document from its
// structured parts, skipping empty sections.
func BuildResumeMarkdown(name string, contact ContactInfo, summary, skills string, experience, education, projects []ResumeEntry) string {
	sections := []string{
		ContactMarkdown(name, contact),
	}
	if summary != "" {
		sections = append(sections, fmt.Sprintf("## Professional Summary\n\n%s", summary))
	}
	if skills != "" {
		sections = append(sections, fmt.Sprintf("## Skills\n\n%s", skills))
	}
	if s := EntriesToMarkdown("Work Experience", experience); s != "" {
		sections = append(sections, s)
	}
	if s := EntriesToMarkdown("Education", education); s != "" {
		sections = append(sections, s)
	}
	if s := EntriesToMarkdown("Projects", projects); s != "" {
		sections = append(sections, s)
	}
	return strings.Join(sections, "\n\n")
}
