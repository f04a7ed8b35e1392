// Package types provides type definitions for structured data used throughout the profile-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// RawProfile represents a loosely-typed profile payload as returned by the
// extraction service. Any field may be missing or empty; the parsing package
// turns it into a Profile with defined optionality.
type RawProfile struct {
	Name        string `json:"name,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Location    string `json:"location,omitempty"`
	About       string `json:"about,omitempty"`
	Connections string `json:"connections,omitempty"` // free-form, e.g. "500+ connections"
	Followers   string `json:"followers,omitempty"`
	URL         string `json:"url,omitempty"`

	Experience     []RawExperience `json:"experience,omitempty"`
	Education      []RawEducation  `json:"education,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
	Languages      []string        `json:"languages,omitempty"`
	Volunteer      []string        `json:"volunteer,omitempty"`
	Honors         []string        `json:"honors,omitempty"`
}

// RawExperience is a single unparsed experience entry.
type RawExperience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"` // e.g. "Jan 2020 - Present"
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// RawEducation is a single unparsed education entry.
type RawEducation struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
	Years  string `json:"years,omitempty"` // e.g. "2017 - 2021"
	Grade  string `json:"grade,omitempty"`
}

// Profile is the normalized, read-only profile record consumed by the
// analysis engine. Absent text fields are empty strings; all present text is
// trimmed with collapsed whitespace.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	Location string `json:"location,omitempty"`
	About    string `json:"about,omitempty"`
	URL      string `json:"url,omitempty"`

	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	// Skills is deduplicated case-insensitively, first-seen casing preserved.
	Skills         []string `json:"skills,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Volunteer      []string `json:"volunteer,omitempty"`
	Honors         []string `json:"honors,omitempty"`

	// Connections and Followers are nil when the source did not report them.
	Connections *int `json:"connections,omitempty"`
	Followers   *int `json:"followers,omitempty"`
}

// Experience is a normalized experience entry.
type Experience struct {
	Title       string    `json:"title,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Dates       DateRange `json:"dates"`
}

// Education is a normalized education entry.
type Education struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
	Grade     string `json:"grade,omitempty"`
}

// DateRange is a best-effort parse of a heterogeneous date string.
// Zero year/month values mean "absent". When the source text could not be
// parsed at all, Raw preserves it verbatim and the other fields are zero.
type DateRange struct {
	StartYear  int    `json:"start_year,omitempty"`
	StartMonth int    `json:"start_month,omitempty"`
	EndYear    int    `json:"end_year,omitempty"`
	EndMonth   int    `json:"end_month,omitempty"`
	IsCurrent  bool   `json:"is_current,omitempty"`
	Raw        string `json:"raw,omitempty"`
}

// IsZero reports whether nothing was parsed and no raw text was preserved.
func (d DateRange) IsZero() bool {
	return d.StartYear == 0 && d.EndYear == 0 && !d.IsCurrent && d.Raw == ""
}

// AllText concatenates every free-text field of the profile for keyword
// scanning: headline, about, experience titles and descriptions, and skills.
func (p *Profile) AllText() string {
	parts := make([]string, 0, 4+2*len(p.Experience)+len(p.Skills))
	if p.Headline != "" {
		parts = append(parts, p.Headline)
	}
	if p.About != "" {
		parts = append(parts, p.About)
	}
	for _, exp := range p.Experience {
		if exp.Title != "" {
			parts = append(parts, exp.Title)
		}
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
	}
	parts = append(parts, p.Skills...)
	return strings.Join(parts, " ")
}

// IsEmpty reports whether the profile has no content in any section.
func (p *Profile) IsEmpty() bool {
	return p.Name == "" && p.Headline == "" && p.Location == "" && p.About == "" &&
		len(p.Experience) == 0 && len(p.Education) == 0 && len(p.Skills) == 0
}
