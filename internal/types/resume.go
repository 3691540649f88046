// Package types provides type definitions for structured data used throughout the resume-studio system.
package types

// Profile represents the identity header of a resume.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Socials  string `json:"socials"` // comma-joined contact tokens that are neither location nor email
}

// ExperienceItem represents a single experience entry.
// Description holds one bullet per line.
type ExperienceItem struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	From        string `json:"from"`
	To          string `json:"to"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}

// EducationItem represents a single education entry.
type EducationItem struct {
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"field_of_study"`
	From         string `json:"from"`
	To           string `json:"to"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description"`
}

// ResumeDocument is the structured model that editing operates on.
// The zero value is a valid (empty) document: parsing never fails, it
// only produces a sparser document.
type ResumeDocument struct {
	Profile        Profile          `json:"profile"`
	Summary        string           `json:"summary,omitempty"`
	Experience     []ExperienceItem `json:"experience,omitempty"`
	Education      []EducationItem  `json:"education,omitempty"`
	Skills         string           `json:"skills,omitempty"`
	Certifications string           `json:"certifications,omitempty"`
	Projects       string           `json:"projects,omitempty"`
	Languages      string           `json:"languages,omitempty"`
}

// HasContent reports whether parsing recognized anything at all.
// Callers use this to decide between the structured editor and a
// read-only raw view.
func (d *ResumeDocument) HasContent() bool {
	if d.Profile.Name != "" || d.Profile.Title != "" || d.Profile.Location != "" ||
		d.Profile.Email != "" || d.Profile.Socials != "" {
		return true
	}
	if d.Summary != "" || d.Skills != "" || d.Certifications != "" ||
		d.Projects != "" || d.Languages != "" {
		return true
	}
	return len(d.Experience) > 0 || len(d.Education) > 0
}
