package domain

import "time"

// CandidateProfile is a job seeker's profile as stored by the record store.
// Vector is derived from the profile text and regenerable; it is never
// authoritative state.
type CandidateProfile struct {
	ID               string       `json:"id"`
	FullName         string       `json:"full_name"`
	Bio              string       `json:"bio"`
	Skills           []string     `json:"skills"`
	YearsExperience  *int         `json:"years_experience,omitempty"`
	City             string       `json:"city"`
	State            string       `json:"state"`
	Country          string       `json:"country"`
	PreferredJobType JobType      `json:"preferred_job_type"`
	Education        []Education  `json:"education"`
	Experience       []Experience `json:"experience"`
	Resumes          []ResumeRef  `json:"resumes"`
	Vector           []float32    `json:"-"`
	VectorUpdatedAt  *time.Time   `json:"-"`
}

// Location joins the non-empty location parts into a single display string.
func (c CandidateProfile) Location() string {
	return joinNonEmpty(", ", c.City, c.State, c.Country)
}

// Education is a single education entry on a candidate profile.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        int    `json:"year,omitempty"`
}

// Experience is a single work history entry on a candidate profile.
type Experience struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Summary  string `json:"summary"`
}

// ResumeRef points at an uploaded resume; extraction happens upstream,
// only the extracted text participates in matching.
type ResumeRef struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	Text       string    `json:"-"`
	UploadedAt time.Time `json:"uploaded_at"`
}
