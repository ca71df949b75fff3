package domain

import (
	"strings"
	"time"
)

// JobPosting is a recruiter's job listing.
//
// RequiredSkills distinguishes nil (the posting has no skills requirement at
// all, the factor is not comparable) from an empty non-nil slice (a skills
// requirement was listed with no specific skills, which is not a penalty).
type JobPosting struct {
	ID                 string     `json:"id"`
	RecruiterID        string     `json:"recruiter_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	RequiredSkills     []string   `json:"required_skills"`
	JobType            JobType    `json:"job_type"`
	SalaryMin          int        `json:"salary_min,omitempty"`
	SalaryMax          int        `json:"salary_max,omitempty"`
	SalaryCurrency     string     `json:"salary_currency,omitempty"`
	MinExperienceYears *int       `json:"min_experience_years,omitempty"`
	MaxExperienceYears *int       `json:"max_experience_years,omitempty"`
	EducationLevel     string     `json:"education_level,omitempty"`
	Location           string     `json:"location"`
	Status             JobStatus  `json:"status"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	PostedAt           time.Time  `json:"posted_at"`
	Vector             []float32  `json:"-"`
	VectorUpdatedAt    *time.Time `json:"-"`
}

// JobType enumerates the work arrangement of a posting, and doubles as a
// candidate's preferred arrangement.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
	JobTypeHybrid     JobType = "hybrid"
)

// JobStatus is the lifecycle state of a posting. Transitions between states
// are unordered; only membership is validated.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
	JobStatusFilled JobStatus = "filled"
)

var ValidJobStatuses = []JobStatus{
	JobStatusActive,
	JobStatusPaused,
	JobStatusClosed,
	JobStatusFilled,
}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	for _, v := range ValidJobStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// JobFilters narrows job list queries.
type JobFilters struct {
	OnlyStatuses []JobStatus
	RecruiterID  string
}

// JobListOptions paginates and orders job list queries.
type JobListOptions struct {
	Page, PageSize int
	Ordering       []JobOrdering
}

type JobOrdering struct {
	Field JobOrderingField
	Desc  bool
}

type JobOrderingField string

const JobOrderingFieldPostedAt JobOrderingField = "posted_at"
const JobOrderingFieldTitle JobOrderingField = "title"
const JobOrderingFieldDeadline JobOrderingField = "deadline"

var ValidJobOrderingFields = []JobOrderingField{
	JobOrderingFieldPostedAt,
	JobOrderingFieldTitle,
	JobOrderingFieldDeadline,
}

// RankedJob is a job reference scored by the vector index. A missing score
// on the wire is treated as 0 rather than rejected.
type RankedJob struct {
	JobID      string  `json:"job_id"`
	Similarity float64 `json:"similarity"`
}

// RankedCandidate is a candidate reference scored by the vector index.
type RankedCandidate struct {
	CandidateID string  `json:"candidate_id"`
	Similarity  float64 `json:"similarity"`
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
