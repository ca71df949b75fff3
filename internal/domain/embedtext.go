package domain

import (
	"fmt"
	"strings"
)

// AssembleCandidateText builds the canonical newline-delimited text blob for
// embedding a candidate profile.
//
// Field order is fixed because embedding similarity is sensitive to token
// order; absent fields emit no line at all, keeping signal density high.
// List-valued fields are flattened to one joined line per category to bound
// blob size. No case or punctuation normalization is applied.
func AssembleCandidateText(c CandidateProfile) string {
	var b textBuilder

	b.line("Name", c.FullName)
	b.line("Bio", c.Bio)
	b.line("Skills", strings.Join(c.Skills, ", "))
	if c.YearsExperience != nil {
		b.line("Years of experience", fmt.Sprintf("%d", *c.YearsExperience))
	}
	b.line("Location", c.Location())
	b.line("Preferred job type", string(c.PreferredJobType))

	eduParts := make([]string, 0, len(c.Education))
	for _, e := range c.Education {
		eduParts = append(eduParts, joinNonEmpty(", ", e.Degree, e.Field, e.Institution))
	}
	b.line("Education", joinNonEmpty("; ", eduParts...))

	expParts := make([]string, 0, len(c.Experience))
	for _, e := range c.Experience {
		expParts = append(expParts, joinNonEmpty(", ", e.Title, e.Company, e.Duration))
	}
	b.line("Work history", joinNonEmpty("; ", expParts...))

	for _, r := range c.Resumes {
		b.line("Resume", r.Text)
	}

	return b.String()
}

// AssembleJobText builds the canonical newline-delimited text blob for
// embedding a job posting. Same rules as AssembleCandidateText.
func AssembleJobText(j JobPosting) string {
	var b textBuilder

	b.line("Title", j.Title)
	b.line("Description", j.Description)
	b.line("Required skills", strings.Join(j.RequiredSkills, ", "))
	b.line("Job type", string(j.JobType))

	if j.MinExperienceYears != nil || j.MaxExperienceYears != nil {
		b.line("Experience", experienceRange(j.MinExperienceYears, j.MaxExperienceYears))
	}

	b.line("Education level", j.EducationLevel)
	b.line("Location", j.Location)

	if j.SalaryMin > 0 || j.SalaryMax > 0 {
		b.line("Salary", salaryRange(j.SalaryMin, j.SalaryMax, j.SalaryCurrency))
	}

	return b.String()
}

func experienceRange(minYears, maxYears *int) string {
	switch {
	case minYears != nil && maxYears != nil:
		return fmt.Sprintf("%d-%d years", *minYears, *maxYears)
	case minYears != nil:
		return fmt.Sprintf("%d+ years", *minYears)
	default:
		return fmt.Sprintf("up to %d years", *maxYears)
	}
}

func salaryRange(minSalary, maxSalary int, currency string) string {
	s := fmt.Sprintf("%d-%d", minSalary, maxSalary)
	if currency != "" {
		s += " " + currency
	}
	return s
}

// textBuilder accumulates "Label: value" lines, skipping empty values.
type textBuilder struct {
	lines []string
}

func (b *textBuilder) line(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.lines = append(b.lines, label+": "+value)
}

func (b *textBuilder) String() string {
	return strings.TrimSpace(strings.Join(b.lines, "\n"))
}
