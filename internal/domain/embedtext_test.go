package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleCandidateText_FieldOrderAndFlattening(t *testing.T) {
	candidate := CandidateProfile{
		FullName:         "Dana Rivers",
		Bio:              "Backend engineer",
		Skills:           []string{"Go", "SQL", "Redis"},
		YearsExperience:  intPtr(6),
		City:             "Austin",
		State:            "TX",
		Country:          "USA",
		PreferredJobType: JobTypeRemote,
		Education: []Education{
			{Degree: "BSc", Field: "Computer Science", Institution: "UT Austin"},
			{Degree: "MSc", Field: "Machine Learning", Institution: "Georgia Tech"},
		},
		Experience: []Experience{
			{Title: "Engineer", Company: "Initech", Duration: "3 years"},
		},
		Resumes: []ResumeRef{{ID: "r1", Text: "Shipped things."}},
	}

	text := AssembleCandidateText(candidate)

	want := strings.Join([]string{
		"Name: Dana Rivers",
		"Bio: Backend engineer",
		"Skills: Go, SQL, Redis",
		"Years of experience: 6",
		"Location: Austin, TX, USA",
		"Preferred job type: remote",
		"Education: BSc, Computer Science, UT Austin; MSc, Machine Learning, Georgia Tech",
		"Work history: Engineer, Initech, 3 years",
		"Resume: Shipped things.",
	}, "\n")

	assert.Equal(t, want, text)
}

func TestAssembleCandidateText_OmitsAbsentFields(t *testing.T) {
	candidate := CandidateProfile{
		FullName: "Dana Rivers",
		Skills:   []string{"Go"},
	}

	text := AssembleCandidateText(candidate)

	assert.Equal(t, "Name: Dana Rivers\nSkills: Go", text)
	assert.NotContains(t, text, "Bio")
	assert.NotContains(t, text, "Location")
	assert.NotContains(t, text, "Education")
}

func TestAssembleCandidateText_Deterministic(t *testing.T) {
	candidate := CandidateProfile{
		FullName:        "Dana Rivers",
		Bio:             "Backend engineer",
		Skills:          []string{"Go", "SQL"},
		YearsExperience: intPtr(6),
		City:            "Austin",
	}

	first := AssembleCandidateText(candidate)
	second := AssembleCandidateText(candidate)

	require.Equal(t, []byte(first), []byte(second))
}

func TestAssembleJobText(t *testing.T) {
	cases := []struct {
		name string
		job  JobPosting
		want string
	}{
		{
			name: "full_posting",
			job: JobPosting{
				Title:              "Platform Engineer",
				Description:        "Build the platform.",
				RequiredSkills:     []string{"Go", "Kubernetes"},
				JobType:            JobTypeHybrid,
				MinExperienceYears: intPtr(3),
				MaxExperienceYears: intPtr(7),
				EducationLevel:     "Bachelor",
				Location:           "Berlin, Germany",
				SalaryMin:          70000,
				SalaryMax:          95000,
				SalaryCurrency:     "EUR",
			},
			want: strings.Join([]string{
				"Title: Platform Engineer",
				"Description: Build the platform.",
				"Required skills: Go, Kubernetes",
				"Job type: hybrid",
				"Experience: 3-7 years",
				"Education level: Bachelor",
				"Location: Berlin, Germany",
				"Salary: 70000-95000 EUR",
			}, "\n"),
		},
		{
			name: "sparse_posting_omits_lines",
			job: JobPosting{
				Title:    "Intern",
				JobType:  JobTypeInternship,
				Location: "Remote",
			},
			want: "Title: Intern\nJob type: internship\nLocation: Remote",
		},
		{
			name: "open_ended_experience_range",
			job: JobPosting{
				Title:              "Senior Engineer",
				MinExperienceYears: intPtr(5),
			},
			want: "Title: Senior Engineer\nExperience: 5+ years",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AssembleJobText(tc.job))
		})
	}
}
