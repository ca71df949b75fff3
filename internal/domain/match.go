package domain

import (
	"math"
	"strings"
)

// Factor weights for the explainable match score. They only act as relative
// weights: the final score is normalized over the factors that were actually
// computable for a given pair.
const (
	WeightSkills     = 0.4
	WeightExperience = 0.3
	WeightLocation   = 0.15
	WeightJobType    = 0.15
)

// MatchFactor is one component of an explainable match score. It is produced
// by the scorer and consumed immediately, never persisted.
type MatchFactor struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// CosineSimilarity returns the cosine similarity of a and b in [0, 1].
//
// Nil vectors, mismatched lengths, and zero magnitudes all return 0:
// an absent embedding means "no information", not an error.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// OverallMatch computes the weighted multi-factor match score between a
// candidate and a job, rounded to the nearest integer in [0, 100].
//
// Only factors whose inputs are present on both sides participate; the result
// is normalized over the included weights. Returns nil when no factor is
// computable, which callers must keep distinct from a real zero score.
func OverallMatch(c CandidateProfile, j JobPosting) *int {
	factors := MatchFactors(c, j)
	if len(factors) == 0 {
		return nil
	}

	var weightedSum, totalWeight float64
	for _, f := range factors {
		weightedSum += f.Score * f.Weight
		totalWeight += f.Weight
	}
	if totalWeight == 0 {
		return nil
	}

	score := int(math.Round(weightedSum / totalWeight))
	return &score
}

// MatchFactors returns the per-factor breakdown behind OverallMatch, for
// explanation surfaces. Factors whose inputs are missing on either side are
// omitted entirely rather than scored 0.
func MatchFactors(c CandidateProfile, j JobPosting) []MatchFactor {
	var factors []MatchFactor

	if j.RequiredSkills != nil {
		factors = append(factors, MatchFactor{
			Name:   "skills",
			Score:  skillsScore(c.Skills, j.RequiredSkills),
			Weight: WeightSkills,
		})
	}

	if c.YearsExperience != nil && (j.MinExperienceYears != nil || j.MaxExperienceYears != nil) {
		factors = append(factors, MatchFactor{
			Name:   "experience",
			Score:  experienceScore(*c.YearsExperience, j.MinExperienceYears, j.MaxExperienceYears),
			Weight: WeightExperience,
		})
	}

	if j.Location != "" && c.Location() != "" {
		factors = append(factors, MatchFactor{
			Name:   "location",
			Score:  locationScore(c.Location(), j.Location),
			Weight: WeightLocation,
		})
	}

	if j.JobType != "" && c.PreferredJobType != "" {
		factors = append(factors, MatchFactor{
			Name:   "job_type",
			Score:  jobTypeScore(c.PreferredJobType, j.JobType),
			Weight: WeightJobType,
		})
	}

	return factors
}

// skillsScore is the percentage of required skills found in the candidate's
// skill set. Matching is case-insensitive substring containment in either
// direction, so "React" matches "React.js". An empty requirement list is not
// a penalty and scores 100.
func skillsScore(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 100
	}
	if len(candidateSkills) == 0 {
		return 0
	}

	matched := 0
	for _, required := range requiredSkills {
		if skillMatches(candidateSkills, required) {
			matched++
		}
	}

	return float64(matched) / float64(len(requiredSkills)) * 100
}

func skillMatches(candidateSkills []string, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	if req == "" {
		return false
	}
	for _, skill := range candidateSkills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if strings.Contains(s, req) || strings.Contains(req, s) {
			return true
		}
	}
	return false
}

// experienceScore is 100 inside [min, max], penalized 20 points per year
// under the minimum (floored at 0) and 5 points per year over the maximum
// (floored at 70). Over-qualification is deliberately penalized more gently
// than under-qualification.
func experienceScore(years int, minYears, maxYears *int) float64 {
	if minYears != nil && years < *minYears {
		score := 100 - float64(*minYears-years)*20
		return math.Max(0, score)
	}
	if maxYears != nil && years > *maxYears {
		score := 100 - float64(years-*maxYears)*5
		return math.Max(70, score)
	}
	return 100
}

// locationScore is 100 when either location string contains the other,
// case-insensitively, else 0.
func locationScore(candidateLocation, jobLocation string) float64 {
	cl := strings.ToLower(candidateLocation)
	jl := strings.ToLower(jobLocation)
	if strings.Contains(cl, jl) || strings.Contains(jl, cl) {
		return 100
	}
	return 0
}

// jobTypeScore is 100 on an exact case-insensitive match, and 50 otherwise:
// job type is a soft preference, so a mismatch is partial credit rather than
// zero compatibility.
func jobTypeScore(preferred, jobType JobType) float64 {
	if strings.EqualFold(string(preferred), string(jobType)) {
		return 100
	}
	return 50
}
