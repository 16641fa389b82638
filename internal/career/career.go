// Package career defines the recommendation and profile types shown by the
// wizard, the mock recommendation source, and parsing of analysis responses.
package career

import (
	"context"
	"strings"
)

// Profession is a single career recommendation.
type Profession struct {
	// Name is the profession's display name (e.g. "Software Developer").
	Name string `json:"name" yaml:"name"`

	// RequiredSkills lists the skills needed, in display order.
	RequiredSkills []string `json:"requiredSkills" yaml:"requiredSkills"`

	// CareerPath lists the stages from entry level upwards.
	CareerPath []string `json:"careerPath" yaml:"careerPath"`

	// SalaryRange is a free-form salary description.
	SalaryRange string `json:"salaryRange" yaml:"salaryRange"`

	// MarketStats describes demand and outlook.
	MarketStats string `json:"marketStats" yaml:"marketStats"`

	// SuccessStory is optional.
	SuccessStory string `json:"successStory,omitempty" yaml:"successStory,omitempty"`
}

// Recommendations is the envelope an analysis returns.
type Recommendations struct {
	Professions []Profession `json:"professions" yaml:"professions"`
}

// Profile is the user input collected in the first two wizard steps.
type Profile struct {
	Goals         string
	Interests     string
	CurrentSkills string
}

// Normalize returns a copy with surrounding whitespace trimmed from every field.
func (p Profile) Normalize() Profile {
	return Profile{
		Goals:         strings.TrimSpace(p.Goals),
		Interests:     strings.TrimSpace(p.Interests),
		CurrentSkills: strings.TrimSpace(p.CurrentSkills),
	}
}

// MissingField returns the label of the first empty field among the given
// step's fields, or "" if all are filled. Step 1 holds goals and interests,
// step 2 holds current skills.
func (p Profile) MissingField(step int) string {
	p = p.Normalize()
	switch step {
	case 1:
		if p.Goals == "" {
			return "goals"
		}
		if p.Interests == "" {
			return "interests"
		}
	case 2:
		if p.CurrentSkills == "" {
			return "current skills"
		}
	}
	return ""
}

// Source produces recommendations for a profile.
type Source interface {
	Recommend(ctx context.Context, p Profile) ([]Profession, error)
}

// MockRecommendations returns the fixed recommendation set the simulated
// analysis produces. Each call returns a fresh slice.
func MockRecommendations() []Profession {
	return []Profession{
		{
			Name:           "Software Developer",
			RequiredSkills: []string{"JavaScript", "Python", "Problem Solving"},
			CareerPath:     []string{"Junior Developer", "Senior Developer", "Tech Lead"},
			SalaryRange:    "$60,000 - $150,000",
			MarketStats:    "High demand, growing industry",
		},
	}
}

// MockSource always returns MockRecommendations. It ignores the profile.
type MockSource struct{}

// Recommend satisfies Source.
func (MockSource) Recommend(ctx context.Context, _ Profile) ([]Profession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return MockRecommendations(), nil
}
