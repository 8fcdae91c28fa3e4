// Package types provides type definitions for structured data used throughout the proofmap system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Proficiency tiers, ordered weakest to strongest.
const (
	TierNone         = "None"
	TierBeginner     = "Beginner"
	TierIntermediate = "Intermediate"
	TierExpert       = "Expert"
)

// Status labels and their display colors. A skill is "proven" once its
// score clears the Needs-attention band, so the 25 threshold is shared
// with the aggregator.
const (
	StatusNeedsAttention = "Needs attention"
	StatusMedium         = "Medium"
	StatusGood           = "Good"

	ColorNeedsAttention = "#ef4444"
	ColorMedium         = "#f59e0b"
	ColorGood           = "#22c55e"
)

// ScanRequest represents a proof-of-skills scan request.
//
// ResumeText is a pointer so a missing field can be told apart from an
// empty resume: absent fails validation, while an empty string is a valid
// scan that claims no skills.
type ScanRequest struct {
	GithubUsername string   `json:"githubUsername" validate:"required,min=1"`
	ResumeText     *string  `json:"resumeText" validate:"required"`
	SelectedSkills []string `json:"selectedSkills,omitempty" validate:"omitempty,dive,required"`
}

// Validate validates the ScanRequest using the validator.
func (r *ScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SkillResult is the per-skill outcome of a scan.
type SkillResult struct {
	Skill           string   `json:"skill"`
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	Color           string   `json:"color"`
	Proficiency     string   `json:"proficiency,omitempty"`
	SupportingRepos []string `json:"supportingRepos,omitempty"`
}

// ScanResult is the aggregate response for one scan.
type ScanResult struct {
	GithubUsername string                     `json:"githubUsername"`
	ReposAnalyzed  int                        `json:"reposAnalyzed"`
	OverallScore   int                        `json:"overallScore"`
	ClaimedSkills  []string                   `json:"claimedSkills"`
	ProvenSkills   []string                   `json:"provenSkills"`
	MissingProof   []string                   `json:"missingProof"`
	Breakdown      []SkillResult              `json:"breakdown"`
	Remediation    map[string]RemediationPlan `json:"remediation,omitempty"`
}
