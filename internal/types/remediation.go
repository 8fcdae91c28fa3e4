// Package types provides type definitions for structured data used throughout the proofmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RemediationPlan proposes how to build proof for one missing skill:
// either integrate the skill into an existing repository (CandidateExists)
// or start from one of the suggested project ideas.
type RemediationPlan struct {
	Skill           string        `json:"skill"`
	CandidateExists bool          `json:"candidateExists"`
	RepoName        string        `json:"repoName,omitempty"`
	UsageGuidance   []string      `json:"usageGuidance,omitempty"`
	ProjectIdeas    []ProjectIdea `json:"projectIdeas,omitempty"`
}

// ProjectIdea is a suggested greenfield project with a three-step plan.
type ProjectIdea struct {
	Idea string   `json:"idea"`
	Plan []string `json:"plan"`
}
