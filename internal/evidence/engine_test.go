package evidence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehagrian/proofmap/internal/types"
)

func TestDeriveScore(t *testing.T) {
	tests := []struct {
		name      string
		signals   int
		advanced  int
		codeFiles int
		wantScore int
		wantTier  string
	}{
		{"no signals", 0, 0, 100, 0, types.TierNone},
		{"single repo", 1, 0, 5, 50, types.TierBeginner},
		{"single repo large corpus stays beginner", 1, 0, 50, 50, types.TierBeginner},
		{"single repo with advanced usage", 1, 1, 5, 60, types.TierIntermediate},
		{"single repo never reaches expert", 1, 2, 5, 70, types.TierIntermediate},
		{"two repos small corpus capped", 2, 0, 5, 65, types.TierBeginner},
		{"two repos at file threshold", 2, 0, 20, 100, types.TierIntermediate},
		{"two repos below file threshold", 2, 0, 19, 65, types.TierBeginner},
		{"two repos one advanced", 2, 1, 5, 100, types.TierIntermediate},
		{"two repos two advanced", 2, 2, 5, 100, types.TierExpert},
		{"saturated", 3, 2, 0, 100, types.TierExpert},
		{"advanced boost capped", 1, 3, 0, 70, types.TierIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tier := deriveScore(tt.signals, tt.advanced, tt.codeFiles)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

func TestDeriveScore_AdvancedNeverLowersScore(t *testing.T) {
	for _, signals := range []int{1, 2, 3} {
		prev := -1
		for advanced := 0; advanced <= 4; advanced++ {
			score, _ := deriveScore(signals, advanced, 5)
			assert.GreaterOrEqual(t, score, prev, "signals=%d advanced=%d", signals, advanced)
			prev = score
		}
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score      int
		wantStatus string
		wantColor  string
	}{
		{0, types.StatusNeedsAttention, types.ColorNeedsAttention},
		{24, types.StatusNeedsAttention, types.ColorNeedsAttention},
		{25, types.StatusMedium, types.ColorMedium},
		{59, types.StatusMedium, types.ColorMedium},
		{60, types.StatusGood, types.ColorGood},
		{100, types.StatusGood, types.ColorGood},
	}

	for _, tt := range tests {
		status, color := statusFor(tt.score)
		assert.Equal(t, tt.wantStatus, status, "score %d", tt.score)
		assert.Equal(t, tt.wantColor, color, "score %d", tt.score)
	}
}

func TestLanguageScore(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		bytes     map[string]int64
		total     int64
		want      int
	}{
		{"no bytes measured", []string{"Python"}, map[string]int64{}, 0, 0},
		{"full share", []string{"Go"}, map[string]int64{"Go": 5000}, 5000, 100},
		{"third rounds down", []string{"Python"}, map[string]int64{"Python": 1, "Go": 2}, 3, 33},
		{"eighth rounds up", []string{"Go"}, map[string]int64{"Go": 1, "Rust": 7}, 8, 13},
		{"summed languages", []string{"HTML", "CSS"}, map[string]int64{"HTML": 300, "CSS": 200, "JavaScript": 500}, 1000, 50},
		{"absent language", []string{"Kotlin"}, map[string]int64{"Java": 900}, 900, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := &types.ScanFacts{LanguageBytes: tt.bytes, TotalBytes: tt.total}
			assert.Equal(t, tt.want, languageScore(tt.languages, facts))
		})
	}
}

func TestEvaluate_NodeExpressDocker(t *testing.T) {
	repo := types.RepoFacts{
		Name:      "shop-api",
		Languages: map[string]int64{"JavaScript": 12000},
		NpmDeps:   map[string]bool{"express": true, "jest": true},
		PipDeps:   map[string]bool{},
		Files:     []string{"package.json", "dockerfile", "src/index.js", "src/routes/users.js"},
		Samples: []types.FileSample{
			{Path: "src/index.js", Content: "const express = require('express');\nconst app = express();\napp.get('/users', listUsers);\napp.listen(3000);\n"},
			{Path: "dockerfile", Content: "FROM node:18-alpine\nWORKDIR /app\nCOPY . .\nEXPOSE 3000\nCMD [\"node\", \"src/index.js\"]\n"},
		},
		CodeFileCount: 2,
	}
	facts := &types.ScanFacts{
		Repos:         []types.RepoFacts{repo},
		LanguageBytes: map[string]int64{"JavaScript": 12000},
		TotalBytes:    12000,
	}

	results := Evaluate([]string{"Node.js", "Express", "Docker", "React", "JavaScript"}, facts)
	require.Len(t, results, 5)

	node, express, docker, react, js := results[0], results[1], results[2], results[3], results[4]

	assert.Equal(t, 50, node.Score)
	assert.Equal(t, types.TierBeginner, node.Proficiency)
	assert.Equal(t, []string{"shop-api"}, node.SupportingRepos)

	assert.Equal(t, 50, express.Score)
	assert.Equal(t, types.StatusMedium, express.Status)
	assert.Equal(t, []string{"shop-api"}, express.SupportingRepos)

	assert.Equal(t, 50, docker.Score)
	assert.Equal(t, types.TierBeginner, docker.Proficiency)

	assert.Equal(t, 0, react.Score)
	assert.Equal(t, types.TierNone, react.Proficiency)
	assert.Equal(t, types.StatusNeedsAttention, react.Status)
	assert.Empty(t, react.SupportingRepos)

	assert.Equal(t, 100, js.Score)
	assert.Empty(t, js.Proficiency, "language skills carry no tier")
	assert.Equal(t, types.StatusGood, js.Status)
}

func TestEvaluate_UnknownSkillScoresZero(t *testing.T) {
	facts := &types.ScanFacts{
		Repos:         []types.RepoFacts{{Name: "anything", NpmDeps: map[string]bool{"express": true}}},
		LanguageBytes: map[string]int64{"JavaScript": 100},
		TotalBytes:    100,
	}

	result := Evaluate([]string{"Basket Weaving"}, facts)[0]
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, types.TierNone, result.Proficiency)
	assert.Equal(t, types.StatusNeedsAttention, result.Status)
}

func TestEvaluate_StopsAtSignalSaturation(t *testing.T) {
	repos := make([]types.RepoFacts, 6)
	for i := range repos {
		repos[i] = types.RepoFacts{
			Name:          fmt.Sprintf("svc-%d", i),
			NpmDeps:       map[string]bool{"express": true},
			CodeFileCount: 10,
		}
	}
	facts := &types.ScanFacts{Repos: repos}

	result := Evaluate([]string{"Express"}, facts)[0]
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, types.TierIntermediate, result.Proficiency)
	assert.Equal(t, []string{"svc-0", "svc-1", "svc-2"}, result.SupportingRepos)
}

func TestEvaluate_StopsEarlyOnceExpert(t *testing.T) {
	repos := make([]types.RepoFacts, 5)
	for i := range repos {
		repos[i] = types.RepoFacts{
			Name:    fmt.Sprintf("svc-%d", i),
			NpmDeps: map[string]bool{"express": true},
			Samples: []types.FileSample{
				{Path: "src/app.js", Content: "const router = express.Router();\n"},
			},
		}
	}
	facts := &types.ScanFacts{Repos: repos}

	result := Evaluate([]string{"Express"}, facts)[0]
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, types.TierExpert, result.Proficiency)
	assert.Equal(t, []string{"svc-0", "svc-1"}, result.SupportingRepos)
}

func TestEvaluate_HybridEitherProof(t *testing.T) {
	// SQL proves through language share alone.
	byShare := &types.ScanFacts{
		LanguageBytes: map[string]int64{"TSQL": 800, "C#": 200},
		TotalBytes:    1000,
	}
	result := Evaluate([]string{"SQL"}, byShare)[0]
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, types.TierNone, result.Proficiency)

	// With a signal the better of the two components wins.
	withSignal := &types.ScanFacts{
		Repos: []types.RepoFacts{{
			Name:  "billing",
			Files: []string{"db/migrations/001_init.sql"},
		}},
		LanguageBytes: map[string]int64{"TSQL": 800, "C#": 200},
		TotalBytes:    1000,
	}
	result = Evaluate([]string{"SQL"}, withSignal)[0]
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, types.TierBeginner, result.Proficiency)
	assert.Equal(t, []string{"billing"}, result.SupportingRepos)
}

func TestEvaluate_HybridBlendsEqually(t *testing.T) {
	facts := &types.ScanFacts{
		Repos: []types.RepoFacts{{
			Name:  "portfolio",
			Files: []string{"styles/site.css"},
		}},
		LanguageBytes: map[string]int64{"HTML": 100, "CSS": 100, "JavaScript": 800},
		TotalBytes:    1000,
	}

	result := Evaluate([]string{"HTML/CSS"}, facts)[0]
	assert.Equal(t, 35, result.Score, "mean of signal 50 and share 20")
	assert.Equal(t, types.TierBeginner, result.Proficiency)
}

func TestEvaluate_EmptyFacts(t *testing.T) {
	facts := &types.ScanFacts{LanguageBytes: map[string]int64{}}

	for _, result := range Evaluate([]string{"Python", "Django", "SQL"}, facts) {
		assert.Equal(t, 0, result.Score, result.Skill)
		assert.Equal(t, types.StatusNeedsAttention, result.Status, result.Skill)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	facts := &types.ScanFacts{
		Repos: []types.RepoFacts{
			{Name: "api", NpmDeps: map[string]bool{"express": true}, CodeFileCount: 15},
			{Name: "site", Files: []string{"dockerfile"}, CodeFileCount: 8},
		},
		LanguageBytes: map[string]int64{"JavaScript": 900, "Python": 100},
		TotalBytes:    1000,
	}
	claimed := []string{"Express", "Docker", "JavaScript", "Kubernetes"}

	first := Evaluate(claimed, facts)
	second := Evaluate(claimed, facts)
	assert.Equal(t, first, second)
}

func TestEvaluate_MoreSignalsNeverLowerScore(t *testing.T) {
	prev := -1
	for count := 0; count <= 4; count++ {
		repos := make([]types.RepoFacts, count)
		for i := range repos {
			repos[i] = types.RepoFacts{
				Name:          fmt.Sprintf("svc-%d", i),
				NpmDeps:       map[string]bool{"express": true},
				CodeFileCount: 10,
			}
		}
		result := Evaluate([]string{"Express"}, &types.ScanFacts{Repos: repos})[0]
		assert.GreaterOrEqual(t, result.Score, prev, "repos=%d", count)
		prev = result.Score
	}
}

func TestAggregate(t *testing.T) {
	breakdown := []types.SkillResult{
		{Skill: "Go", Score: 50},
		{Skill: "Docker", Score: 75},
		{Skill: "Kubernetes", Score: 25},
		{Skill: "AWS", Score: 24},
	}

	result := Aggregate("octocat", 7, breakdown)

	assert.Equal(t, "octocat", result.GithubUsername)
	assert.Equal(t, 7, result.ReposAnalyzed)
	assert.Equal(t, 44, result.OverallScore, "mean 43.5 rounds up")
	assert.Equal(t, []string{"Go", "Docker", "Kubernetes", "AWS"}, result.ClaimedSkills)
	assert.Equal(t, []string{"Go", "Docker", "Kubernetes"}, result.ProvenSkills)
	assert.Equal(t, []string{"AWS"}, result.MissingProof)
	assert.Equal(t, breakdown, result.Breakdown)
}

func TestAggregate_EmptyBreakdown(t *testing.T) {
	result := Aggregate("octocat", 0, nil)

	assert.Equal(t, 0, result.OverallScore)
	assert.NotNil(t, result.ClaimedSkills)
	assert.NotNil(t, result.ProvenSkills)
	assert.NotNil(t, result.MissingProof)
	assert.NotNil(t, result.Breakdown, "serializes as [] rather than null")
	assert.Empty(t, result.ClaimedSkills)
}
