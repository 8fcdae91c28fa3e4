// Package remediation proposes where a candidate could add proof for a
// skill their repositories do not yet demonstrate. The affinity check
// is deliberately looser than the evidence rules: it answers "where
// would this skill fit", not "is this skill proven".
package remediation

import (
	"strings"

	"github.com/snehagrian/proofmap/internal/types"
)

// Affinity weights. The small-repo bonus only applies on top of a real
// match, so it breaks ties without qualifying repositories on its own.
const (
	depWeight       = 3
	extensionWeight = 2
	indicatorWeight = 2

	smallRepoBonus = 1
	smallRepoMax   = 30
)

// hints describe what makes a repository a plausible home for a skill.
type hints struct {
	deps       []string // manifest dependency names, either ecosystem
	extensions []string // file extensions associated with the skill
	indicators []string // conventional path substrings
}

// Plan proposes how to add proof for one skill: the best-fitting
// existing repository with guidance steps, or fresh project ideas when
// no repository fits. Deterministic for a given skill and facts.
func Plan(skill string, facts []types.RepoFacts) types.RemediationPlan {
	repo, score := bestCandidate(skill, facts)
	if score > 0 {
		return types.RemediationPlan{
			Skill:           skill,
			CandidateExists: true,
			RepoName:        repo,
			UsageGuidance:   guidanceFor(skill, repo),
		}
	}
	return types.RemediationPlan{
		Skill:           skill,
		CandidateExists: false,
		ProjectIdeas:    ideasFor(skill),
	}
}

// bestCandidate returns the highest-affinity repository and its score,
// keeping the earliest repository on ties.
func bestCandidate(skill string, facts []types.RepoFacts) (string, int) {
	h := affinityHints[skill]
	bestName, bestScore := "", 0
	for i := range facts {
		if score := affinity(h, &facts[i]); score > bestScore {
			bestName, bestScore = facts[i].Name, score
		}
	}
	return bestName, bestScore
}

func affinity(h hints, repo *types.RepoFacts) int {
	score := 0
	for _, dep := range h.deps {
		if repo.HasDep(dep) {
			score += depWeight
			break
		}
	}
	if matchesExtension(h.extensions, repo.Files) {
		score += extensionWeight
	}
	if matchesIndicator(h.indicators, repo.Files) {
		score += indicatorWeight
	}
	if score > 0 && repo.CodeFileCount < smallRepoMax {
		score += smallRepoBonus
	}
	return score
}

func matchesExtension(extensions, files []string) bool {
	for _, ext := range extensions {
		for _, file := range files {
			if strings.HasSuffix(file, ext) {
				return true
			}
		}
	}
	return false
}

func matchesIndicator(indicators, files []string) bool {
	for _, indicator := range indicators {
		for _, file := range files {
			if strings.Contains(file, indicator) {
				return true
			}
		}
	}
	return false
}

// affinityHints is the per-skill affinity table. Skills without an
// entry never match a repository and always fall through to project
// ideas.
var affinityHints = map[string]hints{
	"JavaScript": {extensions: []string{".js", ".jsx", ".mjs"}},
	"TypeScript": {deps: []string{"typescript"}, extensions: []string{".ts", ".tsx"}, indicators: []string{"tsconfig.json"}},
	"Python":     {extensions: []string{".py"}, indicators: []string{"pyproject.toml", "setup.py"}},
	"Java":       {extensions: []string{".java"}, indicators: []string{"pom.xml", "build.gradle"}},
	"Go":         {extensions: []string{".go"}, indicators: []string{"go.mod"}},
	"Ruby":       {extensions: []string{".rb"}, indicators: []string{"gemfile"}},
	"PHP":        {extensions: []string{".php"}, indicators: []string{"composer.json"}},
	"C++":        {extensions: []string{".cpp", ".hpp", ".h"}, indicators: []string{"makefile"}},
	"C#":         {extensions: []string{".cs"}},
	"Rust":       {extensions: []string{".rs"}, indicators: []string{"cargo.toml"}},
	"Swift":      {extensions: []string{".swift"}},
	"Kotlin":     {extensions: []string{".kt"}, indicators: []string{"build.gradle"}},

	"HTML/CSS": {extensions: []string{".html", ".css", ".scss"}},
	"SQL":      {deps: []string{"knex", "sequelize", "prisma", "typeorm", "sqlalchemy"}, extensions: []string{".sql"}, indicators: []string{"migrations"}},

	"React":        {deps: []string{"react"}, extensions: []string{".jsx", ".tsx"}},
	"Next.js":      {deps: []string{"next", "react"}, extensions: []string{".jsx", ".tsx"}, indicators: []string{"pages/"}},
	"Vue":          {deps: []string{"vue"}, extensions: []string{".vue"}},
	"Angular":      {deps: []string{"@angular/core", "typescript"}, extensions: []string{".ts"}},
	"Tailwind CSS": {deps: []string{"tailwindcss", "postcss"}, extensions: []string{".css", ".jsx", ".tsx", ".html"}},
	"Node.js":      {deps: []string{"express", "axios"}, extensions: []string{".js", ".mjs"}, indicators: []string{"package.json"}},
	"Express":      {extensions: []string{".js", ".ts"}, indicators: []string{"package.json"}},
	"Django":       {deps: []string{"django"}, extensions: []string{".py"}, indicators: []string{"manage.py"}},
	"Flask":        {deps: []string{"flask"}, extensions: []string{".py"}},
	"FastAPI":      {deps: []string{"fastapi"}, extensions: []string{".py"}},
	"Spring Boot":  {extensions: []string{".java", ".kt"}, indicators: []string{"pom.xml", "build.gradle"}},
	"REST API":     {deps: []string{"express", "fastapi", "flask"}, extensions: []string{".js", ".ts", ".py", ".go", ".java"}, indicators: []string{"routes/", "api/"}},
	"GraphQL":      {deps: []string{"graphql", "express", "@apollo/client"}, extensions: []string{".js", ".ts"}},
	"PostgreSQL":   {deps: []string{"pg", "sequelize", "knex", "sqlalchemy", "psycopg2"}, extensions: []string{".sql"}, indicators: []string{"migrations"}},
	"MySQL":        {deps: []string{"mysql", "mysql2", "sequelize", "sqlalchemy"}, extensions: []string{".sql"}},
	"MongoDB":      {deps: []string{"mongoose", "mongodb", "pymongo", "express"}, indicators: []string{"models/"}},
	"Redis":        {deps: []string{"redis", "ioredis", "express", "fastapi"}},
	"Docker":       {extensions: []string{".js", ".py", ".go", ".java"}, indicators: []string{"package.json", "go.mod"}},
	"Kubernetes":   {indicators: []string{"dockerfile", "docker-compose"}},
	"AWS":          {deps: []string{"express", "flask", "boto3"}, extensions: []string{".tf"}, indicators: []string{"dockerfile"}},
	"CI/CD":        {extensions: []string{".js", ".py", ".go", ".java", ".rb"}, indicators: []string{"package.json", "go.mod", "pom.xml"}},
}
