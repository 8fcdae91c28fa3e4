// Package evidence scores claimed skills against repository scan facts.
package evidence

import (
	"math"
	"regexp"
	"strings"

	"github.com/snehagrian/proofmap/internal/types"
)

// Base scores and tier thresholds. The values interlock: the proven
// threshold doubles as the needs-attention status boundary.
const (
	baseScoreSingleRepo = 50
	baseScoreMultiRepo  = 100

	advancedBoostPerRepo = 10
	advancedBoostMax     = 20

	expertMinAdvanced = 2
	expertMinScore    = 80

	intermediateFloor    = 60
	intermediateMinFiles = 20

	beginnerCap = 65

	provenThreshold = 25
	goodThreshold   = 60

	// maxSignalRepos stops the repository walk once the base score is
	// saturated.
	maxSignalRepos = 3
)

// Evaluate scores every claimed skill, preserving claimed order in the
// returned breakdown.
func Evaluate(claimed []string, facts *types.ScanFacts) []types.SkillResult {
	results := make([]types.SkillResult, 0, len(claimed))
	for _, skill := range claimed {
		results = append(results, evaluateSkill(skill, facts))
	}
	return results
}

func evaluateSkill(skill string, facts *types.ScanFacts) types.SkillResult {
	rule, ok := rules[skill]
	if !ok {
		return newResult(skill, 0, types.TierNone, nil)
	}

	switch rule.Kind {
	case KindLanguage:
		// Language share alone proves exposure, not proficiency, so no
		// tier is reported.
		return newResult(skill, languageScore(rule.Languages, facts), "", nil)
	case KindHybrid:
		signals, advanced, supporting := countSignals(rule, facts)
		score, tier := deriveScore(signals, advanced, totalCodeFiles(facts))
		langScore := languageScore(rule.Languages, facts)
		if rule.EitherProof {
			if langScore > score {
				score = langScore
			}
		} else {
			score = int(math.Round(float64(score+langScore) / 2))
		}
		return newResult(skill, score, tier, supporting)
	default:
		signals, advanced, supporting := countSignals(rule, facts)
		score, tier := deriveScore(signals, advanced, totalCodeFiles(facts))
		return newResult(skill, score, tier, supporting)
	}
}

// countSignals walks repositories in scan order counting those that
// signal the rule and those showing advanced usage. The walk stops once
// further repositories cannot raise the score: at maxSignalRepos
// signaling repositories, or once both the multi-repo base and the
// advanced boost are saturated.
func countSignals(rule Rule, facts *types.ScanFacts) (signals, advanced int, supporting []string) {
	for i := range facts.Repos {
		repo := &facts.Repos[i]
		if repoSignals(rule, repo) {
			signals++
			supporting = append(supporting, repo.Name)
		}
		if repoAdvanced(rule, repo) {
			advanced++
		}
		if signals >= maxSignalRepos || (signals >= 2 && advanced >= expertMinAdvanced) {
			break
		}
	}
	return signals, advanced, supporting
}

// repoSignals reports whether one repository carries any signal for the
// rule, checking path and manifest evidence before sample patterns.
func repoSignals(rule Rule, repo *types.RepoFacts) bool {
	for _, indicator := range rule.Indicators {
		for _, path := range repo.Files {
			if strings.Contains(path, indicator) {
				return true
			}
		}
	}
	for _, dep := range rule.Deps {
		if repo.NpmDeps[dep] {
			return true
		}
	}
	for _, dep := range rule.PipDeps {
		if repo.PipDeps[dep] {
			return true
		}
	}
	return matchesAny(rule.Patterns, repo.Samples)
}

// repoAdvanced reports whether one repository shows advanced usage of
// the rule's skill. Advanced evidence is counted independently of the
// base signals.
func repoAdvanced(rule Rule, repo *types.RepoFacts) bool {
	return matchesAny(rule.Advanced, repo.Samples)
}

func matchesAny(patterns []*regexp.Regexp, samples []types.FileSample) bool {
	for _, pattern := range patterns {
		for _, sample := range samples {
			if pattern.MatchString(sample.Content) {
				return true
			}
		}
	}
	return false
}

// deriveScore turns signal counts into a score in [0, 100] and a
// proficiency tier. codeFiles is the code file total across every
// scanned repository.
func deriveScore(signals, advanced, codeFiles int) (int, string) {
	if signals == 0 {
		return 0, types.TierNone
	}

	score := baseScoreSingleRepo
	if signals >= 2 {
		score = baseScoreMultiRepo
	}
	boost := advanced * advancedBoostPerRepo
	if boost > advancedBoostMax {
		boost = advancedBoostMax
	}
	score = clampScore(score + boost)

	switch {
	case advanced >= expertMinAdvanced && score >= expertMinScore:
		return score, types.TierExpert
	case advanced >= 1 || (signals >= 2 && codeFiles >= intermediateMinFiles):
		if score < intermediateFloor {
			score = intermediateFloor
		}
		return score, types.TierIntermediate
	default:
		if score > beginnerCap {
			score = beginnerCap
		}
		return score, types.TierBeginner
	}
}

// languageScore is the rounded percentage of scanned bytes written in
// the rule's languages, 0 when no bytes were measured at all.
func languageScore(languages []string, facts *types.ScanFacts) int {
	if facts.TotalBytes == 0 {
		return 0
	}
	var matched int64
	for _, language := range languages {
		matched += facts.LanguageBytes[language]
	}
	return clampScore(int(math.Round(float64(matched) / float64(facts.TotalBytes) * 100)))
}

func totalCodeFiles(facts *types.ScanFacts) int {
	total := 0
	for i := range facts.Repos {
		total += facts.Repos[i].CodeFileCount
	}
	return total
}

// newResult assembles a SkillResult, deriving status and color from the
// final clamped score. An empty tier is dropped from the payload.
func newResult(skill string, score int, tier string, supporting []string) types.SkillResult {
	score = clampScore(score)
	status, color := statusFor(score)
	return types.SkillResult{
		Skill:           skill,
		Score:           score,
		Status:          status,
		Color:           color,
		Proficiency:     tier,
		SupportingRepos: supporting,
	}
}

// statusFor maps a score to its display status and hex color.
func statusFor(score int) (string, string) {
	switch {
	case score < provenThreshold:
		return types.StatusNeedsAttention, types.ColorNeedsAttention
	case score < goodThreshold:
		return types.StatusMedium, types.ColorMedium
	default:
		return types.StatusGood, types.ColorGood
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
