package evidence

import (
	"math"

	"github.com/snehagrian/proofmap/internal/types"
)

// Aggregate folds a per-skill breakdown into the scan-level summary:
// the rounded mean score plus the proven and missing partitions. Skills
// scoring below the proven threshold land under missing proof.
func Aggregate(username string, reposAnalyzed int, breakdown []types.SkillResult) *types.ScanResult {
	if breakdown == nil {
		breakdown = []types.SkillResult{}
	}

	claimed := make([]string, 0, len(breakdown))
	proven := make([]string, 0, len(breakdown))
	missing := make([]string, 0, len(breakdown))

	sum := 0
	for _, result := range breakdown {
		claimed = append(claimed, result.Skill)
		sum += result.Score
		if result.Score >= provenThreshold {
			proven = append(proven, result.Skill)
		} else {
			missing = append(missing, result.Skill)
		}
	}

	overall := 0
	if len(breakdown) > 0 {
		overall = int(math.Round(float64(sum) / float64(len(breakdown))))
	}

	return &types.ScanResult{
		GithubUsername: username,
		ReposAnalyzed:  reposAnalyzed,
		OverallScore:   overall,
		ClaimedSkills:  claimed,
		ProvenSkills:   proven,
		MissingProof:   missing,
		Breakdown:      breakdown,
	}
}
