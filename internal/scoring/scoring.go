// Package scoring computes area scores from an answer set and classifies
// them into maturity tiers. All functions are pure; results depend only on
// the arguments.
package scoring

import (
	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

// ComputeAreaScores aggregates the per-area totals from the answers.
// Area A uses either L3-A1 or L3-A1-ALT depending on the L1-A branch; the
// two never contribute together. Unanswered questions and unknown answer
// ids contribute 0. Each area is clamped to [0, MaxAreaScore].
func ComputeAreaScores(answers domain.AnswersState, lang string) domain.AreaScores {
	score := func(id domain.QuestionID) int {
		return catalog.OptionScore(lang, id, answers[id])
	}

	scoreA := score(catalog.L1A) + score(catalog.L2A1) + score(catalog.L2A2)
	if catalog.UsesExistingRemoteAccess(answers) {
		scoreA += score(catalog.L3A1)
	} else {
		scoreA += score(catalog.L3A1Alt)
	}

	scoreB := score(catalog.L1B) + score(catalog.L2B1) + score(catalog.L2B2) + score(catalog.L3B1)
	scoreC := score(catalog.L1C) + score(catalog.L2C1) + score(catalog.L3C1)

	return domain.AreaScores{
		AreaA: clamp(scoreA),
		AreaB: clamp(scoreB),
		AreaC: clamp(scoreC),
	}
}

// ComputeAverageScore is the arithmetic mean of the three areas. No
// rounding: downstream threshold comparisons and display formatting need
// the full precision.
func ComputeAverageScore(scores domain.AreaScores) float64 {
	total := scores.AreaA + scores.AreaB + scores.AreaC
	return float64(total) / 3
}

// Summarize bundles the area scores and the average into the snapshot
// shape embedded in a lead.
func Summarize(answers domain.AnswersState, lang string) domain.ScoreSummary {
	areas := ComputeAreaScores(answers, lang)
	return domain.ScoreSummary{
		AreaA:   areas.AreaA,
		AreaB:   areas.AreaB,
		AreaC:   areas.AreaC,
		Average: ComputeAverageScore(areas),
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > domain.MaxAreaScore {
		return domain.MaxAreaScore
	}
	return score
}
