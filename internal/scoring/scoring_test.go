package scoring

import (
	"reflect"
	"testing"

	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

// maxAnswers selects the highest scoring option everywhere, with L1-A on
// the "VPN for most" branch.
func maxAnswers() domain.AnswersState {
	return domain.AnswersState{
		catalog.L1A:     "L1-A-1",
		catalog.L1B:     "L1-B-1",
		catalog.L1C:     "L1-C-1",
		catalog.L2A1:    "L2-A1-2",
		catalog.L2A2:    "L2-A2-3",
		catalog.L2B1:    "L2-B1-2",
		catalog.L2B2:    "L2-B2-1",
		catalog.L2C1:    "L2-C1-3",
		catalog.L3A1:    "L3-A1-1",
		catalog.L3A1Alt: "",
		catalog.L3B1:    "L3-B1-1",
		catalog.L3C1:    "L3-C1-3",
	}
}

func zeroAnswers() domain.AnswersState {
	return domain.AnswersState{
		catalog.L1A:     "L1-A-4",
		catalog.L1B:     "L1-B-4",
		catalog.L1C:     "L1-C-4",
		catalog.L2A1:    "L2-A1-4",
		catalog.L2A2:    "L2-A2-1",
		catalog.L2B1:    "L2-B1-1",
		catalog.L2B2:    "L2-B2-4",
		catalog.L2C1:    "L2-C1-1",
		catalog.L3A1:    "",
		catalog.L3A1Alt: "L3-A1-ALT-1",
		catalog.L3B1:    "L3-B1-4",
		catalog.L3C1:    "L3-C1-4",
	}
}

func TestAllMaxAnswersScoreSix(t *testing.T) {
	scores := ComputeAreaScores(maxAnswers(), catalog.LangDE)
	want := domain.AreaScores{AreaA: 6, AreaB: 6, AreaC: 6}
	if scores != want {
		t.Fatalf("expected %+v, got %+v", want, scores)
	}

	avg := ComputeAverageScore(scores)
	if avg != 6.0 {
		t.Fatalf("expected average 6.0, got %v", avg)
	}
	if label := DeriveOverallLabel(avg, catalog.LangDE); label.Level != domain.LevelHigh {
		t.Fatalf("expected high tier, got %s", label.Level)
	}
}

func TestAllZeroAnswersScoreZero(t *testing.T) {
	scores := ComputeAreaScores(zeroAnswers(), catalog.LangDE)
	want := domain.AreaScores{}
	if scores != want {
		t.Fatalf("expected all-zero scores, got %+v", scores)
	}

	avg := ComputeAverageScore(scores)
	if avg != 0.0 {
		t.Fatalf("expected average 0.0, got %v", avg)
	}
	if label := DeriveOverallLabel(avg, catalog.LangDE); label.Level != domain.LevelLow {
		t.Fatalf("expected low tier, got %s", label.Level)
	}
}

func TestAreaAUsesAlternateQuestionWithoutVPN(t *testing.T) {
	// No VPN in use: only the ALT question may contribute to area A.
	answers := domain.AnswersState{
		catalog.L1A:     "L1-A-3",
		catalog.L3A1:    "L3-A1-1",     // would add 2 if (wrongly) counted
		catalog.L3A1Alt: "L3-A1-ALT-3", // adds 1
	}
	scores := ComputeAreaScores(answers, catalog.LangDE)
	if scores.AreaA != 1 {
		t.Fatalf("expected area A = 1 from ALT branch only, got %d", scores.AreaA)
	}

	// VPN in use: only L3-A1 may contribute.
	answers[catalog.L1A] = "L1-A-1"
	answers[catalog.L3A1] = "L3-A1-2"     // adds 1
	answers[catalog.L3A1Alt] = "L3-A1-ALT-3" // must be ignored
	scores = ComputeAreaScores(answers, catalog.LangDE)
	if scores.AreaA != 2+1 {
		t.Fatalf("expected area A = 3 (L1-A + L3-A1), got %d", scores.AreaA)
	}
}

func TestPartialAnswersStayInRange(t *testing.T) {
	partials := []domain.AnswersState{
		{},
		{catalog.L1A: "L1-A-1"},
		{catalog.L1B: "L1-B-1", catalog.L2B2: "L2-B2-1", catalog.L3B1: "L3-B1-1"},
		{catalog.L1C: "bogus-answer"},
		maxAnswers(),
		zeroAnswers(),
	}
	for i, answers := range partials {
		scores := ComputeAreaScores(answers, catalog.LangDE)
		for name, v := range map[string]int{"A": scores.AreaA, "B": scores.AreaB, "C": scores.AreaC} {
			if v < 0 || v > domain.MaxAreaScore {
				t.Fatalf("case %d: area %s score %d out of [0,%d]", i, name, v, domain.MaxAreaScore)
			}
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	answers := maxAnswers()
	first := ComputeAreaScores(answers, catalog.LangDE)
	second := ComputeAreaScores(answers, catalog.LangDE)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
	if ComputeAverageScore(first) != ComputeAverageScore(second) {
		t.Fatalf("average not stable")
	}
}

func TestAverageKeepsPrecision(t *testing.T) {
	avg := ComputeAverageScore(domain.AreaScores{AreaA: 6, AreaB: 6, AreaC: 1})
	want := 13.0 / 3
	if avg != want {
		t.Fatalf("expected unrounded %v, got %v", want, avg)
	}
}

func TestSummarizeEmbedsAverage(t *testing.T) {
	summary := Summarize(maxAnswers(), catalog.LangDE)
	if summary.AreaA != 6 || summary.AreaB != 6 || summary.AreaC != 6 || summary.Average != 6.0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
