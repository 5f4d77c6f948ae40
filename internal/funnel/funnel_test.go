package funnel

import (
	"errors"
	"testing"

	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

func questionIDs(qs []domain.Question) []domain.QuestionID {
	out := make([]domain.QuestionID, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func equalIDs(got []domain.QuestionID, want ...domain.QuestionID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestLevel2SetFollowsGatingAnswers(t *testing.T) {
	answers := catalog.EmptyAnswers()

	// No VPN, no online processes: only the incident question remains.
	answers[catalog.L1A] = "L1-A-3"
	answers[catalog.L1B] = "L1-B-3"
	got := questionIDs(Level2Questions(answers, catalog.LangDE))
	if !equalIDs(got, catalog.L2C1) {
		t.Fatalf("expected only L2-C1, got %v", got)
	}

	// VPN in use adds the A follow-ups, online processes the B follow-ups.
	answers[catalog.L1A] = "L1-A-1"
	answers[catalog.L1B] = "L1-B-2"
	got = questionIDs(Level2Questions(answers, catalog.LangDE))
	if !equalIDs(got, catalog.L2A1, catalog.L2A2, catalog.L2B1, catalog.L2B2, catalog.L2C1) {
		t.Fatalf("expected full level-2 set, got %v", got)
	}

	// Changing the gating answer back immediately shrinks the set again.
	answers[catalog.L1A] = "L1-A-4"
	got = questionIDs(Level2Questions(answers, catalog.LangDE))
	if !equalIDs(got, catalog.L2B1, catalog.L2B2, catalog.L2C1) {
		t.Fatalf("expected B follow-ups only, got %v", got)
	}
}

func TestLevel3SetSwapsAlternateQuestion(t *testing.T) {
	answers := catalog.EmptyAnswers()

	answers[catalog.L1A] = "L1-A-3"
	got := questionIDs(Level3Questions(answers, catalog.LangDE))
	if !equalIDs(got, catalog.L3A1Alt, catalog.L3B1, catalog.L3C1) {
		t.Fatalf("expected alternate question first, got %v", got)
	}

	answers[catalog.L1A] = "L1-A-2"
	got = questionIDs(Level3Questions(answers, catalog.LangDE))
	if !equalIDs(got, catalog.L3A1, catalog.L3B1, catalog.L3C1) {
		t.Fatalf("expected satisfaction question first, got %v", got)
	}
}

func TestSessionHappyPath(t *testing.T) {
	s, err := NewSession(catalog.LangDE, NewMemoryStateStore())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Step() != StepStart {
		t.Fatalf("expected start, got %s", s.Step())
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("start always advances: %v", err)
	}

	// Level 1 gate: incomplete answers block forward navigation.
	if err := s.Advance(); !errors.Is(err, domain.ErrStepIncomplete) {
		t.Fatalf("expected ErrStepIncomplete, got %v", err)
	}
	mustSet(t, s, catalog.L1A, "L1-A-1")
	mustSet(t, s, catalog.L1B, "L1-B-1")
	mustSet(t, s, catalog.L1C, "L1-C-1")
	if err := s.Advance(); err != nil {
		t.Fatalf("level1 complete, advance failed: %v", err)
	}

	// Level 2: the dynamic set must be answered in full.
	mustSet(t, s, catalog.L2A1, "L2-A1-1")
	mustSet(t, s, catalog.L2A2, "L2-A2-1")
	mustSet(t, s, catalog.L2B1, "L2-B1-1")
	mustSet(t, s, catalog.L2B2, "L2-B2-1")
	if err := s.Advance(); !errors.Is(err, domain.ErrStepIncomplete) {
		t.Fatalf("L2-C1 unanswered, expected gate, got %v", err)
	}
	mustSet(t, s, catalog.L2C1, "L2-C1-3")
	if err := s.Advance(); err != nil {
		t.Fatalf("level2 complete, advance failed: %v", err)
	}

	// Level 3: VPN branch requires L3-A1, not the alternate.
	mustSet(t, s, catalog.L3A1Alt, "L3-A1-ALT-1")
	mustSet(t, s, catalog.L3B1, "L3-B1-1")
	mustSet(t, s, catalog.L3C1, "L3-C1-3")
	if err := s.Advance(); !errors.Is(err, domain.ErrStepIncomplete) {
		t.Fatalf("alternate answer must not satisfy the VPN branch, got %v", err)
	}
	mustSet(t, s, catalog.L3A1, "L3-A1-1")
	if err := s.Advance(); err != nil {
		t.Fatalf("level3 complete, advance failed: %v", err)
	}
	if s.Step() != StepResults {
		t.Fatalf("expected results, got %s", s.Step())
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("results -> form: %v", err)
	}
	if err := s.BeginSubmission(); err != nil {
		t.Fatalf("begin submission: %v", err)
	}
	if err := s.FinishSubmission(true); err != nil {
		t.Fatalf("finish submission: %v", err)
	}
	if s.Step() != StepThanks {
		t.Fatalf("expected thanks, got %s", s.Step())
	}
}

func TestBackOnlyBetweenQuizSteps(t *testing.T) {
	s, _ := NewSession(catalog.LangDE, nil)

	if err := s.Back(); !errors.Is(err, domain.ErrNoSuchTransition) {
		t.Fatalf("no back from start, got %v", err)
	}

	_ = s.Advance() // level1
	if err := s.Back(); err != nil {
		t.Fatalf("level1 -> start: %v", err)
	}
	if s.Step() != StepStart {
		t.Fatalf("expected start, got %s", s.Step())
	}
}

func TestSubmissionGuard(t *testing.T) {
	s, _ := NewSession(catalog.LangDE, nil)

	// Not on the form step yet.
	if err := s.BeginSubmission(); !errors.Is(err, domain.ErrNoSuchTransition) {
		t.Fatalf("expected transition error off the form step, got %v", err)
	}

	advanceToForm(t, s)

	if err := s.BeginSubmission(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.BeginSubmission(); !errors.Is(err, domain.ErrSubmissionInFlight) {
		t.Fatalf("expected double-submit guard, got %v", err)
	}

	// A failed submission re-enables the form.
	if err := s.FinishSubmission(false); err != nil {
		t.Fatalf("finish(false): %v", err)
	}
	if s.Step() != StepForm {
		t.Fatalf("failed submission must stay on form, got %s", s.Step())
	}
	if err := s.BeginSubmission(); err != nil {
		t.Fatalf("resubmit after failure: %v", err)
	}
}

func TestResetClearsStateAndStore(t *testing.T) {
	store := NewMemoryStateStore()
	s, _ := NewSession(catalog.LangDE, store)

	_ = s.Advance()
	mustSet(t, s, catalog.L1A, "L1-A-1")

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.Step() != StepStart {
		t.Fatalf("expected start after reset, got %s", s.Step())
	}
	if s.Answers()[catalog.L1A] != "" {
		t.Fatalf("expected answers cleared")
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatalf("expected persisted state cleared")
	}
}

func TestSessionRestoresFromStore(t *testing.T) {
	store := NewMemoryStateStore()
	s, _ := NewSession(catalog.LangDE, store)
	_ = s.Advance()
	mustSet(t, s, catalog.L1A, "L1-A-2")

	restored, err := NewSession(catalog.LangDE, store)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Step() != StepLevel1 {
		t.Fatalf("expected restored step level1, got %s", restored.Step())
	}
	if restored.Answers()[catalog.L1A] != "L1-A-2" {
		t.Fatalf("expected restored answer")
	}
}

func TestSetAnswerRejectsUnknownQuestion(t *testing.T) {
	s, _ := NewSession(catalog.LangDE, nil)
	if err := s.SetAnswer("L9-X", "x"); !errors.Is(err, domain.ErrNoSuchTransition) {
		t.Fatalf("expected rejection for unknown question, got %v", err)
	}
}

func mustSet(t *testing.T, s *Session, id domain.QuestionID, answer domain.AnswerID) {
	t.Helper()
	if err := s.SetAnswer(id, answer); err != nil {
		t.Fatalf("set %s: %v", id, err)
	}
}

func advanceToForm(t *testing.T, s *Session) {
	t.Helper()
	_ = s.Advance() // level1
	mustSet(t, s, catalog.L1A, "L1-A-3")
	mustSet(t, s, catalog.L1B, "L1-B-3")
	mustSet(t, s, catalog.L1C, "L1-C-3")
	if err := s.Advance(); err != nil { // level2
		t.Fatalf("to level2: %v", err)
	}
	mustSet(t, s, catalog.L2C1, "L2-C1-3")
	if err := s.Advance(); err != nil { // level3
		t.Fatalf("to level3: %v", err)
	}
	mustSet(t, s, catalog.L3A1Alt, "L3-A1-ALT-3")
	mustSet(t, s, catalog.L3B1, "L3-B1-2")
	mustSet(t, s, catalog.L3C1, "L3-C1-3")
	if err := s.Advance(); err != nil { // results
		t.Fatalf("to results: %v", err)
	}
	if err := s.Advance(); err != nil { // form
		t.Fatalf("to form: %v", err)
	}
}
