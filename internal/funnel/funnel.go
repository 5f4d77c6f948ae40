// Package funnel drives the multi-step questionnaire: step sequencing,
// conditional question sets and completion gating. A Session is
// single-threaded by contract; transitions happen synchronously in
// response to user input events.
package funnel

import (
	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

// Step is one stage of the guided funnel.
type Step string

const (
	StepStart   Step = "start"
	StepLevel1  Step = "level1"
	StepLevel2  Step = "level2"
	StepLevel3  Step = "level3"
	StepResults Step = "results"
	StepForm    Step = "form"
	StepThanks  Step = "thanks"
)

// forward is the linear step order; every step advances to the next one
// once its guard passes.
var forward = map[Step]Step{
	StepStart:   StepLevel1,
	StepLevel1:  StepLevel2,
	StepLevel2:  StepLevel3,
	StepLevel3:  StepResults,
	StepResults: StepForm,
	StepForm:    StepThanks,
}

// backward only covers the quiz steps; there is no back navigation from
// results, form or thanks.
var backward = map[Step]Step{
	StepLevel1: StepStart,
	StepLevel2: StepLevel1,
	StepLevel3: StepLevel2,
}

// Level2Questions returns the ordered level-2 set for the current answers:
// the A follow-ups only when an existing remote-access solution was
// indicated, the B follow-ups only when critical processes run online,
// and always the incident question. Recomputed on every call so a changed
// level-1 answer immediately changes the set.
func Level2Questions(answers domain.AnswersState, lang string) []domain.Question {
	qs := catalog.Questions(lang)
	ids := make([]domain.QuestionID, 0, 5)
	if catalog.UsesExistingRemoteAccess(answers) {
		ids = append(ids, catalog.L2A1, catalog.L2A2)
	}
	if catalog.RunsCriticalProcessesOnline(answers) {
		ids = append(ids, catalog.L2B1, catalog.L2B2)
	}
	ids = append(ids, catalog.L2C1)

	out := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, qs[id])
	}
	return out
}

// Level3Questions returns the ordered level-3 set: the satisfaction
// question for existing VPN users, the alternate remote-access question
// otherwise, then the infrastructure and damage questions.
func Level3Questions(answers domain.AnswersState, lang string) []domain.Question {
	qs := catalog.Questions(lang)
	first := catalog.L3A1Alt
	if catalog.UsesExistingRemoteAccess(answers) {
		first = catalog.L3A1
	}
	return []domain.Question{qs[first], qs[catalog.L3B1], qs[catalog.L3C1]}
}

// Level1Questions returns the three gating questions.
func Level1Questions(lang string) []domain.Question {
	qs := catalog.Questions(lang)
	out := make([]domain.Question, 0, len(catalog.Level1IDs))
	for _, id := range catalog.Level1IDs {
		out = append(out, qs[id])
	}
	return out
}

// RequiredQuestions returns the dynamically computed question set the
// given step requires before forward navigation is allowed. Non-quiz
// steps require nothing.
func RequiredQuestions(step Step, answers domain.AnswersState, lang string) []domain.Question {
	switch step {
	case StepLevel1:
		return Level1Questions(lang)
	case StepLevel2:
		return Level2Questions(answers, lang)
	case StepLevel3:
		return Level3Questions(answers, lang)
	default:
		return nil
	}
}

// StepComplete reports whether every required question of the step is
// answered.
func StepComplete(step Step, answers domain.AnswersState, lang string) bool {
	for _, q := range RequiredQuestions(step, answers, lang) {
		if answers[q.ID] == "" {
			return false
		}
	}
	return true
}
