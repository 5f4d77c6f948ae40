// Package catalog holds the static question set of the security check.
// The content is compiled in: building a catalog is pure, deterministic and
// cannot fail, which keeps the scoring engine and funnel free of I/O.
package catalog

import (
	"context"

	"security-funnel-service/internal/domain"
)

// Supported languages. Unknown languages fall back to German, the
// language the funnel originally shipped in.
const (
	LangDE = "de"
	LangEN = "en"

	DefaultLanguage = LangDE
)

// Question ids. Level 1 gates which level 2/3 follow-ups are relevant.
const (
	L1A domain.QuestionID = "L1-A"
	L1B domain.QuestionID = "L1-B"
	L1C domain.QuestionID = "L1-C"

	L2A1 domain.QuestionID = "L2-A1"
	L2A2 domain.QuestionID = "L2-A2"
	L2B1 domain.QuestionID = "L2-B1"
	L2B2 domain.QuestionID = "L2-B2"
	L2C1 domain.QuestionID = "L2-C1"

	L3A1 domain.QuestionID = "L3-A1"
	// L3A1Alt replaces L3A1 when no remote-access solution is in use.
	// The two are mutually exclusive alternates.
	L3A1Alt domain.QuestionID = "L3-A1-ALT"
	L3B1    domain.QuestionID = "L3-B1"
	L3C1    domain.QuestionID = "L3-C1"
)

// Option ids that drive conditional branching.
const (
	optVPNMost AnswerBranch = "L1-A-1"
	optVPNFew  AnswerBranch = "L1-A-2"

	optCriticalOnline AnswerBranch = "L1-B-1"
	optPartialOnline  AnswerBranch = "L1-B-2"
)

// AnswerBranch aliases AnswerID for the gating options above.
type AnswerBranch = domain.AnswerID

// AllQuestionIDs is the canonical ordering of the twelve questions.
var AllQuestionIDs = []domain.QuestionID{
	L1A, L1B, L1C,
	L2A1, L2A2, L2B1, L2B2, L2C1,
	L3A1, L3A1Alt, L3B1, L3C1,
}

// Level1IDs are the three gating questions shown on the first quiz step.
var Level1IDs = []domain.QuestionID{L1A, L1B, L1C}

// Questions returns the full catalog for the given language. An unknown
// language falls back to the default rather than failing.
func Questions(lang string) map[domain.QuestionID]domain.Question {
	switch lang {
	case LangEN:
		return questionsEN
	case LangDE:
		return questionsDE
	default:
		return questionsDE
	}
}

// Get resolves a single question, falling back like Questions.
func Get(lang string, id domain.QuestionID) (domain.Question, bool) {
	q, ok := Questions(lang)[id]
	return q, ok
}

// OptionScore returns the score of the selected option, or 0 when the
// question is unanswered or the answer id matches no option. An unknown
// answer is a defensive default, not an error.
func OptionScore(lang string, id domain.QuestionID, answer domain.AnswerID) int {
	if answer == "" {
		return 0
	}
	q, ok := Get(lang, id)
	if !ok {
		return 0
	}
	for _, opt := range q.Options {
		if opt.ID == answer {
			return opt.Score
		}
	}
	return 0
}

// UsesExistingRemoteAccess reports whether the L1-A answer indicates a
// VPN/remote-access solution is already in use. It selects L3-A1 over
// L3-A1-ALT and gates the L2-A follow-ups.
func UsesExistingRemoteAccess(answers domain.AnswersState) bool {
	a := answers[L1A]
	return a == optVPNMost || a == optVPNFew
}

// RunsCriticalProcessesOnline reports whether the L1-B answer indicates
// business-critical processes run (at least partially) online. It gates
// the L2-B follow-ups.
func RunsCriticalProcessesOnline(answers domain.AnswersState) bool {
	a := answers[L1B]
	return a == optCriticalOnline || a == optPartialOnline
}

// EmptyAnswers returns an all-unset AnswersState covering every question.
func EmptyAnswers() domain.AnswersState {
	out := make(domain.AnswersState, len(AllQuestionIDs))
	for _, id := range AllQuestionIDs {
		out[id] = ""
	}
	return out
}

// AreaDetail is the display metadata of one scored area.
type AreaDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AreaDetails returns the three area titles/descriptions for a language.
func AreaDetails(lang string) map[string]AreaDetail {
	if lang == LangEN {
		return areaDetailsEN
	}
	return areaDetailsDE
}

// ResultTexts returns the short per-tier result copy for a language.
func ResultTexts(lang string) map[domain.MaturityLevel]string {
	if lang == LangEN {
		return resultTextsEN
	}
	return resultTextsDE
}

// Loader fetches a catalog for a language. It exists so the serving layer
// can sit behind a cache; the static implementation below is the only
// production source.
type Loader interface {
	LoadCatalog(ctx context.Context, lang string) (domain.Catalog, error)
}

// StaticLoader adapts the compiled-in tables to the Loader port.
type StaticLoader struct{}

func NewStaticLoader() *StaticLoader {
	return &StaticLoader{}
}

func (l *StaticLoader) LoadCatalog(_ context.Context, lang string) (domain.Catalog, error) {
	normalized := lang
	if normalized != LangDE && normalized != LangEN {
		normalized = DefaultLanguage
	}
	return domain.Catalog{
		Language:  normalized,
		Questions: Questions(normalized),
	}, nil
}
