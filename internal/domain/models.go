package domain

// QuestionID identifies a question in the catalog ("L1-A", "L2-B1", ...).
type QuestionID string

// AnswerID identifies an option within its parent question.
type AnswerID string

// Option is one selectable answer with its score contribution.
// Options are immutable once defined; scores are small non-negative
// integers (0-2 in the shipped catalog).
type Option struct {
	ID    AnswerID `json:"id"`
	Text  string   `json:"text"`
	Score int      `json:"score"`
}

// Question models a single quiz question with its ordered options.
type Question struct {
	ID      QuestionID `json:"id"`
	Text    string     `json:"text"`
	Subtext string     `json:"subtext,omitempty"`
	Options []Option   `json:"options"`
}

// Catalog is the full question set for one language.
type Catalog struct {
	Language  string                  `json:"language"`
	Questions map[QuestionID]Question `json:"questions"`
}

// AnswersState maps each question to the selected option, empty if unset.
// It is mutated only through funnel.Session.SetAnswer.
type AnswersState map[QuestionID]AnswerID

// Clone returns an independent copy so callers cannot alias session state.
func (a AnswersState) Clone() AnswersState {
	out := make(AnswersState, len(a))
	for q, ans := range a {
		out[q] = ans
	}
	return out
}

// AreaScores holds the three per-area totals, each clamped to [0, MaxAreaScore].
type AreaScores struct {
	AreaA int `json:"areaA"`
	AreaB int `json:"areaB"`
	AreaC int `json:"areaC"`
}

// MaxAreaScore is the per-area cap.
const MaxAreaScore = 6

// MaturityLevel is the discrete risk/maturity tier.
type MaturityLevel string

const (
	LevelLow    MaturityLevel = "low"
	LevelMedium MaturityLevel = "medium"
	LevelHigh   MaturityLevel = "high"
)

// AreaLabel is the per-area classification with display metadata.
type AreaLabel struct {
	Level   MaturityLevel `json:"level"`
	Text    string        `json:"text"`
	Color   string        `json:"color"`
	BgColor string        `json:"bgColor"`
}

// OverallLabel is the overall classification. It is intentionally a
// distinct type from AreaLabel: the overall tier carries long-form
// headline/summary copy and is derived from the continuous average with
// different thresholds.
type OverallLabel struct {
	Level    MaturityLevel `json:"level"`
	Headline string        `json:"headline"`
	Summary  string        `json:"summary"`
}

// ScoreSummary is the score snapshot embedded in a lead at submission time.
type ScoreSummary struct {
	AreaA   int     `json:"areaA"`
	AreaB   int     `json:"areaB"`
	AreaC   int     `json:"areaC"`
	Average float64 `json:"average"`
	// Answers optionally carries the raw per-question selections.
	Answers AnswersState `json:"answers,omitempty"`
	// DiscountConsent is the secondary opt-in collected on the form.
	DiscountConsent bool `json:"discountConsent,omitempty"`
}

// Lead is the persisted contact-and-score record. Only Processed is ever
// mutated after creation; everything else is written once.
type Lead struct {
	ID               string       `json:"id"`
	CreatedAt        int64        `json:"createdAt"` // epoch millis
	Company          string       `json:"company"`
	Contact          string       `json:"contact"`
	EmployeesRange   string       `json:"employeesRange"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Role             string       `json:"role"`
	Notes            string       `json:"notes"`
	Consent          bool         `json:"consent"`
	Processed        bool         `json:"processed"`
	FirewallProvider string       `json:"firewallProvider"`
	VpnProvider      string       `json:"vpnProvider"`
	ScoreSummary     ScoreSummary `json:"scoreSummary"`
}

// LeadPage is one page of a prefix-scan listing. Next is nil once the
// store reports the scan complete; otherwise it is an opaque continuation
// token to be passed back verbatim.
type LeadPage struct {
	Items []Lead  `json:"items"`
	Next  *string `json:"next"`
}
