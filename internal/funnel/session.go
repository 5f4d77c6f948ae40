package funnel

import (
	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

// State is the persisted snapshot of a funnel session.
type State struct {
	Step    Step                `json:"step"`
	Answers domain.AnswersState `json:"answers"`
}

// StateStore is the persistence port for session state (the original kept
// this in browser local storage). Load reports ok=false when nothing was
// saved yet.
type StateStore interface {
	Load() (State, bool, error)
	Save(State) error
	Clear() error
}

// Session is the injectable state container for one visitor's run through
// the funnel. It is not safe for concurrent use; the funnel is driven by
// a single event loop.
type Session struct {
	lang       string
	step       Step
	answers    domain.AnswersState
	store      StateStore
	submitting bool
}

// NewSession restores a session from the store, or starts a fresh one at
// the start step when nothing was persisted.
func NewSession(lang string, store StateStore) (*Session, error) {
	s := &Session{
		lang:    lang,
		step:    StepStart,
		answers: catalog.EmptyAnswers(),
		store:   store,
	}
	if store != nil {
		saved, ok, err := store.Load()
		if err != nil {
			return nil, err
		}
		if ok {
			s.step = saved.Step
			for id, ans := range saved.Answers {
				s.answers[id] = ans
			}
		}
	}
	return s, nil
}

// Step returns the current funnel step.
func (s *Session) Step() Step {
	return s.step
}

// Answers returns a copy of the answer state.
func (s *Session) Answers() domain.AnswersState {
	return s.answers.Clone()
}

// SetAnswer is the single mutation path for answers. Unknown question ids
// are rejected; a changed gating answer implicitly changes the dynamic
// question sets on the next read.
func (s *Session) SetAnswer(id domain.QuestionID, answer domain.AnswerID) error {
	if _, ok := s.answers[id]; !ok {
		return domain.ErrNoSuchTransition
	}
	s.answers[id] = answer
	return s.persist()
}

// Advance moves to the next step once the current step's guard passes.
func (s *Session) Advance() error {
	next, ok := forward[s.step]
	if !ok {
		return domain.ErrNoSuchTransition
	}
	if !StepComplete(s.step, s.answers, s.lang) {
		return domain.ErrStepIncomplete
	}
	s.step = next
	return s.persist()
}

// Back returns to the immediately preceding quiz step. Results, form and
// thanks have no back transition.
func (s *Session) Back() error {
	prev, ok := backward[s.step]
	if !ok {
		return domain.ErrNoSuchTransition
	}
	s.step = prev
	return s.persist()
}

// Reset clears all answers and returns to the start step, dropping the
// persisted state.
func (s *Session) Reset() error {
	s.step = StepStart
	s.answers = catalog.EmptyAnswers()
	s.submitting = false
	if s.store != nil {
		return s.store.Clear()
	}
	return nil
}

// CurrentQuestions returns the question set of the current step.
func (s *Session) CurrentQuestions() []domain.Question {
	return RequiredQuestions(s.step, s.answers, s.lang)
}

// BeginSubmission marks a lead submission as pending. It fails while one
// is already in flight so the form cannot be double-submitted.
func (s *Session) BeginSubmission() error {
	if s.step != StepForm {
		return domain.ErrNoSuchTransition
	}
	if s.submitting {
		return domain.ErrSubmissionInFlight
	}
	s.submitting = true
	return nil
}

// FinishSubmission resolves a pending submission. On success the session
// advances to the thanks step and the answers are cleared; on failure the
// form becomes submittable again.
func (s *Session) FinishSubmission(succeeded bool) error {
	s.submitting = false
	if !succeeded {
		return nil
	}
	s.step = StepThanks
	s.answers = catalog.EmptyAnswers()
	return s.persist()
}

func (s *Session) persist() error {
	if s.store == nil {
		return nil
	}
	return s.store.Save(State{Step: s.step, Answers: s.answers.Clone()})
}

// MemoryStateStore keeps session state in process. It satisfies the
// persistence port for tests and embedded use.
type MemoryStateStore struct {
	state State
	saved bool
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{}
}

func (m *MemoryStateStore) Load() (State, bool, error) {
	return m.state, m.saved, nil
}

func (m *MemoryStateStore) Save(state State) error {
	m.state = state
	m.saved = true
	return nil
}

func (m *MemoryStateStore) Clear() error {
	m.state = State{}
	m.saved = false
	return nil
}
