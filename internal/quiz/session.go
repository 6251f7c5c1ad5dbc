package quiz

import "fmt"

// Session tracks one learner's selections for a bank. Every question starts
// with its first option selected. Scoring happens only on Submit.
type Session struct {
	bank       *Bank
	selections map[int]string
	result     *Result
}

// NewSession creates a session with default selections.
func NewSession(bank *Bank) *Session {
	s := &Session{bank: bank}
	s.Reset()
	return s
}

// Bank returns the bank this session is answering.
func (s *Session) Bank() *Bank {
	return s.bank
}

// Select records option as the answer to question i. Selecting after a
// submission returns the session to the idle state.
func (s *Session) Select(i int, option string) error {
	if i < 0 || i >= len(s.bank.Questions) {
		return fmt.Errorf("question %d out of range [0,%d)", i, len(s.bank.Questions))
	}
	if !s.bank.Questions[i].HasOption(option) {
		return fmt.Errorf("question %d has no option %q", i, option)
	}
	s.selections[i] = option
	s.result = nil
	return nil
}

// SelectIndex records the option at position opt for question i.
func (s *Session) SelectIndex(i, opt int) error {
	if i < 0 || i >= len(s.bank.Questions) {
		return fmt.Errorf("question %d out of range [0,%d)", i, len(s.bank.Questions))
	}
	opts := s.bank.Questions[i].Options
	if opt < 0 || opt >= len(opts) {
		return fmt.Errorf("question %d option %d out of range [0,%d)", i, opt, len(opts))
	}
	return s.Select(i, opts[opt])
}

// Selected returns the current selection for question i.
func (s *Session) Selected(i int) string {
	return s.selections[i]
}

// Selections returns a copy of the index -> option mapping.
func (s *Session) Selections() map[int]string {
	out := make(map[int]string, len(s.selections))
	for k, v := range s.selections {
		out[k] = v
	}
	return out
}

// Submit scores the current selections.
func (s *Session) Submit() *Result {
	s.result = Score(s.bank, s.selections)
	return s.result
}

// Result returns the last submission result, or nil while idle.
func (s *Session) Result() *Result {
	return s.result
}

// Submitted reports whether the current selections have been scored.
func (s *Session) Submitted() bool {
	return s.result != nil
}

// Reset discards any result and restores default selections.
func (s *Session) Reset() {
	s.selections = make(map[int]string, len(s.bank.Questions))
	for i, q := range s.bank.Questions {
		if len(q.Options) > 0 {
			s.selections[i] = q.Options[0]
		}
	}
	s.result = nil
}
