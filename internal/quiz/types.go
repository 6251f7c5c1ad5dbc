package quiz

import "fmt"

// Question is a single multiple-choice item.
type Question struct {
	// Prompt is the question text shown above the options.
	Prompt string `yaml:"prompt" json:"prompt"`

	// Options are presented in this exact order.
	Options []string `yaml:"options" json:"options"`

	// Answer is the correct option text. It must equal one of Options.
	Answer string `yaml:"answer" json:"answer"`
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// AnswerIndex returns the index of the correct option, or -1.
func (q Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}

// Bank is an ordered, immutable set of questions for one topic.
type Bank struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Intro     string     `yaml:"intro,omitempty" json:"intro,omitempty"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// Verdict is the outcome of scoring a single question.
type Verdict struct {
	Index    int
	Question Question
	Selected string
	Correct  bool
}

// Result holds the per-question verdicts and final score of a submission.
type Result struct {
	Verdicts []Verdict
	Score    int
	Total    int
}

// Perfect reports whether every question was answered correctly.
func (r *Result) Perfect() bool {
	return r.Total > 0 && r.Score == r.Total
}

// Accuracy returns Score/Total, or 0 for an empty result.
func (r *Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// Lines returns one feedback line per question in order, followed by the
// score line, e.g. "Q2: Incorrect. Correct answer: ..." and "Your Score: 5/7".
func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Verdicts)+1)
	for _, v := range r.Verdicts {
		if v.Correct {
			lines = append(lines, fmt.Sprintf("Q%d: Correct!", v.Index+1))
		} else {
			lines = append(lines, fmt.Sprintf("Q%d: Incorrect. Correct answer: %s", v.Index+1, v.Question.Answer))
		}
	}
	return append(lines, fmt.Sprintf("Your Score: %d/%d", r.Score, r.Total))
}
