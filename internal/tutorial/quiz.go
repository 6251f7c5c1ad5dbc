package tutorial

import "github.com/mentimath/mentimath/internal/quiz"

// QuizPass runs one render pass of a quiz page. Scoring only happens when
// submitted is true; otherwise the page is idle and the result is nil.
func QuizPass(bank *quiz.Bank, selections map[int]string, submitted bool) *quiz.Result {
	if !submitted {
		return nil
	}
	return quiz.Score(bank, selections)
}

// Congratulate returns the celebration line for a perfect score.
func Congratulate(r *quiz.Result) string {
	if r == nil || !r.Perfect() {
		return ""
	}
	return "Perfect score! Every answer is correct."
}
