package quiz

// Score compares each selection against the stored answer using exact string
// equality. A question with no entry in selections is counted as incorrect.
func Score(bank *Bank, selections map[int]string) *Result {
	res := &Result{
		Verdicts: make([]Verdict, 0, len(bank.Questions)),
		Total:    len(bank.Questions),
	}
	for i, q := range bank.Questions {
		sel, ok := selections[i]
		correct := ok && sel == q.Answer
		if correct {
			res.Score++
		}
		res.Verdicts = append(res.Verdicts, Verdict{
			Index:    i,
			Question: q,
			Selected: sel,
			Correct:  correct,
		})
	}
	return res
}
