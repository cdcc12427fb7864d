package problemgen

import "fmt"

// AnswerSetValidator checks that a question's product is right and that its
// answers are ChoiceCount distinct positive values containing the product
// exactly once.
type AnswerSetValidator struct{}

func (v *AnswerSetValidator) Name() string { return "answer-set" }

func (v *AnswerSetValidator) Validate(q *Question) *ValidationError {
	if q.CorrectAnswer != q.Num1*q.Num2 {
		return v.fail("correct answer %d is not %d x %d", q.CorrectAnswer, q.Num1, q.Num2)
	}
	if len(q.Answers) != ChoiceCount {
		return v.fail("expected %d answers, got %d", ChoiceCount, len(q.Answers))
	}

	seen := make(map[int]bool, len(q.Answers))
	matches := 0
	for _, a := range q.Answers {
		if a <= 0 {
			return v.fail("answer %d is not positive", a)
		}
		if seen[a] {
			return v.fail("answer %d appears more than once", a)
		}
		seen[a] = true
		if a == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		return v.fail("correct answer %d appears %d times", q.CorrectAnswer, matches)
	}
	return nil
}

func (v *AnswerSetValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf(format, args...),
	}
}
