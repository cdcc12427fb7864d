package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer reports whether value is the question's correct answer.
func CheckAnswer(value int, question *Question) bool {
	return value == question.CorrectAnswer
}

// ParseChoice resolves a 1-based choice number typed by the learner into
// the answer value shown at that position. Whitespace is trimmed.
func ParseChoice(input string, question *Question) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty choice")
	}
	idx, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid choice %q: %w", input, err)
	}
	if idx < 1 || idx > len(question.Answers) {
		return 0, fmt.Errorf("choice %d out of range 1-%d", idx, len(question.Answers))
	}
	return question.Answers[idx-1], nil
}
