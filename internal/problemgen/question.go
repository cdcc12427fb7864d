package problemgen

import "fmt"

// decoyCount is the number of wrong answers offered alongside the correct one.
const decoyCount = ChoiceCount - 1

// decoyPolicy selects how a single wrong answer is drawn.
type decoyPolicy int

const (
	policyNearMiss        decoyPolicy = iota // correct ± 1..5
	policyWrongMultiplier                    // num1 x (num2 ± 1..3)
	policyPlausible                          // any 2..12 x 1..12 product
	policyCount
)

// NewQuestion builds the question for num1 x num2 with three plausible
// wrong answers, shuffled together with the correct one.
func (g *RandomGenerator) NewQuestion(num1, num2 int) (*Question, error) {
	if num1 < 1 || num2 < 1 {
		return nil, fmt.Errorf("question %d x %d: %w", num1, num2, ErrInvalidFactor)
	}

	correct := num1 * num2
	answers := make([]int, 0, ChoiceCount)
	answers = append(answers, correct)
	answers = append(answers, g.decoys(num1, num2, correct)...)
	shuffle(g.rng, answers)

	q := &Question{
		Num1:          num1,
		Num2:          num2,
		CorrectAnswer: correct,
		Answers:       answers,
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// decoys draws decoyCount distinct positive values that differ from correct.
// Once MaxDecoyAttempts draws are spent the rest come from fallbackDecoys.
func (g *RandomGenerator) decoys(num1, num2, correct int) []int {
	seen := map[int]bool{correct: true}
	out := make([]int, 0, decoyCount)

	for attempt := 0; len(out) < decoyCount && attempt < g.cfg.MaxDecoyAttempts; attempt++ {
		d := g.drawDecoy(num1, num2, correct)
		if d <= 0 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}

	return fallbackDecoys(out, correct, seen)
}

func (g *RandomGenerator) drawDecoy(num1, num2, correct int) int {
	switch decoyPolicy(g.rng.IntN(int(policyCount))) {
	case policyNearMiss:
		return correct + g.signedOffset(5)
	case policyWrongMultiplier:
		return num1 * (num2 + g.signedOffset(3))
	default:
		return (g.rng.IntN(MaxTable-MinTable+1) + MinTable) *
			(g.rng.IntN(MaxMultiplier-MinMultiplier+1) + MinMultiplier)
	}
}

// signedOffset returns a value in [-limit,-1] or [1,limit], either sign equally likely.
func (g *RandomGenerator) signedOffset(limit int) int {
	offset := g.rng.IntN(limit) + 1
	if g.rng.IntN(2) == 0 {
		return -offset
	}
	return offset
}

// fallbackDecoys fills out to decoyCount with the smallest free values
// above correct. The result is deterministic for a given input.
func fallbackDecoys(out []int, correct int, seen map[int]bool) []int {
	for c := correct + 1; len(out) < decoyCount; c++ {
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
