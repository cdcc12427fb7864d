package problemgen

import "fmt"

// Table selects which multiplication table a round drills.
// MixedTable means every table from MinTable to MaxTable.
type Table int

const (
	// MixedTable draws pairs from the full 2..12 x 1..12 cross product.
	MixedTable Table = 0

	MinTable = 2
	MaxTable = 12

	// MinMultiplier and MaxMultiplier bound the second factor of every pair.
	MinMultiplier = 1
	MaxMultiplier = 12

	// MixedPoolSize is the number of distinct pairs available in mixed mode.
	MixedPoolSize = (MaxTable - MinTable + 1) * (MaxMultiplier - MinMultiplier + 1)

	// ChoiceCount is the number of answers offered per question.
	ChoiceCount = 4
)

// IsMixed reports whether t selects mixed mode.
func (t Table) IsMixed() bool {
	return t == MixedTable
}

// Valid reports whether t is MixedTable or within MinTable..MaxTable.
func (t Table) Valid() bool {
	return t.IsMixed() || (int(t) >= MinTable && int(t) <= MaxTable)
}

func (t Table) String() string {
	if t.IsMixed() {
		return "mixed"
	}
	return fmt.Sprintf("%d", int(t))
}

// Tables returns every selectable table in ascending order.
func Tables() []Table {
	out := make([]Table, 0, MaxTable-MinTable+1)
	for n := MinTable; n <= MaxTable; n++ {
		out = append(out, Table(n))
	}
	return out
}

// Pair is one queued multiplication, Num1 x Num2.
type Pair struct {
	Num1 int
	Num2 int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d x %d", p.Num1, p.Num2)
}

// Question is a multiplication question ready for display.
// It is not modified after NewQuestion returns it.
type Question struct {
	Num1 int
	Num2 int

	// CorrectAnswer is always Num1 * Num2.
	CorrectAnswer int

	// Answers holds ChoiceCount distinct positive values in display order,
	// exactly one of which equals CorrectAnswer.
	Answers []int
}

// Text returns the question prompt, e.g. "7 x 8 = ?".
func (q *Question) Text() string {
	return fmt.Sprintf("%d x %d = ?", q.Num1, q.Num2)
}

// CorrectIndex returns the position of CorrectAnswer within Answers, or -1.
func (q *Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a == q.CorrectAnswer {
			return i
		}
	}
	return -1
}
