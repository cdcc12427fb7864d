package problemgen

import "fmt"

// Fact is one line of a times table.
type Fact struct {
	Num1    int
	Num2    int
	Product int
}

func (f Fact) String() string {
	return fmt.Sprintf("%d x %d = %d", f.Num1, f.Num2, f.Product)
}

// TimesTable returns the facts table x 1 through table x 12. Mixed mode
// has no single table to study, so it is rejected along with values
// outside 2..12.
func TimesTable(table Table) ([]Fact, error) {
	if table.IsMixed() || !table.Valid() {
		return nil, fmt.Errorf("times table %d: %w", table, ErrInvalidTable)
	}
	facts := make([]Fact, 0, MaxMultiplier)
	for _, m := range multipliers() {
		facts = append(facts, Fact{Num1: int(table), Num2: m, Product: int(table) * m})
	}
	return facts, nil
}
