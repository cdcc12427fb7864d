package problemgen

// Config controls the behavior of the Generator.
type Config struct {
	// Seed fixes the random source when non-zero, making queues and
	// answer orders reproducible. Zero seeds from the clock.
	Seed uint64

	// MaxDecoyAttempts bounds the random draws spent looking for wrong
	// answers before falling back to deterministic values.
	MaxDecoyAttempts int

	// Validators run on every generated question. They execute in order;
	// the first failure stops the pipeline.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxDecoyAttempts: 1000,
		Validators: []Validator{
			&AnswerSetValidator{},
		},
	}
}
