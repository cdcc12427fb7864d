package problemgen

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 1 {
		t.Fatalf("expected 1 validator, got %d", len(cfg.Validators))
	}
	if cfg.Validators[0].Name() != "answer-set" {
		t.Errorf("validator 0: expected %q, got %q", "answer-set", cfg.Validators[0].Name())
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxDecoyAttempts != 1000 {
		t.Errorf("expected MaxDecoyAttempts 1000, got %d", cfg.MaxDecoyAttempts)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected Seed 0, got %d", cfg.Seed)
	}
}

func TestValidate_ReturnsValidationError(t *testing.T) {
	q := validQuestion()
	q.Answers = q.Answers[:2]

	err := Validate(q)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if Validate(validQuestion()) != nil {
		t.Error("expected valid question to pass")
	}
}
