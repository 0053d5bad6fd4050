package metric

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPayload      = errors.New("no test result payload")
	ErrMissingSuccess = errors.New("test result has no success field")
)

// TestOutcome is the part of a test-result payload the metric consumes.
type TestOutcome struct {
	Success bool
}

// ParseTestOutcome decodes a serialized test result. The payload must be a
// JSON object whose success field is a boolean.
func ParseTestOutcome(payload string) (TestOutcome, error) {
	if strings.TrimSpace(payload) == "" {
		return TestOutcome{}, ErrNoPayload
	}
	// struct tags match keys case-insensitively; only "success" itself counts
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return TestOutcome{}, fmt.Errorf("parsing test result: %w", err)
	}
	raw, ok := fields["success"]
	if !ok {
		return TestOutcome{}, ErrMissingSuccess
	}
	var success bool
	if err := json.Unmarshal(raw, &success); err != nil {
		return TestOutcome{}, fmt.Errorf("parsing test result success: %w", err)
	}
	return TestOutcome{Success: success}, nil
}

// TestPassageScore is 1.0 when the payload reports success and 0.0 for a
// failed run or any payload that cannot be read.
func TestPassageScore(payload string) float64 {
	outcome, err := ParseTestOutcome(payload)
	if err != nil {
		return 0.0
	}
	if outcome.Success {
		return 1.0
	}
	return 0.0
}
