package result

import (
	"bytes"
	"encoding/json"

	"github.com/signalnine/codescore/internal/metric"
)

// Candidate is one generated artifact with the outcome of its tests.
type Candidate struct {
	ID         string `json:"id,omitempty"`
	Code       string `json:"code"`
	TestResult string `json:"test_result,omitempty"`
}

func (c Candidate) CodeText() string    { return c.Code }
func (c Candidate) TestPayload() string { return c.TestResult }

// UnmarshalJSON accepts test_result either as a serialized string or as an
// inline object, and the code_patch / test_results spellings.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string          `json:"id"`
		Code        string          `json:"code"`
		CodePatch   string          `json:"code_patch"`
		TestResult  json.RawMessage `json:"test_result"`
		TestResults json.RawMessage `json:"test_results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = raw.ID
	c.Code = raw.Code
	if c.Code == "" {
		c.Code = raw.CodePatch
	}
	payload := raw.TestResult
	if len(payload) == 0 {
		payload = raw.TestResults
	}
	c.TestResult = payloadText(payload)
	return nil
}

// payloadText unwraps a JSON string; any other JSON value is kept verbatim
// for the metric to judge.
func payloadText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// ScoreRecord is what gets stored for each scored candidate.
type ScoreRecord struct {
	Candidate string       `json:"candidate"`
	Source    string       `json:"source,omitempty"`
	Score     metric.Score `json:"result"`
}
