package feedback

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseFeedback extracts the JSON feedback object from a model response,
// tolerating markdown code fences and surrounding prose.
func parseFeedback(raw string) (*Feedback, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var fb Feedback
	if err := json.Unmarshal([]byte(payload), &fb); err != nil {
		return nil, fmt.Errorf("failed to decode feedback JSON: %w", err)
	}
	if fb.Summary == "" {
		return nil, fmt.Errorf("feedback missing summary")
	}
	return &fb, nil
}

// extractJSON returns the outermost {...} object within s.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
