package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// LanguageTool checks grammar against a LanguageTool HTTP server
// (self-hosted or api.languagetool.org). Only grammar and typo findings
// are reported; stylistic suggestions are dropped to avoid punishing
// conversational speech.
type LanguageTool struct {
	baseURL  string
	language string
	client   *http.Client
}

func NewLanguageTool(baseURL string) *LanguageTool {
	return &LanguageTool{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: "en-US",
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type ltMatch struct {
	Message string `json:"message"`
	Rule    struct {
		ID        string `json:"id"`
		IssueType string `json:"issueType"`
	} `json:"rule"`
}

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

func (lt *LanguageTool) Check(ctx context.Context, text string) ([]Issue, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		lt.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create languagetool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("languagetool request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languagetool returned status %d", resp.StatusCode)
	}

	var result ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode languagetool response: %w", err)
	}

	var issues []Issue
	for _, m := range result.Matches {
		switch m.Rule.IssueType {
		case "grammar", "typos":
			issues = append(issues, Issue{Message: m.Message, Rule: m.Rule.ID})
		}
	}
	return issues, nil
}
