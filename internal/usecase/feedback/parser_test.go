package feedback

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
)

func TestParseFeedbackPlainJSON(t *testing.T) {
	raw := `{"summary": "Good answer overall.", "strengths": ["clear opening"], "tips": ["quantify results"]}`

	fb, err := parseFeedback(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Summary != "Good answer overall." {
		t.Fatalf("unexpected summary %q", fb.Summary)
	}
	if len(fb.Strengths) != 1 || len(fb.Tips) != 1 {
		t.Fatalf("unexpected fields: %+v", fb)
	}
}

func TestParseFeedbackCodeFence(t *testing.T) {
	raw := "```json\n{\"summary\": \"Solid structure.\", \"star_analysis\": {\"situation\": \"Yes\", \"task\": \"Partial\", \"action\": \"Yes\", \"result\": \"No\"}}\n```"

	fb, err := parseFeedback(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.StarAnalysis == nil || fb.StarAnalysis.Result != "No" {
		t.Fatalf("unexpected star analysis: %+v", fb.StarAnalysis)
	}
}

func TestParseFeedbackSurroundingProse(t *testing.T) {
	raw := "Here is the feedback you asked for:\n{\"summary\": \"Needs work.\"}\nHope this helps!"

	fb, err := parseFeedback(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Summary != "Needs work." {
		t.Fatalf("unexpected summary %q", fb.Summary)
	}
}

func TestParseFeedbackRejectsGarbage(t *testing.T) {
	if _, err := parseFeedback("I could not produce feedback."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if _, err := parseFeedback(`{"strengths": []}`); err == nil {
		t.Fatal("expected error for missing summary")
	}
}

func TestStaticFeedbackWithoutPool(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop())

	result := &entities.ScoreResult{
		Final: 72.5, Content: 80, Delivery: 75, Structure: 60,
		FillerCount: 9, WPM: 145, KeywordMatchPct: 40,
	}
	question := &entities.Question{ID: 1, Text: "Tell me about yourself."}

	fb, err := svc.GenerateAnswerFeedback(nil, question, "my answer", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Generated {
		t.Fatal("static fallback must not claim to be generated")
	}
	if fb.Summary == "" || len(fb.Tips) == 0 {
		t.Fatalf("expected populated fallback, got %+v", fb)
	}
}
