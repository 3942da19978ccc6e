package scoring

import (
	"strings"
	"testing"
)

func TestQualityGatesVeryShortAnswer(t *testing.T) {
	report := applyQualityGates("I led a team project successfully", qualityInputs{
		Relevance:      0.8,
		StructureScore: 60,
		HasIdealAnswer: true,
	})

	if report.ScoreCap == nil || *report.ScoreCap != capVeryShort {
		t.Fatalf("expected cap %d for under-10-word answer, got %v", capVeryShort, report.ScoreCap)
	}
	if report.TotalPenalty < 50 {
		t.Fatalf("expected at least the short-answer penalty, got %v", report.TotalPenalty)
	}
}

func TestQualityGatesNonsenseInput(t *testing.T) {
	report := applyQualityGates("asdf asdf asdf asdf asdf", qualityInputs{
		StructureScore: 60,
		HasIdealAnswer: true,
	})

	if report.ScoreCap == nil || *report.ScoreCap != capNonsense {
		t.Fatalf("expected nonsense cap %d, got %v", capNonsense, report.ScoreCap)
	}
}

func TestQualityGatesOffTopic(t *testing.T) {
	transcript := strings.TrimSpace(strings.Repeat("unrelated rambling about weekend plans and favorite restaurants downtown ", 4))
	report := applyQualityGates(transcript, qualityInputs{
		Relevance:      0.1,
		StructureScore: 60,
		HasIdealAnswer: true,
	})

	if report.ScoreCap == nil || *report.ScoreCap != capOffTopic {
		t.Fatalf("expected off-topic cap %d, got %v", capOffTopic, report.ScoreCap)
	}
}

func TestQualityGatesFillerRatio(t *testing.T) {
	transcript := "um the project um went um quite well um despite um early setbacks honestly speaking overall"
	fillerCount, _ := countFillers(transcript)
	report := applyQualityGates(transcript, qualityInputs{
		FillerCount:    fillerCount,
		Relevance:      0.8,
		StructureScore: 60,
		HasIdealAnswer: true,
	})

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "filler") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected filler ratio issue, got %v", report.Issues)
	}
}

func TestQualityGatesCleanAnswerPasses(t *testing.T) {
	transcript := "The situation was a failing deployment pipeline at my previous company. " +
		"My task was to stabilize weekly releases for the platform team. " +
		"I took action by rewriting the build scripts and adding automated checks. " +
		"The result was a forty percent faster release cycle and fewer incidents."
	fillerCount, _ := countFillers(transcript)
	report := applyQualityGates(transcript, qualityInputs{
		FillerCount:    fillerCount,
		Relevance:      0.8,
		StructureScore: 85,
		HasIdealAnswer: true,
	})

	if len(report.Issues) != 0 {
		t.Fatalf("expected no quality issues, got %v", report.Issues)
	}
	if report.TotalPenalty != 0 {
		t.Fatalf("expected no penalty, got %v", report.TotalPenalty)
	}
	if report.ScoreCap != nil {
		t.Fatalf("expected no cap, got %d", *report.ScoreCap)
	}
}

func TestDetectNonsense(t *testing.T) {
	res := detectNonsense("asdf asdf asdf asdf asdf")
	if !res.IsNonsense {
		t.Fatalf("keyboard mash should be nonsense: %+v", res)
	}

	res = detectNonsense("aaaaaaaaaa")
	if len(res.Patterns) == 0 {
		t.Fatalf("repeated characters should register a pattern: %+v", res)
	}

	res = detectNonsense("I resolved the production incident by rolling back the faulty release and adding regression coverage")
	if res.IsNonsense {
		t.Fatalf("real answer flagged as nonsense: %+v", res)
	}
}

func TestAnswerCoherence(t *testing.T) {
	good := "First I analyzed the problem carefully because the logs were incomplete. " +
		"Then I reproduced the failure locally. Finally I deployed the fix and verified the metrics recovered."
	if score := answerCoherence(good); score < minCoherenceScore {
		t.Fatalf("coherent answer scored %v, below threshold", score)
	}

	if score := answerCoherence("bad"); score != 0 {
		t.Fatalf("expected 0 for near-empty input, got %v", score)
	}
}
