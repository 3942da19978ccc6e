package scoring

import (
	"reflect"
	"testing"
)

func TestCountFillers(t *testing.T) {
	count, details := countFillers("Um, I think, like, the solution is basically um simple")
	if count != 4 {
		t.Fatalf("expected 4 fillers, got %d (%v)", count, details)
	}

	count, _ = countFillers("The design was finished ahead of schedule")
	if count != 0 {
		t.Fatalf("expected no fillers in clean text, got %d", count)
	}
}

func TestCountFillersWordBoundaries(t *testing.T) {
	// "design" must not match "sign", "resolve" must not match "so".
	count, details := countFillers("We designed a resolver")
	if count != 0 {
		t.Fatalf("expected no fillers, got %d (%v)", count, details)
	}
}

func TestComputeWPM(t *testing.T) {
	wpm := computeWPM("one two three four five", 60)
	if wpm != 5.0 {
		t.Fatalf("expected 5.0 wpm, got %v", wpm)
	}

	if wpm := computeWPM("", 30); wpm != 0 {
		t.Fatalf("expected 0 wpm for empty transcript, got %v", wpm)
	}
	if wpm := computeWPM("words here", 0); wpm != 0 {
		t.Fatalf("expected 0 wpm for zero duration, got %v", wpm)
	}
}

func TestWPMAssessment(t *testing.T) {
	cases := []struct {
		wpm     float64
		penalty float64
	}{
		{145, 0},  // optimal
		{130, 0},  // optimal boundary
		{160, 0},  // optimal boundary
		{120, 5},  // slightly slow
		{170, 5},  // slightly fast
		{80, 10},  // too slow: (100-80)*0.5
		{250, 21}, // too fast: (250-180)*0.3
		{10, 30},  // capped
	}
	for _, tc := range cases {
		_, penalty := wpmAssessment(tc.wpm)
		if penalty != tc.penalty {
			t.Errorf("wpm %v: expected penalty %v, got %v", tc.wpm, tc.penalty, penalty)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("The database database database stores customer records efficiently", 3)
	if len(keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %v", keywords)
	}
	if keywords[0] != "database" {
		t.Fatalf("expected most frequent keyword first, got %v", keywords)
	}
	for _, k := range keywords {
		if keywordStopWords[k] {
			t.Fatalf("stop word %q leaked into keywords", k)
		}
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "kubernetes orchestrates containers across clusters while docker builds images"
	first := extractKeywords(text, 5)
	for i := 0; i < 10; i++ {
		if got := extractKeywords(text, 5); !reflect.DeepEqual(got, first) {
			t.Fatalf("keyword extraction not deterministic: %v vs %v", first, got)
		}
	}
}

func TestMatchKeywords(t *testing.T) {
	found, missing := matchKeywords(
		"I deployed the service with kubernetes and monitored it closely",
		[]string{"kubernetes", "deployment", "terraform"},
	)
	// "kubernetes" is exact, "deployment" matches "deployed" by stem,
	// "terraform" is absent.
	if len(found) != 2 {
		t.Fatalf("expected 2 found, got %v", found)
	}
	if len(missing) != 1 || missing[0] != "terraform" {
		t.Fatalf("expected terraform missing, got %v", missing)
	}
}

func TestMatchKeywordsEmptyTranscript(t *testing.T) {
	found, missing := matchKeywords("", []string{"alpha", "beta"})
	if len(found) != 0 || len(missing) != 2 {
		t.Fatalf("expected all keywords missing, got found=%v missing=%v", found, missing)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First point. Second point! Third point? ")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %v", sentences)
	}
}
