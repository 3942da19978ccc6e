package scoring

import "regexp"

// Filler words and phrases that indicate hesitation. Phrases are matched
// with word boundaries so "design" never counts as "sign".
var fillerWords = []string{
	"um", "uh", "umm", "uhh", "er", "err",
	"like", "you know", "basically", "actually",
	"literally", "honestly", "right", "okay",
	"so", "well", "i mean", "kind of", "sort of",
	"you see", "i guess", "anyway",
}

// Transition words and phrases used as a proxy for logical flow.
var transitionWords = []string{
	// Sequence
	"first", "second", "third", "finally", "next", "then", "lastly",
	// Addition
	"additionally", "moreover", "furthermore", "also", "besides", "in addition",
	// Contrast
	"however", "although", "nevertheless", "on the other hand", "conversely", "but",
	// Cause and effect
	"therefore", "consequently", "as a result", "because", "thus", "hence",
	// Examples
	"for example", "for instance", "specifically", "such as", "namely",
	// Conclusion
	"in conclusion", "to summarize", "overall", "in summary", "ultimately",
}

// Action verbs and business vocabulary that signal experienced communication.
var professionalTerms = []string{
	"implemented", "developed", "managed", "coordinated", "analyzed",
	"designed", "optimized", "established", "facilitated", "achieved",
	"collaborated", "executed", "strategized", "delegated", "evaluated",
	"led", "created", "resolved", "improved", "streamlined",
	"initiated", "delivered", "mentored", "negotiated", "presented",
	"stakeholder", "deliverable", "milestone", "objective", "deadline",
	"benchmark", "metrics", "strategy", "framework", "methodology",
	"scalable", "efficient", "innovative", "proactive", "comprehensive",
}

// STAR component indicators.
var (
	starSituationKeywords = []string{
		"situation", "context", "background", "when", "there was", "faced with",
		"challenge was", "problem was", "at the time", "in my role",
	}
	starTaskKeywords = []string{
		"task", "responsible for", "my role", "needed to", "had to",
		"goal was", "objective was", "assigned to", "in charge of",
	}
	starActionKeywords = []string{
		"action", "i did", "i took", "implemented", "developed", "created",
		"initiated", "led", "organized", "coordinated", "decided to",
	}
	starResultKeywords = []string{
		"result", "outcome", "achieved", "increased", "decreased", "improved",
		"saved", "reduced", "generated", "led to", "resulted in", "percent",
	}
)

var conclusionIndicators = []string{
	"in conclusion", "ultimately", "as a result", "this led to",
	"the outcome was", "i learned", "this taught me", "because of this",
	"this experience", "going forward", "the key takeaway",
}

// Last-sentence stems that indicate a wrap-up.
var conclusionStems = []string{"result", "learn", "outcome", "achiev", "succe"}

// Connectors used by the coherence heuristic.
var coherenceConnectors = []string{
	"because", "therefore", "however", "although", "while", "since",
	"so", "but", "and", "then", "first", "second", "finally",
}

// Stop words excluded from keyword extraction.
var keywordStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "that": true, "which": true, "who": true,
	"whom": true, "this": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true, "they": true,
	"what": true, "when": true, "where": true, "why": true, "how": true,
	"all": true, "each": true, "every": true, "both": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "can": true,
	"just": true,
}

// Everyday English words used by the gibberish detector to estimate how much
// of a transcript is recognizable language.
var commonEnglishWords = map[string]bool{
	"i": true, "the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "is": true, "are": true, "was": true, "were": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"can": true, "may": true, "my": true, "your": true, "our": true,
	"their": true, "this": true, "that": true, "it": true, "he": true,
	"she": true, "we": true, "they": true, "you": true, "me": true,
	"him": true, "her": true, "us": true, "them": true, "what": true,
	"when": true, "where": true, "why": true, "how": true, "which": true,
	"who": true, "whom": true, "to": true, "for": true, "with": true,
	"by": true, "from": true, "at": true, "in": true, "on": true, "of": true,
	"as": true, "so": true, "if": true, "then": true, "than": true,
	"because": true, "while": true, "although": true, "though": true,
	"not": true, "no": true, "yes": true, "just": true, "only": true,
	"also": true, "very": true, "too": true, "much": true, "more": true,
	"most": true, "some": true, "any": true, "all": true, "each": true,
	"every": true, "both": true, "few": true, "many": true, "other": true,
	"another": true, "such": true, "like": true, "even": true, "still": true,
	"already": true, "been": true, "being": true, "done": true, "doing": true,
	"go": true, "going": true, "get": true, "getting": true, "make": true,
	"making": true, "take": true, "taking": true, "know": true, "think": true,
	"see": true, "want": true, "need": true, "use": true, "find": true,
	"give": true, "tell": true, "work": true, "call": true, "try": true,
	"ask": true, "come": true, "put": true, "mean": true, "keep": true,
	"let": true, "begin": true, "seem": true, "help": true, "show": true,
	"hear": true, "play": true, "run": true, "move": true, "live": true,
	"believe": true, "hold": true, "bring": true, "about": true, "into": true,
	"over": true, "after": true, "before": true, "between": true,
	"under": true, "again": true, "there": true, "here": true, "now": true,
	"always": true, "never": true, "often": true, "sometimes": true,
}

var (
	wordPattern     = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)

	// Test-input and keyboard-mash patterns. Runs of a single repeated
	// character are checked procedurally since RE2 has no backreferences.
	nonsenseWordPattern  = regexp.MustCompile(`\b(asdf|qwerty|lorem|ipsum|blah|test|testing|hello|hi|hey)\b`)
	shortWordRunPattern  = regexp.MustCompile(`\b([a-zA-Z0-9_]{1,2}\s){5,}`)
	repeatedCharMinRun   = 5
)
