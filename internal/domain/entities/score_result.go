package entities

// ScoreResult is the flat output contract of the answer-evaluation
// pipeline. Field names are the compatibility surface toward the API
// and feedback layers, so the JSON keys below must stay stable.
//
// Invariant: Final = clamp(min(RawFinal-QualityPenaltyTotal, cap), 0, 100)
// where cap is *ScoreCap when present, 100 otherwise.
type ScoreResult struct {
	// The six category scores, each clamped to [0,100].
	Content       float64 `json:"content"`
	Delivery      float64 `json:"delivery"`
	Communication float64 `json:"communication"`
	Voice         float64 `json:"voice"`
	Confidence    float64 `json:"confidence"`
	Structure     float64 `json:"structure"`

	// Final weighted score after quality penalties and cap, [0,100].
	Final float64 `json:"final"`
	// RawFinal is the weighted sum before quality penalties, kept for
	// diagnostics.
	RawFinal float64 `json:"raw_final"`

	// Raw metrics.
	WPM               float64 `json:"wpm"`
	FillerCount       int     `json:"filler_count"`
	GrammarErrorCount int     `json:"grammar_error_count"`
	Relevance         float64 `json:"relevance"`

	// Quality gate output.
	QualityIssues       []string `json:"quality_issues"`
	QualityPenaltyTotal float64  `json:"quality_penalty_total"`
	ScoreCap            *int     `json:"score_cap,omitempty"`

	// Optional per-factor detail, populated by the full pipeline.
	FillerDetails      []string `json:"filler_details,omitempty"`
	GrammarDetails     []string `json:"grammar_details,omitempty"`
	WPMFeedback        string   `json:"wpm_feedback,omitempty"`
	VoiceFeedback      []string `json:"voice_feedback,omitempty"`
	StructureFeedback  []string `json:"structure_feedback,omitempty"`
	ConfidenceFeedback []string `json:"confidence_feedback,omitempty"`
	ContentFeedback    []string `json:"content_feedback,omitempty"`

	// Keyword-only mode detail.
	KeywordsFound   []string `json:"keywords_found,omitempty"`
	KeywordsMissing []string `json:"keywords_missing,omitempty"`
	KeywordMatchPct float64  `json:"keyword_match_pct,omitempty"`
}

// NewScoreResult returns an all-zero result with quality issue slice
// initialized, so an empty transcript still serializes with stable keys.
func NewScoreResult() *ScoreResult {
	return &ScoreResult{QualityIssues: []string{}}
}

// EffectiveCap returns the score cap, or 100 when no cap applies.
func (r *ScoreResult) EffectiveCap() float64 {
	if r.ScoreCap == nil {
		return 100
	}
	return float64(*r.ScoreCap)
}
