// Package scoring implements the interview answer evaluation pipeline.
//
// An answer is scored across six categories (content, delivery,
// communication, voice, confidence, structure) which are combined into a
// weighted final score, then validated by quality gates that penalize and
// cap low quality answers.
package scoring

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/errors"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/domain/entities"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/acoustic"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/grammar"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/scoring/similarity"
)

// Mode selects the evaluation pipeline variant.
type Mode string

const (
	// ModeFull runs all six category scorers against the ideal answer.
	ModeFull Mode = "full"
	// ModeKeywordOnly scores content purely on keyword matching. Used when
	// no ideal answer exists or a fast evaluation is requested.
	ModeKeywordOnly Mode = "keyword_only"
)

// ValidMode reports whether m names a known pipeline variant.
func ValidMode(m Mode) bool {
	return m == ModeFull || m == ModeKeywordOnly
}

// Engine evaluates interview answers. It is safe for concurrent use.
type Engine struct {
	similarity similarity.Backend
	grammar    grammar.Backend
	analyzer   *acoustic.Analyzer
	logger     *zap.Logger
}

// NewEngine wires an evaluation engine from its backends. All arguments
// are required; pass the Jaccard and heuristic backends when no external
// services are configured.
func NewEngine(sim similarity.Backend, gram grammar.Backend, analyzer *acoustic.Analyzer, logger *zap.Logger) *Engine {
	return &Engine{
		similarity: sim,
		grammar:    gram,
		analyzer:   analyzer,
		logger:     logger,
	}
}

// EvaluateAnswer scores an answer against a question. An empty or
// near-empty transcript yields an all-zero result rather than an error.
func (e *Engine) EvaluateAnswer(ctx context.Context, question *entities.Question, in *entities.AnswerInput, mode Mode) (*entities.ScoreResult, error) {
	if question == nil || in == nil {
		return nil, errors.ErrInvalidArgument("question and answer input are required")
	}
	if !ValidMode(mode) {
		return nil, errors.ErrInvalidArgument("unknown evaluation mode: " + string(mode))
	}

	result := entities.NewScoreResult()
	if len(strings.TrimSpace(in.Transcript)) < 5 {
		return result, nil
	}

	e.logger.Debug("evaluating answer",
		zap.Int("question_id", question.ID),
		zap.String("mode", string(mode)),
		zap.Int("transcript_len", len(in.Transcript)),
		zap.Bool("has_audio", in.HasAudio()),
	)

	if mode == ModeKeywordOnly {
		e.evaluateKeywordOnly(ctx, question, in, result)
		return result, nil
	}

	// The acoustic branch is independent of the text branch, so run it
	// concurrently while the text scorers work.
	type voiceOutcome struct {
		scores acoustic.Scores
	}
	voiceCh := make(chan voiceOutcome, 1)
	go func() {
		voiceCh <- voiceOutcome{scores: e.scoreVoiceBranch(in)}
	}()

	// Content
	content := e.scoreContent(ctx, in.Transcript, question.IdealAnswer, question.Keywords)
	result.Content = clampScore(content.Score)
	result.Relevance = content.Relevance
	result.ContentFeedback = content.Feedback
	result.KeywordsFound = content.Keywords.Found
	result.KeywordsMissing = content.Keywords.Missing

	// Delivery
	delivery := scoreDelivery(in.Transcript, in.DurationSeconds, ModeFull)
	result.Delivery = delivery.Score
	result.WPM = delivery.WPM
	result.WPMFeedback = delivery.WPMFeedback
	result.FillerCount = delivery.FillerCount
	result.FillerDetails = delivery.FillerDetails

	// Communication
	comm := e.scoreCommunication(ctx, in.Transcript)
	result.Communication = clampScore(comm.Score)
	result.GrammarErrorCount = comm.GrammarErrors
	result.GrammarDetails = comm.GrammarDetails

	// Structure
	structure := scoreStructure(in.Transcript)
	result.Structure = clampScore(structure.Score)
	result.StructureFeedback = structure.Feedback

	// Voice
	voice := <-voiceCh
	result.Voice = clampScore(voice.scores.Overall)
	result.VoiceFeedback = voice.scores.Feedback

	// Confidence
	eyeContact, bodyStability, emotion := neutralSignal, neutralSignal, neutralSignal
	if in.Video != nil {
		eyeContact = in.Video.EyeContact
		bodyStability = in.Video.BodyStability
		emotion = in.Video.EmotionPositivity
	}
	confidence := scoreConfidence(voice.scores.VoiceConfidence, eyeContact, bodyStability, emotion)
	result.Confidence = confidence.Score
	result.ConfidenceFeedback = confidence.Feedback

	// Quality gates
	gates := applyQualityGates(in.Transcript, qualityInputs{
		FillerCount:    result.FillerCount,
		Relevance:      result.Relevance,
		StructureScore: result.Structure,
		HasIdealAnswer: question.IdealAnswer != "",
	})
	result.QualityIssues = gates.Issues
	result.QualityPenaltyTotal = gates.TotalPenalty
	result.ScoreCap = gates.ScoreCap

	// Final aggregation
	raw := result.Content*WeightContent +
		result.Delivery*WeightDelivery +
		result.Communication*WeightCommunication +
		result.Voice*WeightVoice +
		result.Confidence*WeightConfidence +
		result.Structure*WeightStructure
	result.RawFinal = clampScore(raw)

	final := raw - gates.TotalPenalty
	if gates.ScoreCap != nil && final > float64(*gates.ScoreCap) {
		final = float64(*gates.ScoreCap)
	}
	result.Final = clampScore(final)

	e.logger.Debug("answer evaluated",
		zap.Int("question_id", question.ID),
		zap.Float64("final", result.Final),
		zap.Float64("raw_final", result.RawFinal),
		zap.Int("quality_issues", len(result.QualityIssues)),
	)
	return result, nil
}

// scoreVoiceBranch runs acoustic analysis when audio is available and
// falls back to neutral scores otherwise.
func (e *Engine) scoreVoiceBranch(in *entities.AnswerInput) acoustic.Scores {
	if !in.HasAudio() {
		return acoustic.NeutralScores("No audio provided for voice analysis")
	}

	metrics, err := e.analyzer.Extract(in.Audio.Samples, in.Audio.SampleRate)
	if err != nil {
		e.logger.Warn("acoustic analysis failed", zap.Error(err))
		return acoustic.NeutralScores("Unable to analyze voice quality from audio.")
	}
	return acoustic.ScoreMetrics(metrics)
}

// evaluateKeywordOnly scores content by keyword match percentage and
// combines it with delivery and communication only, with the three
// category weights renormalized to sum to one.
func (e *Engine) evaluateKeywordOnly(ctx context.Context, question *entities.Question, in *entities.AnswerInput, result *entities.ScoreResult) {
	keywords := []string(question.Keywords)

	if len(keywords) > 0 {
		found, missing := matchKeywords(in.Transcript, keywords)
		result.KeywordsFound = found
		result.KeywordsMissing = missing

		matchPct := float64(len(found)) / float64(len(keywords)) * 100
		result.KeywordMatchPct = round1(matchPct)
		result.Content = clampScore(matchPct)
		result.Relevance = round3(float64(len(found)) / float64(len(keywords)))
	} else if question.IdealAnswer != "" {
		relevance := e.similarityScore(ctx, in.Transcript, question.IdealAnswer)
		result.Relevance = round3(relevance)
		result.Content = round1(relevance * 100)
	} else {
		result.Content = 50.0
	}

	delivery := scoreDelivery(in.Transcript, in.DurationSeconds, ModeKeywordOnly)
	result.Delivery = delivery.Score
	result.WPM = delivery.WPM
	result.WPMFeedback = delivery.WPMFeedback
	result.FillerCount = delivery.FillerCount
	result.FillerDetails = delivery.FillerDetails

	comm := e.scoreCommunication(ctx, in.Transcript)
	result.Communication = clampScore(comm.Score)
	result.GrammarErrorCount = comm.GrammarErrors
	result.GrammarDetails = comm.GrammarDetails

	// Renormalize content/delivery/communication weights to sum to 1.
	textWeightSum := WeightContent + WeightDelivery + WeightCommunication
	final := (result.Content*WeightContent +
		result.Delivery*WeightDelivery +
		result.Communication*WeightCommunication) / textWeightSum
	result.Final = clampScore(final)
	result.RawFinal = result.Final
}
