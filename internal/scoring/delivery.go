package scoring

import "math"

type deliveryAnalysis struct {
	Score         float64
	WPM           float64
	WPMFeedback   string
	FillerCount   int
	FillerDetails []string
}

// scoreDelivery starts from a perfect score and subtracts pace and filler
// penalties. The keyword-only path uses a harsher per-filler penalty with
// a lower cap.
func scoreDelivery(transcript string, durationSeconds float64, mode Mode) deliveryAnalysis {
	da := deliveryAnalysis{Score: 100.0}

	da.WPM = computeWPM(transcript, durationSeconds)
	feedback, wpmPenalty := wpmAssessment(da.WPM)
	da.WPMFeedback = feedback
	da.Score -= wpmPenalty

	da.FillerCount, da.FillerDetails = countFillers(transcript)

	perFiller, maxPenalty := fillerPenaltyPerWord, maxFillerPenalty
	if mode == ModeKeywordOnly {
		perFiller, maxPenalty = keywordFillerPerWord, keywordMaxFillerPenalty
	}
	da.Score -= math.Min(maxPenalty, float64(da.FillerCount)*perFiller)

	da.Score = clampScore(da.Score)
	return da
}
