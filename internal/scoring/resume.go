package scoring

import "context"

// ResumeScore is the outcome of comparing a resume against a job
// description.
type ResumeScore struct {
	OverallScore float64 `json:"overall_score"`
	Similarity   float64 `json:"similarity"`
	Assessment   string  `json:"assessment"`
}

// ScoreResume rates how well a resume matches a job description. Scaling
// is slightly generous since even strong resumes rarely exceed 0.7
// similarity with a job posting.
func (e *Engine) ScoreResume(ctx context.Context, resumeText, jobDescription string) ResumeScore {
	if resumeText == "" || jobDescription == "" {
		return ResumeScore{Assessment: "Unable to analyze - missing text"}
	}

	sim := e.similarityScore(ctx, resumeText, jobDescription)
	score := clampScore(sim * 120)

	var assessment string
	switch {
	case score >= 80:
		assessment = "Excellent match - resume aligns very well with the job description"
	case score >= 65:
		assessment = "Good match - resume covers most key requirements"
	case score >= 50:
		assessment = "Moderate match - consider highlighting more relevant experience"
	default:
		assessment = "Limited match - consider tailoring resume to this role"
	}

	return ResumeScore{
		OverallScore: score,
		Similarity:   round3(sim),
		Assessment:   assessment,
	}
}
