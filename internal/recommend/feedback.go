package recommend

import (
	"fmt"

	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// Rating buckets a session's overall score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingNeedsWork Rating = "needsWork"
	RatingBeginner  Rating = "beginner"
)

// DisplayName returns a human-readable label for the rating.
func (r Rating) DisplayName() string {
	switch r {
	case RatingExcellent:
		return "Excellent!"
	case RatingGood:
		return "Good work!"
	case RatingNeedsWork:
		return "Keep training!"
	case RatingBeginner:
		return "Good start!"
	default:
		return string(r)
	}
}

// Feedback is the rule-based narrative summary of a session.
type Feedback struct {
	OverallRating       Rating
	Strengths           []string
	AreasForImprovement []string
	SpecificTips        []string
	NextSteps           string
}

// Score thresholds for the overall rating buckets.
const (
	excellentScore = 8
	goodScore      = 5
	needsWorkScore = 2
)

// GenerateFeedback derives strengths, improvement areas, and tips from
// fixed thresholds on the session's scan and cone counts.
func GenerateFeedback(session *telemetry.DrillSession) Feedback {
	var strengths, improvements, tips []string

	if session.ScansCount > 3 {
		strengths = append(strengths, "Good use of scanning")
	} else if session.ScansCount < 2 {
		improvements = append(improvements, "Use scanning more often")
		tips = append(tips, "Hit the scan button before you touch the ball")
	}

	if session.ConesCollected >= 3 {
		strengths = append(strengths, "Efficient cone collection")
	} else {
		improvements = append(improvements, "Focus on precision when hitting cones")
		tips = append(tips, "Aim for the middle of each cone for the best result")
	}

	var rating Rating
	switch {
	case session.Score >= excellentScore:
		rating = RatingExcellent
	case session.Score >= goodScore:
		rating = RatingGood
	case session.Score >= needsWorkScore:
		rating = RatingNeedsWork
	default:
		rating = RatingBeginner
	}

	nextSteps := "Keep going with more advanced drills to challenge yourself"
	if len(improvements) > 0 {
		nextSteps = fmt.Sprintf("Focus on this in your next session: %s", improvements[0])
	}

	return Feedback{
		OverallRating:       rating,
		Strengths:           strengths,
		AreasForImprovement: improvements,
		SpecificTips:        tips,
		NextSteps:           nextSteps,
	}
}
