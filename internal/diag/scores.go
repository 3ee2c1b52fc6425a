package diag

import "math"

// ScoreBreakdown is the output of CalculateScores: one 0-100 score per
// engine, the overall mean, and the per-answer detail the flag detector and
// action generator consume.
type ScoreBreakdown struct {
	EngineScores    map[Engine]int
	OverallScore    int
	QuestionResults []QuestionResult
}

// CalculateScores converts discrete answers into engine scores. An answer's
// points are split evenly across every engine its question touches; each
// engine's score is the mean of its per-answer shares against the 20-point
// question maximum. Answers citing unknown question ids contribute nothing.
// Answer order does not affect the result.
func CalculateScores(answers []Answer) ScoreBreakdown {
	shares := make(map[Engine][]float64, len(AllEngines))
	results := make([]QuestionResult, 0, len(answers))

	for _, a := range answers {
		q, ok := QuestionByID(a.QuestionID)
		if !ok {
			continue
		}
		points := q.Points[a.Strength]
		share := float64(points) / float64(len(q.Engines))
		for _, e := range q.Engines {
			shares[e] = append(shares[e], share)
		}
		results = append(results, QuestionResult{
			QuestionID:    q.ID,
			PointsAwarded: points,
			MaxPoints:     maxPoints(q),
			Engines:       q.Engines,
			RedFlags:      q.RedFlags,
		})
	}

	scores := make(map[Engine]int, len(AllEngines))
	for _, e := range AllEngines {
		scores[e] = engineScore(shares[e])
	}

	return ScoreBreakdown{
		EngineScores:    scores,
		OverallScore:    OverallScore(scores),
		QuestionResults: results,
	}
}

func engineScore(shares []float64) int {
	if len(shares) == 0 {
		return NeutralBaselineScore
	}
	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	mean := sum / float64(len(shares))
	return clampScore(int(math.Round(mean / MaxQuestionPoints * 100)))
}

// OverallScore is the rounded mean across all engines.
func OverallScore(scores map[Engine]int) int {
	sum := 0
	for _, e := range AllEngines {
		sum += scores[e]
	}
	return clampScore(int(math.Round(float64(sum) / float64(len(AllEngines)))))
}

func maxPoints(q Question) int {
	max := 0
	for _, p := range q.Points {
		if p > max {
			max = p
		}
	}
	return max
}

// RatingToScore linearly normalizes a 1-5 rating to 0-100.
func RatingToScore(rating int) float64 {
	return float64(rating-1) / 4.0 * 100.0
}

// InvertRating flips a 1-5 rating for fields where 1 is the best answer
// (skill gaps, retention risk).
func InvertRating(rating int) int {
	return 6 - rating
}

// MeanRatingScore normalizes each rating and rounds the mean, so boundary
// cases like {4,3,4} land on 67 rather than 66.
func MeanRatingScore(ratings []int) int {
	if len(ratings) == 0 {
		return NeutralBaselineScore
	}
	sum := 0.0
	for _, r := range ratings {
		sum += RatingToScore(r)
	}
	return clampScore(int(math.Round(sum / float64(len(ratings)))))
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
