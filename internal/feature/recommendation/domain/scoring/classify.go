package scoring

import recentity "trading_insights/internal/feature/recommendation/domain/entity"

// Classification thresholds as fractions of the maximum score. Both bounds are inclusive.
const (
	buyThreshold  = 0.6
	sellThreshold = 0.4
)

// Aggregate sums the factor scores and their maxima.
func Aggregate(factors []recentity.FactorScore) (total, maxScore float64) {
	for _, f := range factors {
		total += f.Score
		maxScore += f.MaxScore
	}
	return total, maxScore
}

// Classify maps a total score to BUY, SELL or HOLD relative to maxScore.
func Classify(total, maxScore float64) recentity.Classification {
	switch {
	case total >= maxScore*buyThreshold:
		return recentity.Buy
	case total <= maxScore*sellThreshold:
		return recentity.Sell
	default:
		return recentity.Hold
	}
}

// Confidence expresses total as a percentage of maxScore.
func Confidence(total, maxScore float64) float64 {
	if maxScore == 0 {
		return 0
	}
	return total / maxScore * 100
}
