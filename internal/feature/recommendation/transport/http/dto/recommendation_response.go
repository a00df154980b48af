// Package dto はレコメンドAPIのレスポンスDTOを定義します。
package dto

import recentity "trading_insights/internal/feature/recommendation/domain/entity"

// RecommendationResponse はレコメンド結果のレスポンスDTOです。
type RecommendationResponse struct {
	Symbol         string          `json:"symbol"`
	Recommendation string          `json:"recommendation"` // BUY / SELL / HOLD
	TotalScore     float64         `json:"totalScore"`
	MaxScore       float64         `json:"maxScore"`
	Confidence     float64         `json:"confidence"` // 0〜100
	Scores         []ScoreResponse `json:"scores"`
	Details        DetailsResponse `json:"details"`
}

// ScoreResponse は各ファクターのスコアです。
type ScoreResponse struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"maxScore"`
	Explanation string  `json:"explanation"`
}

// DetailsResponse はスコアの根拠となる指標値です。
type DetailsResponse struct {
	CurrentPrice  float64 `json:"currentPrice"`
	MA50          float64 `json:"ma50"`
	MA200         float64 `json:"ma200"`
	RecentTrend   float64 `json:"recentTrend"`   // %
	PricePosition float64 `json:"pricePosition"` // 52週レンジ内の位置（0〜1）
	Volatility    float64 `json:"volatility"`    // %
	GoldenCross   bool    `json:"goldenCross"`
}

// FromResult はドメインの結果をレスポンスDTOに変換します。
func FromResult(r recentity.RecommendationResult) RecommendationResponse {
	scores := make([]ScoreResponse, 0, len(r.Factors))
	for _, f := range r.Factors {
		scores = append(scores, ScoreResponse{
			Name:        f.Name,
			Score:       f.Score,
			MaxScore:    f.MaxScore,
			Explanation: f.Explanation,
		})
	}
	return RecommendationResponse{
		Symbol:         r.Symbol,
		Recommendation: string(r.Classification),
		TotalScore:     r.TotalScore,
		MaxScore:       r.MaxScore,
		Confidence:     r.Confidence,
		Scores:         scores,
		Details: DetailsResponse{
			CurrentPrice:  r.Details.CurrentPrice,
			MA50:          r.Details.MA50,
			MA200:         r.Details.MA200,
			RecentTrend:   r.Details.RecentTrend,
			PricePosition: r.Details.PricePosition,
			Volatility:    r.Details.Volatility,
			GoldenCross:   r.Details.GoldenCross,
		},
	}
}
