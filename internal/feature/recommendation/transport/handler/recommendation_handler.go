// Package handler はrecommendationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_insights/internal/api"
	"trading_insights/internal/feature/recommendation/domain"
	recentity "trading_insights/internal/feature/recommendation/domain/entity"
	"trading_insights/internal/feature/recommendation/transport/http/dto"
)

// RecommendationUsecase はレコメンド算出のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RecommendationUsecase interface {
	GetRecommendation(ctx context.Context, symbol string) (recentity.RecommendationResult, error)
}

// RecommendationHandler はレコメンドのHTTPリクエストを処理します。
type RecommendationHandler struct {
	uc RecommendationUsecase
}

// NewRecommendationHandler は指定されたusecaseでRecommendationHandlerの新しいインスタンスを生成します。
func NewRecommendationHandler(uc RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// GetRecommendation は銘柄コードを受け取り、レコメンド結果をJSONで返します。
//
// エンドポイント例:
// GET /stocks/:symbol/recommendation
//
// ステータス:
//   - 400: 銘柄が空
//   - 422: 日足データ不足
//   - 502: 外部APIのエラー
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	res, err := h.uc.GetRecommendation(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid symbol", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientData):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "Insufficient data", Message: err.Error()})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to generate recommendation", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(res))
}
