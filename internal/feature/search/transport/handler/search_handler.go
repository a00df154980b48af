// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_insights/internal/api"
	"trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/search/transport/http/dto"
)

// SearchUsecase はティッカー検索のユースケースインターフェースを定義します。
type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]entity.TickerMatch, error)
}

// SearchHandler はティッカー検索のHTTPリクエストを処理します。
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler は指定されたusecaseでSearchHandlerの新しいインスタンスを生成します。
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search はクエリに一致するティッカーの一覧を返します。
//
// エンドポイント例:
// GET /search?q=apple
func (h *SearchHandler) Search(c *gin.Context) {
	q, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: `Query parameter "q" is required`})
		return
	}

	matches, err := h.uc.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to search tickers", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromMatches(matches))
}
