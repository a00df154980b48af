// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"trading_insights/internal/api"
	"trading_insights/internal/domain/entity"
	"trading_insights/internal/feature/quotes/transport/http/dto"
	"trading_insights/internal/feature/quotes/usecase"
)

// QuotesUsecase は相場取得のユースケースインターフェースを定義します。
type QuotesUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	GetHistory(ctx context.Context, symbol, rng string) ([]entity.PricePoint, error)
}

// QuotesHandler は相場データのHTTPリクエストを処理します。
type QuotesHandler struct {
	uc QuotesUsecase
}

// NewQuotesHandler は指定されたusecaseでQuotesHandlerの新しいインスタンスを生成します。
func NewQuotesHandler(uc QuotesUsecase) *QuotesHandler {
	return &QuotesHandler{uc: uc}
}

// GetLatest は銘柄の最新相場をJSONで返します。
//
// エンドポイント例:
// GET /stocks/:symbol/latest
func (h *QuotesHandler) GetLatest(c *gin.Context) {
	q, err := h.uc.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Symbol parameter is required"})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to fetch stock quote", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromQuote(q))
}

// GetHistory は銘柄の日足履歴をJSONで返します。
//
// エンドポイント例:
// GET /stocks/:symbol/history?range=1m
func (h *QuotesHandler) GetHistory(c *gin.Context) {
	rng := c.Query("range")
	if rng == "" {
		rng = usecase.DefaultRange
	}

	points, err := h.uc.GetHistory(c.Request.Context(), c.Param("symbol"), rng)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSymbolRequired):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Symbol parameter is required"})
		case errors.Is(err, usecase.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid range", Message: err.Error()})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to fetch price history", Message: err.Error()})
		}
		return
	}

	// 上流によっては降順で返るため、日付昇順に揃える
	points = slices.Clone(points)
	slices.SortStableFunc(points, func(a, b entity.PricePoint) int { return a.Date.Compare(b.Date) })

	c.JSON(http.StatusOK, dto.FromHistory(strings.ToUpper(strings.TrimSpace(c.Param("symbol"))), rng, points))
}
