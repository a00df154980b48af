// Package usecase はティッカー検索のビジネスロジックを提供します。
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"trading_insights/internal/domain/entity"
)

// TickerSearcher は外部のティッカー検索APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TickerSearcher interface {
	Search(ctx context.Context, query string) ([]entity.TickerMatch, error)
}

// SearchUsecase は上流の検索APIとローカル銘柄カタログを組み合わせてティッカーを検索します。
type SearchUsecase struct {
	upstream TickerSearcher
	catalog  TickerSearcher
}

// NewSearchUsecase は SearchUsecase を生成します。
// catalog は nil でもよく、その場合は上流の失敗をそのまま返します。
func NewSearchUsecase(upstream, catalog TickerSearcher) *SearchUsecase {
	return &SearchUsecase{upstream: upstream, catalog: catalog}
}

// Search はクエリに一致するティッカーを返します。
// 空白のみのクエリは上流を呼ばずに空スライスを返します。
// 上流が失敗しカタログが設定されている場合は、警告を出してカタログ検索にフォールバックします。
func (u *SearchUsecase) Search(ctx context.Context, query string) ([]entity.TickerMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.TickerMatch{}, nil
	}

	matches, err := u.upstream.Search(ctx, query)
	if err == nil {
		if matches == nil {
			matches = []entity.TickerMatch{}
		}
		return matches, nil
	}

	if u.catalog == nil {
		return nil, err
	}

	slog.Warn("upstream ticker search failed, falling back to local catalogue", "query", query, "error", err)
	local, cerr := u.catalog.Search(ctx, query)
	if cerr != nil {
		slog.Error("local catalogue search failed", "query", query, "error", cerr)
		return nil, err
	}
	if local == nil {
		local = []entity.TickerMatch{}
	}
	return local, nil
}
