// Command recommend prints the recommendation for one symbol as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"trading_insights/internal/app/config"
	"trading_insights/internal/app/di"
	"trading_insights/internal/feature/recommendation/transport/http/dto"
	recusecase "trading_insights/internal/feature/recommendation/usecase"
	"trading_insights/internal/platform/logger"
)

func main() {
	symbol := flag.String("symbol", "", "ticker symbol, e.g. AAPL")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	if *symbol == "" {
		fmt.Fprintln(os.Stderr, "usage: recommend -symbol AAPL")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	// stdout は結果のJSON専用
	slog.SetDefault(logger.New(os.Stderr, cfg.Log))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rdb := di.OpenRedis(ctx, cfg)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}
	market := di.NewMarket(cfg, rdb)
	uc := recusecase.NewRecommendationUsecase(market.Data)

	result, err := uc.GetRecommendation(ctx, *symbol)
	if err != nil {
		slog.Error("recommendation failed", "symbol", *symbol, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.FromResult(result)); err != nil {
		slog.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}
