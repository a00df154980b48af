// Command seedsymbols はYAMLの銘柄カタログをデータベースへ登録・更新します。
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"trading_insights/internal/app/config"
	"trading_insights/internal/app/di"
	symboladapters "trading_insights/internal/feature/symbols/adapters"
	symbolusecase "trading_insights/internal/feature/symbols/usecase"
	"trading_insights/internal/platform/logger"
)

func main() {
	file := flag.String("file", "symbols.yaml", "path to the YAML symbol catalogue")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log)

	f, err := os.Open(*file)
	if err != nil {
		slog.Error("failed to open catalogue", "file", *file, "error", err)
		os.Exit(1)
	}
	symbols, err := symboladapters.LoadCatalogue(f)
	_ = f.Close()
	if err != nil {
		slog.Error("failed to load catalogue", "file", *file, "error", err)
		os.Exit(1)
	}

	// seed はスキーマが無ければ作成する
	cfg.RunMigrations = true
	db, err := di.OpenCatalogue(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	uc := symbolusecase.NewSymbolUsecase(symboladapters.NewSymbolRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := uc.Import(ctx, symbols)
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed ok", "symbols", n, "file", *file)
}
