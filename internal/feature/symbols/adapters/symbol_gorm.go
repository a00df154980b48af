// Package adapters はsymbolsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trading_insights/internal/feature/symbols/domain/entity"
	"trading_insights/internal/feature/symbols/usecase"
)

// symbolGorm はSymbolRepositoryインターフェースのGORM実装です（SQLite / PostgreSQL）。
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolGormリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// Search はコードの前方一致または銘柄名の部分一致でアクティブな銘柄を検索します（大文字小文字を区別しない）。
func (r *symbolGorm) Search(ctx context.Context, query string, limit int) ([]entity.Symbol, error) {
	q := escapeLike(strings.ToUpper(query))

	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("UPPER(code) LIKE ? ESCAPE '\\' OR UPPER(name) LIKE ? ESCAPE '\\'", q+"%", "%"+q+"%").
		Order("sort_key ASC").
		Order("code ASC").
		Limit(limit).
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// UpsertAll はコードをキーに銘柄を一括で登録・更新します。
func (r *symbolGorm) UpsertAll(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "market", "quote_type", "is_active", "sort_key", "updated_at"}),
		}).
		CreateInBatches(&symbols, 200).Error
}

// escapeLike は LIKE のワイルドカード文字をエスケープします。
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
