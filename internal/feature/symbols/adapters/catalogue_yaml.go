package adapters

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"trading_insights/internal/feature/symbols/domain/entity"
)

// catalogueFile はYAML銘柄カタログのファイル形式です。
type catalogueFile struct {
	Symbols []catalogueEntry `yaml:"symbols"`
}

type catalogueEntry struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Market    string `yaml:"market"`
	QuoteType string `yaml:"quote_type"`
	Active    *bool  `yaml:"active"`
	SortKey   int    `yaml:"sort_key"`
}

// LoadCatalogue はYAMLの銘柄カタログを読み込みます。active を省略した銘柄はアクティブ扱いです。
func LoadCatalogue(r io.Reader) ([]entity.Symbol, error) {
	var f catalogueFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return []entity.Symbol{}, nil
		}
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	out := make([]entity.Symbol, 0, len(f.Symbols))
	for _, e := range f.Symbols {
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		out = append(out, entity.Symbol{
			Code:      e.Code,
			Name:      e.Name,
			Market:    e.Market,
			QuoteType: e.QuoteType,
			IsActive:  active,
			SortKey:   e.SortKey,
		})
	}
	return out, nil
}
