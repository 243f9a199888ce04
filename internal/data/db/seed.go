package db

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
)

//go:embed categories.yaml
var defaultCatalog []byte

type catalogMain struct {
	Name string       `yaml:"name"`
	Mids []catalogMid `yaml:"mids"`
}

type catalogMid struct {
	Name string   `yaml:"name"`
	Subs []string `yaml:"subs"`
}

// ParseCatalog decodes a YAML category catalog.
func ParseCatalog(raw []byte) ([]types.MainCategory, error) {
	var mains []catalogMain
	if err := yaml.Unmarshal(raw, &mains); err != nil {
		return nil, fmt.Errorf("decode category catalog: %w", err)
	}
	out := make([]types.MainCategory, 0, len(mains))
	for _, m := range mains {
		if m.Name == "" {
			return nil, fmt.Errorf("decode category catalog: main category without name")
		}
		main := types.MainCategory{Name: m.Name}
		for _, mid := range m.Mids {
			mc := types.MidCategory{Name: mid.Name}
			for _, sub := range mid.Subs {
				mc.SubCategories = append(mc.SubCategories, types.SubCategory{Name: sub})
			}
			main.MidCategories = append(main.MidCategories, mc)
		}
		out = append(out, main)
	}
	return out, nil
}

// SeedCategories inserts the embedded catalog when no main category exists yet.
// It returns the number of main categories inserted.
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	catalog, err := ParseCatalog(defaultCatalog)
	if err != nil {
		return 0, err
	}
	return seedCatalog(ctx, db, catalog)
}

func seedCatalog(ctx context.Context, db *gorm.DB, catalog []types.MainCategory) (int, error) {
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&types.MainCategory{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for i := range catalog {
			if err := tx.Create(&catalog[i]).Error; err != nil {
				return fmt.Errorf("seed %q: %w", catalog[i].Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
