package db

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrateAll(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := EnsureIndexes(db); err != nil {
		t.Fatalf("indexes: %v", err)
	}
	return db
}

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(`
- name: Music
  mids:
    - name: Instruments
      subs: [Guitar, Piano]
`))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(catalog) != 1 || len(catalog[0].MidCategories) != 1 || len(catalog[0].MidCategories[0].SubCategories) != 2 {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}
	if _, err := ParseCatalog([]byte(`- mids: []`)); err == nil {
		t.Fatalf("expected error for nameless main category")
	}
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	n, err := SeedCategories(ctx, db)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if n == 0 {
		t.Fatalf("first seed inserted nothing")
	}
	n, err = SeedCategories(ctx, db)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("second seed inserted %d", n)
	}

	var subs int64
	if err := db.Model(&types.SubCategory{}).Count(&subs).Error; err != nil {
		t.Fatalf("count subs: %v", err)
	}
	if subs == 0 {
		t.Fatalf("no sub categories seeded")
	}
	var orphan int64
	if err := db.Model(&types.SubCategory{}).Where("mid_category_id = 0").Count(&orphan).Error; err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphan != 0 {
		t.Fatalf("%d sub categories without mid category", orphan)
	}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}
