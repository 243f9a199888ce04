package db

import (
	"fmt"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsureIndexes creates the list-query indexes AutoMigrate cannot express.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_post_share_mid_created", `CREATE INDEX IF NOT EXISTS idx_post_share_mid_created ON post (is_share, mid_category_id, created_at DESC);`},
		{"idx_post_talent_post_sub", `CREATE UNIQUE INDEX IF NOT EXISTS idx_post_talent_post_sub ON post_talent (post_id, sub_category_id);`},
		{"idx_member_talent_member_type", `CREATE INDEX IF NOT EXISTS idx_member_talent_member_type ON member_talent (member_id, type);`},
	}
	for _, st := range stmts {
		if err := db.Exec(st.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", st.name, err)
		}
	}
	return nil
}
