package category

import (
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type MainCategoryRepo interface {
	GetByID(dbc dbctx.Context, id uint64) (*types.MainCategory, error)
	GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.MainCategory, error)
	// ListTree returns every main category with its mid and sub categories, ordered by id.
	ListTree(dbc dbctx.Context) ([]*types.MainCategory, error)
}

type MidCategoryRepo interface {
	GetByID(dbc dbctx.Context, id uint64) (*types.MidCategory, error)
	GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.MidCategory, error)
}

type SubCategoryRepo interface {
	GetByID(dbc dbctx.Context, id uint64) (*types.SubCategory, error)
	GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.SubCategory, error)
}

type mainCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMainCategoryRepo(db *gorm.DB, baseLog *logger.Logger) MainCategoryRepo {
	return &mainCategoryRepo{db: db, log: baseLog.With("repo", "MainCategoryRepo")}
}

func (r *mainCategoryRepo) GetByID(dbc dbctx.Context, id uint64) (*types.MainCategory, error) {
	rows, err := r.GetByIDs(dbc, []uint64{id})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *mainCategoryRepo) GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.MainCategory, error) {
	var out []*types.MainCategory
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("id IN ?", ids).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mainCategoryRepo) ListTree(dbc dbctx.Context) ([]*types.MainCategory, error) {
	var out []*types.MainCategory
	err := dbc.DB(r.db).
		Preload("MidCategories", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("MidCategories.SubCategories", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type midCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMidCategoryRepo(db *gorm.DB, baseLog *logger.Logger) MidCategoryRepo {
	return &midCategoryRepo{db: db, log: baseLog.With("repo", "MidCategoryRepo")}
}

func (r *midCategoryRepo) GetByID(dbc dbctx.Context, id uint64) (*types.MidCategory, error) {
	rows, err := r.GetByIDs(dbc, []uint64{id})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *midCategoryRepo) GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.MidCategory, error) {
	var out []*types.MidCategory
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("id IN ?", ids).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type subCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubCategoryRepo(db *gorm.DB, baseLog *logger.Logger) SubCategoryRepo {
	return &subCategoryRepo{db: db, log: baseLog.With("repo", "SubCategoryRepo")}
}

func (r *subCategoryRepo) GetByID(dbc dbctx.Context, id uint64) (*types.SubCategory, error) {
	rows, err := r.GetByIDs(dbc, []uint64{id})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *subCategoryRepo) GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.SubCategory, error) {
	var out []*types.SubCategory
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("id IN ?", ids).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
