package post

import (
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

// ListFilter narrows a post listing. Nil fields do not filter.
type ListFilter struct {
	IsShare       *bool
	MidCategoryID *uint64
	Offset        int
	Limit         int
}

type PostRepo interface {
	// Create inserts the post together with its links and taken talents.
	Create(dbc dbctx.Context, p *types.Post) (*types.Post, error)
	GetByID(dbc dbctx.Context, id uint64) (*types.Post, error)
	// GetByIDForMember only finds the post when memberID owns it.
	GetByIDForMember(dbc dbctx.Context, memberID, id uint64) (*types.Post, error)
	List(dbc dbctx.Context, filter ListFilter) ([]*types.Post, int64, error)
	// SaveFields writes the scalar columns of p. Children are left untouched.
	SaveFields(dbc dbctx.Context, p *types.Post) error
	Delete(dbc dbctx.Context, id uint64) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (r *postRepo) Create(dbc dbctx.Context, p *types.Post) (*types.Post, error) {
	if p == nil {
		return nil, nil
	}
	if err := dbc.DB(r.db).Omit("Likes").Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func withChildren(tx *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }
	return tx.
		Preload("Links", byID).
		Preload("TakenTalents", byID).
		Preload("Likes", byID)
}

// GetByID returns nil without error when the post does not exist.
func (r *postRepo) GetByID(dbc dbctx.Context, id uint64) (*types.Post, error) {
	var out []*types.Post
	if err := withChildren(dbc.DB(r.db)).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *postRepo) GetByIDForMember(dbc dbctx.Context, memberID, id uint64) (*types.Post, error) {
	var out []*types.Post
	if err := withChildren(dbc.DB(r.db)).
		Where("id = ? AND member_id = ?", id, memberID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *postRepo) List(dbc dbctx.Context, filter ListFilter) ([]*types.Post, int64, error) {
	q := dbc.DB(r.db).Model(&types.Post{})
	if filter.IsShare != nil {
		q = q.Where("is_share = ?", *filter.IsShare)
	}
	if filter.MidCategoryID != nil {
		q = q.Where("mid_category_id = ?", *filter.MidCategoryID)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []*types.Post
	if total == 0 {
		return out, 0, nil
	}
	page := withChildren(q.Session(&gorm.Session{})).Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}
	if err := page.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *postRepo) SaveFields(dbc dbctx.Context, p *types.Post) error {
	if p == nil {
		return nil
	}
	return dbc.DB(r.db).
		Model(p).
		Select(
			"title", "content", "is_share",
			"main_category_id", "mid_category_id", "sub_category_id",
			"exchange_type", "exchange_period", "exchange_time",
			"chat_link", "taken_content", "updated_at",
		).
		Updates(p).Error
}

// Delete removes the post and every child row it owns.
func (r *postRepo) Delete(dbc dbctx.Context, id uint64) error {
	tx := dbc.DB(r.db)
	if err := tx.Where("post_id = ?", id).Delete(&types.Link{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", id).Delete(&types.PostTalent{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", id).Delete(&types.PostLike{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", id).Delete(&types.Post{}).Error
}
