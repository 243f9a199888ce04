package member

import (
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type MemberRepo interface {
	Create(dbc dbctx.Context, members []*types.Member) ([]*types.Member, error)
	GetByID(dbc dbctx.Context, id uint64) (*types.Member, error)
	GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.Member, error)
	UpdateNickname(dbc dbctx.Context, id uint64, nickname string) error
	UpdateProfile(dbc dbctx.Context, m *types.Member) error
	UpdateRanks(dbc dbctx.Context, id uint64, ranks types.Ranks) error
}

type memberRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMemberRepo(db *gorm.DB, baseLog *logger.Logger) MemberRepo {
	return &memberRepo{db: db, log: baseLog.With("repo", "MemberRepo")}
}

func (r *memberRepo) Create(dbc dbctx.Context, members []*types.Member) ([]*types.Member, error) {
	if len(members) == 0 {
		return []*types.Member{}, nil
	}
	if err := dbc.DB(r.db).Create(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetByID returns nil without error when the member does not exist.
func (r *memberRepo) GetByID(dbc dbctx.Context, id uint64) (*types.Member, error) {
	rows, err := r.GetByIDs(dbc, []uint64{id})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *memberRepo) GetByIDs(dbc dbctx.Context, ids []uint64) ([]*types.Member, error) {
	var out []*types.Member
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("id IN ?", ids).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *memberRepo) UpdateNickname(dbc dbctx.Context, id uint64, nickname string) error {
	return dbc.DB(r.db).
		Model(&types.Member{}).
		Where("id = ?", id).
		Update("nickname", nickname).Error
}

func (r *memberRepo) UpdateProfile(dbc dbctx.Context, m *types.Member) error {
	if m == nil {
		return nil
	}
	return dbc.DB(r.db).
		Model(&types.Member{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"nickname":     m.Nickname,
			"image":        m.Image,
			"introduction": m.Introduction,
			"profile_link": m.ProfileLink,
		}).Error
}

func (r *memberRepo) UpdateRanks(dbc dbctx.Context, id uint64, ranks types.Ranks) error {
	return dbc.DB(r.db).
		Model(&types.Member{}).
		Where("id = ?", id).
		Update("ranks", ranks).Error
}
