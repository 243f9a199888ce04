package member

import (
	"gorm.io/gorm"

	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type MemberTalentRepo interface {
	ListByMember(dbc dbctx.Context, memberID uint64) ([]*types.MemberTalent, error)
	// ReplaceForMember drops every talent of memberID and stores talents in its place.
	ReplaceForMember(dbc dbctx.Context, memberID uint64, talents []types.MemberTalent) error
}

type memberTalentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMemberTalentRepo(db *gorm.DB, baseLog *logger.Logger) MemberTalentRepo {
	return &memberTalentRepo{db: db, log: baseLog.With("repo", "MemberTalentRepo")}
}

func (r *memberTalentRepo) ListByMember(dbc dbctx.Context, memberID uint64) ([]*types.MemberTalent, error) {
	var out []*types.MemberTalent
	if err := dbc.DB(r.db).
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *memberTalentRepo) ReplaceForMember(dbc dbctx.Context, memberID uint64, talents []types.MemberTalent) error {
	tx := dbc.DB(r.db)
	if err := tx.Where("member_id = ?", memberID).Delete(&types.MemberTalent{}).Error; err != nil {
		return err
	}
	if len(talents) == 0 {
		return nil
	}
	rows := make([]types.MemberTalent, 0, len(talents))
	for _, t := range talents {
		rows = append(rows, types.MemberTalent{
			MemberID:      memberID,
			SubCategoryID: t.SubCategoryID,
			Type:          t.Type,
		})
	}
	return tx.Create(&rows).Error
}
