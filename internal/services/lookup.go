package services

import (
	"github.com/yungbote/talentswap-backend/internal/data/repos"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/domain/post"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
)

// catalogLookup resolves category references and fails with the reason of the
// first kind that does not exist.
type catalogLookup struct {
	mains repos.MainCategoryRepo
	mids  repos.MidCategoryRepo
	subs  repos.SubCategoryRepo
}

func (l catalogLookup) classification(dbc dbctx.Context, op string, mainID, midID, subID uint64) (post.Classification, error) {
	main, err := l.mains.GetByID(dbc, mainID)
	if err != nil {
		return post.Classification{}, err
	}
	if main == nil {
		return post.Classification{}, domainagg.NotFound(op, domainagg.ReasonMainCategoryNotFound)
	}
	mid, err := l.mids.GetByID(dbc, midID)
	if err != nil {
		return post.Classification{}, err
	}
	if mid == nil {
		return post.Classification{}, domainagg.NotFound(op, domainagg.ReasonMidCategoryNotFound)
	}
	sub, err := l.subs.GetByID(dbc, subID)
	if err != nil {
		return post.Classification{}, err
	}
	if sub == nil {
		return post.Classification{}, domainagg.NotFound(op, domainagg.ReasonSubCategoryNotFound)
	}
	return post.Classification{Main: *main, Mid: *mid, Sub: *sub}, nil
}

// talents resolves every id to a sub category, keeping request order and
// dropping repeats.
func (l catalogLookup) talents(dbc dbctx.Context, op string, ids []uint64) ([]types.SubCategory, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := l.subs.GetByIDs(dbc, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*types.SubCategory, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	out := make([]types.SubCategory, 0, len(ids))
	for _, id := range ids {
		sub, ok := byID[id]
		if !ok {
			return nil, domainagg.NotFound(op, domainagg.ReasonSubCategoryNotFound)
		}
		out = append(out, *sub)
	}
	return out, nil
}

// subNames maps sub category ids to display names.
func (l catalogLookup) subNames(dbc dbctx.Context, ids []uint64) (map[uint64]string, error) {
	rows, err := l.subs.GetByIDs(dbc, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]string, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}

func names(ids []uint64, byID map[uint64]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			out = append(out, name)
		}
	}
	return out
}

func subCategoryNames(subs []types.SubCategory) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.Name)
	}
	return out
}

func uniqueIDs(ids []uint64) []uint64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
