package member

import (
	"context"
	"testing"

	"github.com/yungbote/talentswap-backend/internal/data/repos/testutil"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	domainmember "github.com/yungbote/talentswap-backend/internal/domain/member"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
)

func TestMemberRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewMemberRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, []*types.Member{{Nickname: "alice", Ranks: domainmember.RankRookie}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == 0 {
		t.Fatalf("Create: unexpected result: %+v", created)
	}
	id := created[0].ID

	if err := repo.UpdateNickname(dbc, id, "alicia"); err != nil {
		t.Fatalf("UpdateNickname: %v", err)
	}
	if err := repo.UpdateRanks(dbc, id, domainmember.RankBeginner); err != nil {
		t.Fatalf("UpdateRanks: %v", err)
	}
	got, err := repo.GetByID(dbc, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Nickname != "alicia" || got.Ranks != domainmember.RankBeginner {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	got.UpdateProfile(domainmember.Profile{Nickname: "al", Image: " img.png ", Introduction: "hi", ProfileLink: "www.al.com"})
	if err := repo.UpdateProfile(dbc, got); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, err = repo.GetByID(dbc, id)
	if err != nil {
		t.Fatalf("GetByID after profile: %v", err)
	}
	if got.Nickname != "al" || got.Image != "img.png" || got.ProfileLink != "www.al.com" {
		t.Fatalf("UpdateProfile: unexpected result: %+v", got)
	}

	missing, err := repo.GetByID(dbc, id+1)
	if err != nil || missing != nil {
		t.Fatalf("GetByID (missing): %+v err=%v", missing, err)
	}
}

func TestMemberTalentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	m := testutil.SeedMember(t, ctx, tx, "bob")
	repo := NewMemberTalentRepo(db, testutil.Logger(t))

	m.ReplaceTalents([]uint64{1, 2}, []uint64{3})
	if err := repo.ReplaceForMember(dbc, m.ID, m.Talents); err != nil {
		t.Fatalf("ReplaceForMember: %v", err)
	}
	rows, err := repo.ListByMember(dbc, m.ID)
	if err != nil {
		t.Fatalf("ListByMember: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByMember: expected 3 talents, got %d", len(rows))
	}

	m.ReplaceTalents(nil, []uint64{4})
	if err := repo.ReplaceForMember(dbc, m.ID, m.Talents); err != nil {
		t.Fatalf("ReplaceForMember (second): %v", err)
	}
	rows, err = repo.ListByMember(dbc, m.ID)
	if err != nil {
		t.Fatalf("ListByMember (second): %v", err)
	}
	if len(rows) != 1 || rows[0].SubCategoryID != 4 || rows[0].Type != domainmember.TalentTaken {
		t.Fatalf("ListByMember (second): unexpected result: %+v", rows)
	}
}
