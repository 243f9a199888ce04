package services

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates/testutil"
	repotestutil "github.com/yungbote/talentswap-backend/internal/data/repos/testutil"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/domain/member"
)

// The embedded catalog starts with Design(1) > Graphic(1), Product(2) and
// sub categories Logo(1), Illustration(2), Poster(3), UI(4), UX Research(5), Prototyping(6).
func seedPostWorld(t *testing.T, f *fixture) *types.Member {
	t.Helper()
	repotestutil.SeedCatalog(t, f.ctx, f.db)
	return repotestutil.SeedMember(t, f.ctx, f.db, "writer")
}

func addRequest() PostAddRequest {
	return PostAddRequest{
		Title:           "Logo design for guitar lessons",
		Content:         "I design logos",
		IsShare:         true,
		MainCategory:    1,
		MidCategory:     2,
		SubCategory:     3,
		ExchangeType:    "ONLINE",
		ExchangePeriod:  "WITHIN_WEEK",
		ExchangeTime:    "WEEKEND",
		Links:           []LinkRequest{{Content: "www.a.com"}},
		TakenCategories: []uint64{5},
		TakenContent:    "looking for ux research help",
	}
}

func TestCreatePersistsPostWithChildren(t *testing.T) {
	f := newFixture(t, nil)
	writer := seedPostWorld(t, f)
	if writer.ID != 1 {
		t.Fatalf("expected first member to get id 1, got %d", writer.ID)
	}

	req := addRequest()
	res, err := f.posts.Create(f.ctx, 1, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.ID == 0 {
		t.Fatalf("Create: expected generated id")
	}
	if res.Title != req.Title {
		t.Fatalf("Create: title not echoed: %q", res.Title)
	}
	if len(res.TakenTalents) != 1 || res.TakenTalents[0] != "UX Research" {
		t.Fatalf("Create: unexpected talents: %v", res.TakenTalents)
	}

	var stored types.Post
	if err := f.db.Preload("Links").Preload("TakenTalents").First(&stored, res.ID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if stored.MemberID != 1 || stored.MainCategoryID != 1 || stored.MidCategoryID != 2 || stored.SubCategoryID != 3 {
		t.Fatalf("stored post mismatch: %+v", stored)
	}
	if len(stored.Links) != 1 || stored.Links[0].Content != "www.a.com" {
		t.Fatalf("stored links mismatch: %+v", stored.Links)
	}
	if len(stored.TakenTalents) != 1 || stored.TakenTalents[0].SubCategoryID != 5 {
		t.Fatalf("stored talents mismatch: %+v", stored.TakenTalents)
	}
	if stored.TakenContent != req.TakenContent {
		t.Fatalf("taken content: %q", stored.TakenContent)
	}
	if status, _ := f.hooks.LastStatus("post.create"); status != "success" {
		t.Fatalf("hook status: %q", status)
	}
}

func TestCreateCountsDistinctTalents(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)

	req := addRequest()
	req.TakenCategories = []uint64{5, 6, 5, 4, 6}
	res, err := f.posts.Create(f.ctx, 1, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(res.TakenTalents) != 3 {
		t.Fatalf("expected 3 distinct talents, got %v", res.TakenTalents)
	}
	if n := f.count(t, &types.PostTalent{}); n != 3 {
		t.Fatalf("post_talent rows: %d", n)
	}
}

func TestCreateFailsWithoutPersisting(t *testing.T) {
	cases := []struct {
		name     string
		memberID uint64
		mutate   func(*PostAddRequest)
		reason   domainagg.Reason
	}{
		{"missing member", 99, func(*PostAddRequest) {}, domainagg.ReasonMemberNotFound},
		{"missing main", 1, func(r *PostAddRequest) { r.MainCategory = 999 }, domainagg.ReasonMainCategoryNotFound},
		{"missing mid", 1, func(r *PostAddRequest) { r.MidCategory = 999 }, domainagg.ReasonMidCategoryNotFound},
		{"missing sub", 1, func(r *PostAddRequest) { r.SubCategory = 999 }, domainagg.ReasonSubCategoryNotFound},
		{"missing talent", 1, func(r *PostAddRequest) { r.TakenCategories = []uint64{5, 999} }, domainagg.ReasonSubCategoryNotFound},
		{"bad exchange type", 1, func(r *PostAddRequest) { r.ExchangeType = "BY_MAIL" }, domainagg.ReasonInvalidExchangeType},
		{"blank title", 1, func(r *PostAddRequest) { r.Title = "  " }, domainagg.ReasonInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, nil)
			seedPostWorld(t, f)
			req := addRequest()
			tc.mutate(&req)

			_, err := f.posts.Create(f.ctx, tc.memberID, req)
			wantReason(t, err, tc.reason)
			for _, model := range []any{&types.Post{}, &types.Link{}, &types.PostTalent{}} {
				if n := f.count(t, model); n != 0 {
					t.Fatalf("%T rows persisted: %d", model, n)
				}
			}
		})
	}
}

func TestCreateCommitFailureLeavesNothing(t *testing.T) {
	runner := &testutil.FailingCommitRunner{FailCommit: errors.New("disk full")}
	f := newFixture(t, runner)
	seedPostWorld(t, f)

	_, err := f.posts.Create(f.ctx, 1, addRequest())
	if !domainagg.IsCode(err, domainagg.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if n := f.count(t, &types.Post{}); n != 0 {
		t.Fatalf("posts persisted after failed commit: %d", n)
	}
	if runner.Rollbacks != 1 {
		t.Fatalf("rollbacks: %d", runner.Rollbacks)
	}
}

func TestReadResolvesDisplayNames(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	created, err := f.posts.Create(f.ctx, 1, addRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := f.posts.Get(f.ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MainCategory != "Design" || got.MidCategory != "Product" || got.SubCategory != "Poster" {
		t.Fatalf("category names: %s/%s/%s", got.MainCategory, got.MidCategory, got.SubCategory)
	}
	if got.ExchangeType != "Online" || got.ExchangePeriod != "Within a week" || got.ExchangeTime != "Weekend" {
		t.Fatalf("exchange messages: %s/%s/%s", got.ExchangeType, got.ExchangePeriod, got.ExchangeTime)
	}
	if len(got.Links) != 1 || got.Links[0].ID == 0 || got.Likes != 0 {
		t.Fatalf("unexpected read projection: %+v", got)
	}

	_, err = f.posts.Get(f.ctx, created.ID+100)
	wantReason(t, err, domainagg.ReasonPostNotFound)
}

func TestDeleteThenReadFails(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	created, err := f.posts.Create(f.ctx, 1, addRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	res, err := f.posts.Delete(f.ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res.ID != created.ID {
		t.Fatalf("Delete: returned id %d", res.ID)
	}
	_, err = f.posts.Get(f.ctx, created.ID)
	wantReason(t, err, domainagg.ReasonPostNotFound)
	_, err = f.posts.Delete(f.ctx, created.ID)
	wantReason(t, err, domainagg.ReasonPostNotFound)

	for _, model := range []any{&types.Link{}, &types.PostTalent{}} {
		if n := f.count(t, model); n != 0 {
			t.Fatalf("%T rows left after delete: %d", model, n)
		}
	}
}

func TestUpdateForOwnerReplacesFieldsAndEditsLinks(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	created, err := f.posts.Create(f.ctx, 1, addRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, err := f.posts.Get(f.ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	linkID := before.Links[0].ID

	req := PostUpdateRequest(addRequest())
	req.Title = "Updated title"
	req.IsShare = false
	req.MainCategory, req.MidCategory, req.SubCategory = 1, 2, 4
	req.ExchangeType = "offline"
	req.TakenCategories = []uint64{6, 1}
	req.TakenContent = "now want prototyping"
	req.Links = []LinkRequest{
		{ID: &linkID, Content: "www.b.com"},
		{Content: "www.new.com"},
	}

	res, err := f.posts.UpdateForOwner(f.ctx, 1, created.ID, req)
	if err != nil {
		t.Fatalf("UpdateForOwner: %v", err)
	}
	if res.Title != "Updated title" || res.IsShare || res.ExchangeType != "Offline" {
		t.Fatalf("fields not updated: %+v", res)
	}
	// mid category comes from the mid id, not the main id
	if res.MainCategory != "Design" || res.MidCategory != "Product" || res.SubCategory != "UI" {
		t.Fatalf("categories: %s/%s/%s", res.MainCategory, res.MidCategory, res.SubCategory)
	}
	if len(res.TakenTalents) != 2 || res.TakenTalents[0] != "Prototyping" || res.TakenTalents[1] != "Logo" {
		t.Fatalf("talents: %v", res.TakenTalents)
	}
	if len(res.Links) != 2 || res.Links[0].ID != linkID || res.Links[0].Content != "www.b.com" || res.Links[1].ID == 0 {
		t.Fatalf("links: %+v", res.Links)
	}

	after, err := f.posts.Get(f.ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if after.Title != "Updated title" || len(after.Links) != 2 || after.Links[0].Content != "www.b.com" {
		t.Fatalf("update not persisted: %+v", after)
	}
	var talents []types.PostTalent
	if err := f.db.Where("post_id = ?", created.ID).Order("id ASC").Find(&talents).Error; err != nil {
		t.Fatalf("load talents: %v", err)
	}
	if len(talents) != 2 || talents[0].SubCategoryID != 6 || talents[1].SubCategoryID != 1 {
		t.Fatalf("talent rows: %+v", talents)
	}
}

func TestUpdateForOwnerRejectsForeignLink(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	target, err := f.posts.Create(f.ctx, 1, addRequest())
	if err != nil {
		t.Fatalf("Create target: %v", err)
	}
	otherReq := addRequest()
	otherReq.Links = []LinkRequest{{Content: "www.other.com"}}
	other, err := f.posts.Create(f.ctx, 1, otherReq)
	if err != nil {
		t.Fatalf("Create other: %v", err)
	}
	otherView, err := f.posts.Get(f.ctx, other.ID)
	if err != nil {
		t.Fatalf("Get other: %v", err)
	}
	foreignID := otherView.Links[0].ID

	req := PostUpdateRequest(addRequest())
	req.Title = "must not stick"
	req.TakenCategories = []uint64{4}
	req.Links = []LinkRequest{{ID: &foreignID, Content: "www.hijack.com"}}

	_, err = f.posts.UpdateForOwner(f.ctx, 1, target.ID, req)
	wantReason(t, err, domainagg.ReasonLinkNotFound)

	after, err := f.posts.Get(f.ctx, target.ID)
	if err != nil {
		t.Fatalf("Get target: %v", err)
	}
	if after.Title != addRequest().Title {
		t.Fatalf("title committed despite failure: %q", after.Title)
	}
	otherAfter, err := f.posts.Get(f.ctx, other.ID)
	if err != nil {
		t.Fatalf("Get other after: %v", err)
	}
	if otherAfter.Links[0].Content != "www.other.com" {
		t.Fatalf("foreign link modified: %q", otherAfter.Links[0].Content)
	}
	var talents []types.PostTalent
	if err := f.db.Where("post_id = ?", target.ID).Find(&talents).Error; err != nil {
		t.Fatalf("load talents: %v", err)
	}
	if len(talents) != 1 || talents[0].SubCategoryID != 5 {
		t.Fatalf("talents committed despite failure: %+v", talents)
	}
}

func TestUpdateForOwnerLookupFailures(t *testing.T) {
	cases := []struct {
		name     string
		memberID uint64
		mutate   func(*PostUpdateRequest)
		reason   domainagg.Reason
	}{
		{"not owner", 2, func(*PostUpdateRequest) {}, domainagg.ReasonPostNotFound},
		{"missing main", 1, func(r *PostUpdateRequest) { r.MainCategory = 999 }, domainagg.ReasonMainCategoryNotFound},
		{"missing mid", 1, func(r *PostUpdateRequest) { r.MidCategory = 999 }, domainagg.ReasonMidCategoryNotFound},
		{"missing sub", 1, func(r *PostUpdateRequest) { r.SubCategory = 999 }, domainagg.ReasonSubCategoryNotFound},
		{"missing talent", 1, func(r *PostUpdateRequest) { r.TakenCategories = []uint64{999} }, domainagg.ReasonSubCategoryNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, nil)
			seedPostWorld(t, f)
			repotestutil.SeedMember(t, f.ctx, f.db, "intruder")
			created, err := f.posts.Create(f.ctx, 1, addRequest())
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			req := PostUpdateRequest(addRequest())
			req.Title = "changed"
			tc.mutate(&req)

			_, err = f.posts.UpdateForOwner(f.ctx, tc.memberID, created.ID, req)
			wantReason(t, err, tc.reason)
			after, err := f.posts.Get(f.ctx, created.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if after.Title == "changed" {
				t.Fatalf("title committed despite %s", tc.reason)
			}
		})
	}
}

func TestListFiltersAndPages(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	for i := 0; i < 3; i++ {
		req := addRequest()
		req.Title = fmt.Sprintf("shared %d", i)
		if _, err := f.posts.Create(f.ctx, 1, req); err != nil {
			t.Fatalf("Create shared: %v", err)
		}
	}
	private := addRequest()
	private.IsShare = false
	if _, err := f.posts.Create(f.ctx, 1, private); err != nil {
		t.Fatalf("Create private: %v", err)
	}
	otherMid := addRequest()
	otherMid.MidCategory = 1
	if _, err := f.posts.Create(f.ctx, 1, otherMid); err != nil {
		t.Fatalf("Create other mid: %v", err)
	}

	shared := true
	mid := uint64(2)
	page, err := f.posts.List(f.ctx, PostListQuery{IsShare: &shared, MidCategoryID: &mid, Size: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalElements != 3 || page.TotalPages != 2 || len(page.Content) != 2 || page.Last {
		t.Fatalf("first page: %+v", page)
	}
	first := page.Content[0]
	if first.Nickname != "writer" || first.Ranks != "Rookie" || first.SubCategory != "Poster" {
		t.Fatalf("summary: %+v", first)
	}
	if len(first.TakenTalents) != 1 || first.TakenTalents[0] != "UX Research" {
		t.Fatalf("summary talents: %v", first.TakenTalents)
	}

	page, err = f.posts.List(f.ctx, PostListQuery{IsShare: &shared, MidCategoryID: &mid, Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if len(page.Content) != 1 || !page.Last {
		t.Fatalf("second page: %+v", page)
	}

	all, err := f.posts.List(f.ctx, PostListQuery{Size: 1000})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if all.TotalElements != 5 || all.Size != 100 {
		t.Fatalf("unfiltered: total=%d size=%d", all.TotalElements, all.Size)
	}
}

func TestListFarPageIsEmpty(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	for i := 0; i < 3; i++ {
		if _, err := f.posts.Create(f.ctx, 1, addRequest()); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	for _, q := range []PostListQuery{
		{Page: math.MaxInt / 50, Size: 100},
		{Page: math.MaxInt, Size: 1},
		{Page: 7, Size: 1},
	} {
		page, err := f.posts.List(f.ctx, q)
		if err != nil {
			t.Fatalf("List(%+v): %v", q, err)
		}
		if len(page.Content) != 0 {
			t.Fatalf("List(%+v): want no rows got=%d", q, len(page.Content))
		}
		if page.TotalElements != 3 || !page.Last || page.Page < 0 {
			t.Fatalf("List(%+v): page=%+v", q, page)
		}
	}
}

func TestPageLimitsClampKeepsOffsetInRange(t *testing.T) {
	limits := PageLimits{Default: 20, Max: 100}
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{-3, 0, 0, 20},
		{2, 500, 2, 100},
		{math.MaxInt, 100, math.MaxInt/100 - 1, 100},
	}
	for _, tc := range cases {
		page, size := limits.clamp(tc.page, tc.size)
		if page != tc.wantPage || size != tc.wantSize {
			t.Fatalf("clamp(%d,%d): got=%d,%d want=%d,%d", tc.page, tc.size, page, size, tc.wantPage, tc.wantSize)
		}
		if page*size < 0 {
			t.Fatalf("clamp(%d,%d): offset overflowed", tc.page, tc.size)
		}
	}
}

func TestListMethods(t *testing.T) {
	f := newFixture(t, nil)
	got := f.posts.ListMethods()
	if len(got.ExchangeTypes) != 3 || len(got.ExchangePeriods) != 5 || len(got.ExchangeTimes) != 5 {
		t.Fatalf("unexpected method counts: %+v", got)
	}
	if got.ExchangeTypes[0].Name != "ONLINE" || got.ExchangeTypes[0].Message != "Online" {
		t.Fatalf("first exchange type: %+v", got.ExchangeTypes[0])
	}
	if len(f.hooks.Operations) != 0 {
		t.Fatalf("ListMethods touched the unit of work")
	}
}

func TestLikesRecomputeAuthorRank(t *testing.T) {
	f := newFixture(t, nil)
	seedPostWorld(t, f)
	created, err := f.posts.Create(f.ctx, 1, addRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	threshold := int(member.RankBeginner.Threshold())
	var fans []uint64
	for i := 0; i < threshold; i++ {
		fans = append(fans, repotestutil.SeedMember(t, f.ctx, f.db, fmt.Sprintf("fan%d", i)).ID)
	}
	for i, fan := range fans {
		res, err := f.posts.Like(f.ctx, fan, created.ID)
		if err != nil {
			t.Fatalf("Like(%d): %v", fan, err)
		}
		if res.Likes != i+1 {
			t.Fatalf("like count: want=%d got=%d", i+1, res.Likes)
		}
	}
	_, err = f.posts.Like(f.ctx, fans[0], created.ID)
	wantReason(t, err, domainagg.ReasonAlreadyLiked)
	if len(f.hooks.Conflicts) != 0 {
		t.Fatalf("double like counted as a write conflict: %+v", f.hooks.Conflicts)
	}
	if status, _ := f.hooks.LastStatus("post.like"); status != string(domainagg.CodeConflict) {
		t.Fatalf("post.like status: %q", status)
	}

	info, err := f.members.ReadMemberInfo(f.ctx, 1)
	if err != nil {
		t.Fatalf("ReadMemberInfo: %v", err)
	}
	if info.Ranks != member.RankBeginner.Name() || info.LikeCount != fmt.Sprint(threshold) {
		t.Fatalf("rank after likes: %+v", info)
	}

	if _, err := f.posts.Unlike(f.ctx, fans[0], created.ID); err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	_, err = f.posts.Unlike(f.ctx, fans[0], created.ID)
	wantReason(t, err, domainagg.ReasonNotLiked)

	info, err = f.members.ReadMemberInfo(f.ctx, 1)
	if err != nil {
		t.Fatalf("ReadMemberInfo after unlike: %v", err)
	}
	if info.Ranks != member.RankRookie.Name() {
		t.Fatalf("rank after unlike: %s", info.Ranks)
	}

	_, err = f.posts.Like(f.ctx, 9999, created.ID)
	wantReason(t, err, domainagg.ReasonMemberNotFound)
	_, err = f.posts.Like(f.ctx, fans[1], created.ID+100)
	wantReason(t, err, domainagg.ReasonPostNotFound)
}
