package services

import (
	"context"
	"math"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates"
	"github.com/yungbote/talentswap-backend/internal/data/repos"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/domain/post"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type PostService interface {
	List(ctx context.Context, q PostListQuery) (*Page[PostSummary], error)
	Create(ctx context.Context, memberID uint64, req PostAddRequest) (*PostAddResponse, error)
	Get(ctx context.Context, id uint64) (*PostReadResponse, error)
	Delete(ctx context.Context, id uint64) (*PostDeleteResponse, error)
	UpdateForOwner(ctx context.Context, memberID, postID uint64, req PostUpdateRequest) (*PostUpdateResponse, error)
	ListMethods() PostMethodsResponse
	Like(ctx context.Context, memberID, postID uint64) (*PostLikeResponse, error)
	Unlike(ctx context.Context, memberID, postID uint64) (*PostLikeResponse, error)
}

// PageLimits bounds the page size accepted by list operations.
type PageLimits struct {
	Default int
	Max     int
}

func (l PageLimits) clamp(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if l.Default <= 0 {
		l.Default = 20
	}
	if size <= 0 {
		size = l.Default
	}
	if l.Max > 0 && size > l.Max {
		size = l.Max
	}
	// page*size is the row offset and page+1 feeds the last-page check; both must fit in an int.
	if maxPage := math.MaxInt/size - 1; page > maxPage {
		page = maxPage
	}
	return page, size
}

type postService struct {
	log         *logger.Logger
	exec        *aggregates.Executor
	members     repos.MemberRepo
	catalog     catalogLookup
	posts       repos.PostRepo
	links       repos.LinkRepo
	postTalents repos.PostTalentRepo
	likes       repos.LikeRepo
	limits      PageLimits
}

func NewPostService(
	log *logger.Logger,
	exec *aggregates.Executor,
	memberRepo repos.MemberRepo,
	mainCategoryRepo repos.MainCategoryRepo,
	midCategoryRepo repos.MidCategoryRepo,
	subCategoryRepo repos.SubCategoryRepo,
	postRepo repos.PostRepo,
	linkRepo repos.LinkRepo,
	postTalentRepo repos.PostTalentRepo,
	likeRepo repos.LikeRepo,
	limits PageLimits,
) PostService {
	return &postService{
		log:         log.With("service", "PostService"),
		exec:        exec,
		members:     memberRepo,
		catalog:     catalogLookup{mains: mainCategoryRepo, mids: midCategoryRepo, subs: subCategoryRepo},
		posts:       postRepo,
		links:       linkRepo,
		postTalents: postTalentRepo,
		likes:       likeRepo,
		limits:      limits,
	}
}

func (s *postService) List(ctx context.Context, q PostListQuery) (*Page[PostSummary], error) {
	const op = "post.list"
	page, size := s.limits.clamp(q.Page, q.Size)

	var out Page[PostSummary]
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		rows, total, err := s.posts.List(dbc, repos.PostListFilter{
			IsShare:       q.IsShare,
			MidCategoryID: q.MidCategoryID,
			Offset:        page * size,
			Limit:         size,
		})
		if err != nil {
			return err
		}

		memberIDs := make([]uint64, 0, len(rows))
		subIDs := make([]uint64, 0, len(rows))
		for _, p := range rows {
			memberIDs = append(memberIDs, p.MemberID)
			subIDs = append(subIDs, p.SubCategoryID)
			subIDs = append(subIDs, p.TakenTalentIDs()...)
		}
		authors, err := s.members.GetByIDs(dbc, uniqueIDs(memberIDs))
		if err != nil {
			return err
		}
		byMember := make(map[uint64]*types.Member, len(authors))
		for _, m := range authors {
			byMember[m.ID] = m
		}
		subNames, err := s.catalog.subNames(dbc, subIDs)
		if err != nil {
			return err
		}

		summaries := make([]PostSummary, 0, len(rows))
		for _, p := range rows {
			sum := PostSummary{
				ID:           p.ID,
				Title:        p.Title,
				SubCategory:  subNames[p.SubCategoryID],
				IsShare:      p.IsShare,
				Likes:        p.LikeCount(),
				MemberID:     p.MemberID,
				TakenTalents: names(p.TakenTalentIDs(), subNames),
			}
			if m := byMember[p.MemberID]; m != nil {
				sum.Nickname = m.Nickname
				sum.Image = m.Image
				sum.Ranks = m.Ranks.Name()
			}
			summaries = append(summaries, sum)
		}
		out = newPage(summaries, page, size, total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *postService) Create(ctx context.Context, memberID uint64, req PostAddRequest) (*PostAddResponse, error) {
	const op = "post.create"
	fields, err := req.fields(op)
	if err != nil {
		return nil, err
	}

	var out *PostAddResponse
	err = s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		author, err := s.members.GetByID(dbc, memberID)
		if err != nil {
			return err
		}
		if author == nil {
			return domainagg.NotFound(op, domainagg.ReasonMemberNotFound)
		}
		class, err := s.catalog.classification(dbc, op, req.MainCategory, req.MidCategory, req.SubCategory)
		if err != nil {
			return err
		}

		links := make([]post.Link, 0, len(req.Links))
		for _, l := range req.Links {
			links = append(links, post.NewLink(l.Content))
		}

		p := post.New(fields)
		if err := p.WriteBy(author.ID); err != nil {
			return err
		}
		p.SetAllCategory(class)
		p.SetLinks(links)
		p.SetTakenContent(req.TakenContent)

		talents, err := s.catalog.talents(dbc, op, req.TakenCategories)
		if err != nil {
			return err
		}
		for _, sub := range talents {
			p.AddTakenTalent(sub)
		}

		saved, err := s.posts.Create(dbc, p)
		if err != nil {
			return err
		}
		out = &PostAddResponse{
			ID:           saved.ID,
			Title:        saved.Title,
			MemberID:     saved.MemberID,
			TakenTalents: subCategoryNames(talents),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("post created", "post_id", out.ID, "member_id", memberID)
	return out, nil
}

func (s *postService) Get(ctx context.Context, id uint64) (*PostReadResponse, error) {
	const op = "post.read"
	var out *PostReadResponse
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		p, err := s.posts.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domainagg.NotFound(op, domainagg.ReasonPostNotFound)
		}
		class, err := s.catalog.classification(dbc, op, p.MainCategoryID, p.MidCategoryID, p.SubCategoryID)
		if err != nil {
			return err
		}
		out = &PostReadResponse{
			ID:             p.ID,
			Title:          p.Title,
			Content:        p.Content,
			IsShare:        p.IsShare,
			MainCategory:   class.Main.Name,
			MidCategory:    class.Mid.Name,
			SubCategory:    class.Sub.Name,
			Links:          linkResponses(p.Links),
			ChatLink:       p.ChatLink,
			Likes:          p.LikeCount(),
			ExchangeType:   p.ExchangeType.Message(),
			ExchangePeriod: p.ExchangePeriod.Message(),
			ExchangeTime:   p.ExchangeTime.Message(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *postService) Delete(ctx context.Context, id uint64) (*PostDeleteResponse, error) {
	const op = "post.delete"
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		p, err := s.posts.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domainagg.NotFound(op, domainagg.ReasonPostNotFound)
		}
		return s.posts.Delete(dbc, p.ID)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("post deleted", "post_id", id)
	return &PostDeleteResponse{ID: id}, nil
}

func (s *postService) UpdateForOwner(ctx context.Context, memberID, postID uint64, req PostUpdateRequest) (*PostUpdateResponse, error) {
	const op = "post.update"
	fields, err := PostAddRequest(req).fields(op)
	if err != nil {
		return nil, err
	}

	var out *PostUpdateResponse
	err = s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		p, err := s.posts.GetByIDForMember(dbc, memberID, postID)
		if err != nil {
			return err
		}
		if p == nil {
			return domainagg.NotFound(op, domainagg.ReasonPostNotFound)
		}
		class, err := s.catalog.classification(dbc, op, req.MainCategory, req.MidCategory, req.SubCategory)
		if err != nil {
			return err
		}
		talents, err := s.catalog.talents(dbc, op, req.TakenCategories)
		if err != nil {
			return err
		}

		// every referenced link must belong to this post before anything is written
		var edited []uint64
		for _, l := range req.Links {
			if l.ID == nil {
				p.AppendLink(l.Content)
				continue
			}
			if err := p.UpdateLink(*l.ID, l.Content); err != nil {
				return err
			}
			edited = append(edited, *l.ID)
		}

		p.Update(fields, req.TakenContent, class, talents)
		if err := s.posts.SaveFields(dbc, p); err != nil {
			return err
		}
		if err := s.postTalents.ReplaceForPost(dbc, p.ID, p.TakenTalentIDs()); err != nil {
			return err
		}
		for _, id := range edited {
			l, _ := p.Link(id)
			ok, err := s.links.UpdateContent(dbc, p.ID, id, l.Content)
			if err != nil {
				return err
			}
			if !ok {
				return domainagg.NotFound(op, domainagg.ReasonLinkNotFound)
			}
		}
		var added []*types.Link
		for i := range p.Links {
			if p.Links[i].ID == 0 {
				added = append(added, &p.Links[i])
			}
		}
		if _, err := s.links.CreateForPost(dbc, p.ID, added); err != nil {
			return err
		}

		out = &PostUpdateResponse{
			ID:             p.ID,
			Title:          p.Title,
			Content:        p.Content,
			IsShare:        p.IsShare,
			MainCategory:   class.Main.Name,
			MidCategory:    class.Mid.Name,
			SubCategory:    class.Sub.Name,
			Links:          linkResponses(p.Links),
			ChatLink:       p.ChatLink,
			TakenTalents:   subCategoryNames(talents),
			TakenContent:   p.TakenContent,
			ExchangeType:   p.ExchangeType.Message(),
			ExchangePeriod: p.ExchangePeriod.Message(),
			ExchangeTime:   p.ExchangeTime.Message(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("post updated", "post_id", postID, "member_id", memberID)
	return out, nil
}

func (s *postService) ListMethods() PostMethodsResponse {
	out := PostMethodsResponse{}
	for _, v := range post.AllExchangeTypes() {
		out.ExchangeTypes = append(out.ExchangeTypes, PostMethodResponse{Name: string(v), Message: v.Message()})
	}
	for _, v := range post.AllExchangePeriods() {
		out.ExchangePeriods = append(out.ExchangePeriods, PostMethodResponse{Name: string(v), Message: v.Message()})
	}
	for _, v := range post.AllExchangeTimes() {
		out.ExchangeTimes = append(out.ExchangeTimes, PostMethodResponse{Name: string(v), Message: v.Message()})
	}
	return out
}

func (s *postService) Like(ctx context.Context, memberID, postID uint64) (*PostLikeResponse, error) {
	const op = "post.like"
	var out *PostLikeResponse
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		p, err := s.likeTarget(dbc, op, memberID, postID)
		if err != nil {
			return err
		}
		if p.LikedBy(memberID) {
			return domainagg.Business(domainagg.CodeConflict, op, domainagg.ReasonAlreadyLiked)
		}
		created, err := s.likes.Create(dbc, p.ID, memberID)
		if err != nil {
			return err
		}
		if !created {
			return domainagg.Business(domainagg.CodeConflict, op, domainagg.ReasonAlreadyLiked)
		}
		if err := s.refreshAuthorRank(dbc, p.MemberID); err != nil {
			return err
		}
		out = &PostLikeResponse{PostID: p.ID, Likes: p.LikeCount() + 1}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *postService) Unlike(ctx context.Context, memberID, postID uint64) (*PostLikeResponse, error) {
	const op = "post.unlike"
	var out *PostLikeResponse
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		p, err := s.likeTarget(dbc, op, memberID, postID)
		if err != nil {
			return err
		}
		removed, err := s.likes.Delete(dbc, p.ID, memberID)
		if err != nil {
			return err
		}
		if !removed {
			return domainagg.NotFound(op, domainagg.ReasonNotLiked)
		}
		if err := s.refreshAuthorRank(dbc, p.MemberID); err != nil {
			return err
		}
		out = &PostLikeResponse{PostID: p.ID, Likes: p.LikeCount() - 1}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *postService) likeTarget(dbc dbctx.Context, op string, memberID, postID uint64) (*types.Post, error) {
	liker, err := s.members.GetByID(dbc, memberID)
	if err != nil {
		return nil, err
	}
	if liker == nil {
		return nil, domainagg.NotFound(op, domainagg.ReasonMemberNotFound)
	}
	p, err := s.posts.GetByID(dbc, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domainagg.NotFound(op, domainagg.ReasonPostNotFound)
	}
	return p, nil
}

// refreshAuthorRank recomputes the author's rank from every like their posts received.
func (s *postService) refreshAuthorRank(dbc dbctx.Context, authorID uint64) error {
	author, err := s.members.GetByID(dbc, authorID)
	if err != nil || author == nil {
		return err
	}
	total, err := s.likes.CountForAuthor(dbc, authorID)
	if err != nil {
		return err
	}
	if !author.RefreshRank(total) {
		return nil
	}
	s.log.Info("member rank changed", "member_id", authorID, "ranks", string(author.Ranks))
	return s.members.UpdateRanks(dbc, authorID, author.Ranks)
}
