package services

import (
	"context"
	"strconv"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates"
	"github.com/yungbote/talentswap-backend/internal/data/repos"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/domain/member"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

type MemberInfoResponse struct {
	MemberID     uint64   `json:"memberId"`
	Nickname     string   `json:"nickname"`
	Image        string   `json:"image"`
	Introduction string   `json:"introduction"`
	Ranks        string   `json:"ranks"`
	RanksImage   string   `json:"ranksImage"`
	LikeCount    string   `json:"likeCount"`
	ProfileLink  string   `json:"profileLink"`
	GivenTalents []string `json:"givenTalents"`
	TakenTalents []string `json:"takenTalents"`
}

type MemberNicknameRequest struct {
	Nickname string `json:"nickname"`
}

type MemberNicknameResponse struct {
	Nickname string `json:"nickname"`
}

type MemberUpdateRequest struct {
	Nickname     string   `json:"nickname"`
	Image        string   `json:"image"`
	Introduction string   `json:"introduction"`
	ProfileLink  string   `json:"profileLink"`
	GivenTalents []uint64 `json:"givenTalents"`
	TakenTalents []uint64 `json:"takenTalents"`
}

type MemberUpdateResponse struct {
	Nickname     string   `json:"nickname"`
	Image        string   `json:"image"`
	Introduction string   `json:"introduction"`
	ProfileLink  string   `json:"profileLink"`
	GivenTalents []string `json:"givenTalents"`
	TakenTalents []string `json:"takenTalents"`
}

type RankResponse struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Condition string `json:"condition"`
}

type RanksResponse struct {
	Ranks []RankResponse `json:"ranks"`
}

type MemberService interface {
	ReadMemberInfo(ctx context.Context, memberID uint64) (*MemberInfoResponse, error)
	UpdateNickname(ctx context.Context, memberID uint64, req MemberNicknameRequest) (*MemberNicknameResponse, error)
	Update(ctx context.Context, memberID uint64, req MemberUpdateRequest) (*MemberUpdateResponse, error)
	ListRanks() RanksResponse
}

type memberService struct {
	log     *logger.Logger
	exec    *aggregates.Executor
	members repos.MemberRepo
	talents repos.MemberTalentRepo
	likes   repos.LikeRepo
	catalog catalogLookup
}

func NewMemberService(
	log *logger.Logger,
	exec *aggregates.Executor,
	memberRepo repos.MemberRepo,
	memberTalentRepo repos.MemberTalentRepo,
	likeRepo repos.LikeRepo,
	subCategoryRepo repos.SubCategoryRepo,
) MemberService {
	return &memberService{
		log:     log.With("service", "MemberService"),
		exec:    exec,
		members: memberRepo,
		talents: memberTalentRepo,
		likes:   likeRepo,
		catalog: catalogLookup{subs: subCategoryRepo},
	}
}

func (s *memberService) ReadMemberInfo(ctx context.Context, memberID uint64) (*MemberInfoResponse, error) {
	const op = "member.read"
	var out *MemberInfoResponse
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		m, err := s.load(dbc, op, memberID)
		if err != nil {
			return err
		}
		likes, err := s.likes.CountForAuthor(dbc, m.ID)
		if err != nil {
			return err
		}
		given, taken, err := s.talentNames(dbc, m)
		if err != nil {
			return err
		}
		out = &MemberInfoResponse{
			MemberID:     m.ID,
			Nickname:     m.Nickname,
			Image:        m.Image,
			Introduction: m.Introduction,
			Ranks:        m.Ranks.Name(),
			RanksImage:   m.Ranks.Image(),
			LikeCount:    strconv.FormatInt(likes, 10),
			ProfileLink:  m.ProfileLink,
			GivenTalents: given,
			TakenTalents: taken,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *memberService) UpdateNickname(ctx context.Context, memberID uint64, req MemberNicknameRequest) (*MemberNicknameResponse, error) {
	const op = "member.update_nickname"
	nickname, ok := member.NormalizeNickname(req.Nickname)
	if !ok {
		return nil, domainagg.Validation(op, domainagg.ReasonInvalidNickname, "")
	}
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		m, err := s.load(dbc, op, memberID)
		if err != nil {
			return err
		}
		m.UpdateNickname(nickname)
		return s.members.UpdateNickname(dbc, m.ID, m.Nickname)
	})
	if err != nil {
		return nil, err
	}
	return &MemberNicknameResponse{Nickname: nickname}, nil
}

func (s *memberService) Update(ctx context.Context, memberID uint64, req MemberUpdateRequest) (*MemberUpdateResponse, error) {
	const op = "member.update"
	nickname, ok := member.NormalizeNickname(req.Nickname)
	if !ok {
		return nil, domainagg.Validation(op, domainagg.ReasonInvalidNickname, "")
	}

	var out *MemberUpdateResponse
	err := s.exec.Run(ctx, op, func(dbc dbctx.Context) error {
		m, err := s.load(dbc, op, memberID)
		if err != nil {
			return err
		}
		given, err := s.catalog.talents(dbc, op, req.GivenTalents)
		if err != nil {
			return err
		}
		taken, err := s.catalog.talents(dbc, op, req.TakenTalents)
		if err != nil {
			return err
		}

		m.UpdateProfile(member.Profile{
			Nickname:     nickname,
			Image:        req.Image,
			Introduction: req.Introduction,
			ProfileLink:  req.ProfileLink,
		})
		m.ReplaceTalents(subIDs(given), subIDs(taken))
		if err := s.members.UpdateProfile(dbc, m); err != nil {
			return err
		}
		if err := s.talents.ReplaceForMember(dbc, m.ID, m.Talents); err != nil {
			return err
		}
		out = &MemberUpdateResponse{
			Nickname:     m.Nickname,
			Image:        m.Image,
			Introduction: m.Introduction,
			ProfileLink:  m.ProfileLink,
			GivenTalents: subCategoryNames(given),
			TakenTalents: subCategoryNames(taken),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("member updated", "member_id", memberID)
	return out, nil
}

func (s *memberService) ListRanks() RanksResponse {
	out := RanksResponse{Ranks: []RankResponse{}}
	for _, r := range member.AllRanks() {
		out.Ranks = append(out.Ranks, RankResponse{Name: r.Name(), Image: r.Image(), Condition: r.Condition()})
	}
	return out
}

func (s *memberService) load(dbc dbctx.Context, op string, memberID uint64) (*types.Member, error) {
	m, err := s.members.GetByID(dbc, memberID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domainagg.NotFound(op, domainagg.ReasonMemberNotFound)
	}
	rows, err := s.talents.ListByMember(dbc, m.ID)
	if err != nil {
		return nil, err
	}
	m.Talents = make([]types.MemberTalent, 0, len(rows))
	for _, r := range rows {
		m.Talents = append(m.Talents, *r)
	}
	return m, nil
}

func (s *memberService) talentNames(dbc dbctx.Context, m *types.Member) ([]string, []string, error) {
	givenIDs := m.TalentIDs(member.TalentGiven)
	takenIDs := m.TalentIDs(member.TalentTaken)
	byID, err := s.catalog.subNames(dbc, append(append([]uint64{}, givenIDs...), takenIDs...))
	if err != nil {
		return nil, nil, err
	}
	return names(givenIDs, byID), names(takenIDs, byID), nil
}

func subIDs(subs []types.SubCategory) []uint64 {
	out := make([]uint64, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.ID)
	}
	return out
}
