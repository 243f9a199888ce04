package services

import (
	"strings"

	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/domain/post"
)

// PostListQuery filters and pages GET /posts. Page is zero based.
type PostListQuery struct {
	IsShare       *bool
	MidCategoryID *uint64
	Page          int
	Size          int
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

func newPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
		Last:          page+1 >= pages,
	}
}

type PostSummary struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	SubCategory  string   `json:"subCategory"`
	IsShare      bool     `json:"isShare"`
	Likes        int      `json:"likes"`
	MemberID     uint64   `json:"memberId"`
	Nickname     string   `json:"nickname"`
	Image        string   `json:"image"`
	Ranks        string   `json:"ranks"`
	TakenTalents []string `json:"takenTalents"`
}

// LinkRequest carries a link payload. ID is set only when editing an existing link.
type LinkRequest struct {
	ID      *uint64 `json:"id,omitempty"`
	Content string  `json:"content"`
}

type LinkResponse struct {
	ID      uint64 `json:"id"`
	Content string `json:"content"`
}

type PostAddRequest struct {
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	IsShare         bool          `json:"isShare"`
	MainCategory    uint64        `json:"mainCategory"`
	MidCategory     uint64        `json:"midCategory"`
	SubCategory     uint64        `json:"subCategory"`
	ExchangeType    string        `json:"exchangeType"`
	ExchangePeriod  string        `json:"exchangePeriod"`
	ExchangeTime    string        `json:"exchangeTime"`
	Links           []LinkRequest `json:"links"`
	ChatLink        string        `json:"chatLink"`
	TakenCategories []uint64      `json:"takenCategories"`
	TakenContent    string        `json:"takenContent"`
}

type PostAddResponse struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	MemberID     uint64   `json:"memberId"`
	TakenTalents []string `json:"takenTalents"`
}

// PostUpdateRequest replaces a post's fields. Links with an id edit that link,
// links without one are appended.
type PostUpdateRequest PostAddRequest

type PostReadResponse struct {
	ID             uint64         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	IsShare        bool           `json:"isShare"`
	MainCategory   string         `json:"mainCategory"`
	MidCategory    string         `json:"midCategory"`
	SubCategory    string         `json:"subCategory"`
	Links          []LinkResponse `json:"links"`
	ChatLink       string         `json:"chatLink"`
	Likes          int            `json:"likes"`
	ExchangeType   string         `json:"exchangeType"`
	ExchangePeriod string         `json:"exchangePeriod"`
	ExchangeTime   string         `json:"exchangeTime"`
}

type PostUpdateResponse struct {
	ID             uint64         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	IsShare        bool           `json:"isShare"`
	MainCategory   string         `json:"mainCategory"`
	MidCategory    string         `json:"midCategory"`
	SubCategory    string         `json:"subCategory"`
	Links          []LinkResponse `json:"links"`
	ChatLink       string         `json:"chatLink"`
	TakenTalents   []string       `json:"takenTalents"`
	TakenContent   string         `json:"takenContent"`
	ExchangeType   string         `json:"exchangeType"`
	ExchangePeriod string         `json:"exchangePeriod"`
	ExchangeTime   string         `json:"exchangeTime"`
}

type PostDeleteResponse struct {
	ID uint64 `json:"id"`
}

type PostLikeResponse struct {
	PostID uint64 `json:"postId"`
	Likes  int    `json:"likes"`
}

type PostMethodResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type PostMethodsResponse struct {
	ExchangeTypes   []PostMethodResponse `json:"exchangeTypes"`
	ExchangePeriods []PostMethodResponse `json:"exchangePeriods"`
	ExchangeTimes   []PostMethodResponse `json:"exchangeTimes"`
}

// fields parses the exchange attributes and validates the written fields.
func (r PostAddRequest) fields(op string) (post.Fields, error) {
	et, ok := post.ParseExchangeType(r.ExchangeType)
	if !ok {
		return post.Fields{}, domainagg.Validation(op, domainagg.ReasonInvalidExchangeType, "")
	}
	ep, ok := post.ParseExchangePeriod(r.ExchangePeriod)
	if !ok {
		return post.Fields{}, domainagg.Validation(op, domainagg.ReasonInvalidExchangePeriod, "")
	}
	tm, ok := post.ParseExchangeTime(r.ExchangeTime)
	if !ok {
		return post.Fields{}, domainagg.Validation(op, domainagg.ReasonInvalidExchangeTime, "")
	}
	f := post.Fields{
		Title:          r.Title,
		Content:        r.Content,
		IsShare:        r.IsShare,
		ChatLink:       r.ChatLink,
		ExchangeType:   et,
		ExchangePeriod: ep,
		ExchangeTime:   tm,
	}
	if err := f.Validate(op); err != nil {
		return post.Fields{}, err
	}
	for _, l := range r.Links {
		if strings.TrimSpace(l.Content) == "" {
			return post.Fields{}, domainagg.Validation(op, domainagg.ReasonInvalidRequest, "link content is required")
		}
	}
	return f, nil
}

func linkResponses(links []post.Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, LinkResponse{ID: l.ID, Content: l.Content})
	}
	return out
}
