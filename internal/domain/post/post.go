package post

import (
	"strings"
	"time"

	"github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/domain/category"
)

// Post is a listing offering a talent in exchange for others. It owns its
// links, wanted talents and likes.
type Post struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string         `gorm:"not null;column:title" json:"title"`
	Content        string         `gorm:"type:text;column:content" json:"content"`
	IsShare        bool           `gorm:"not null;default:false;index;column:is_share" json:"is_share"`
	MainCategoryID uint64         `gorm:"not null;column:main_category_id" json:"main_category_id"`
	MidCategoryID  uint64         `gorm:"not null;index;column:mid_category_id" json:"mid_category_id"`
	SubCategoryID  uint64         `gorm:"not null;column:sub_category_id" json:"sub_category_id"`
	ExchangeType   ExchangeType   `gorm:"not null;column:exchange_type" json:"exchange_type"`
	ExchangePeriod ExchangePeriod `gorm:"not null;column:exchange_period" json:"exchange_period"`
	ExchangeTime   ExchangeTime   `gorm:"not null;column:exchange_time" json:"exchange_time"`
	MemberID       uint64         `gorm:"not null;index;column:member_id" json:"member_id"`
	ChatLink       string         `gorm:"column:chat_link" json:"chat_link"`
	TakenContent   string         `gorm:"type:text;column:taken_content" json:"taken_content"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Links        []Link       `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
	TakenTalents []PostTalent `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"taken_talents,omitempty"`
	Likes        []Like       `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string { return "post" }

// Fields are the free-form attributes a member writes on a post.
type Fields struct {
	Title          string
	Content        string
	IsShare        bool
	ChatLink       string
	ExchangeType   ExchangeType
	ExchangePeriod ExchangePeriod
	ExchangeTime   ExchangeTime
}

// Validate checks that every exchange attribute names a known enumeration value.
func (f Fields) Validate(op string) error {
	if strings.TrimSpace(f.Title) == "" {
		return aggregates.Validation(op, aggregates.ReasonInvalidRequest, "title is required")
	}
	if !f.ExchangeType.Valid() {
		return aggregates.Validation(op, aggregates.ReasonInvalidExchangeType, "")
	}
	if !f.ExchangePeriod.Valid() {
		return aggregates.Validation(op, aggregates.ReasonInvalidExchangePeriod, "")
	}
	if !f.ExchangeTime.Valid() {
		return aggregates.Validation(op, aggregates.ReasonInvalidExchangeTime, "")
	}
	return nil
}

// Classification is a resolved main/mid/sub category triple.
type Classification struct {
	Main category.MainCategory
	Mid  category.MidCategory
	Sub  category.SubCategory
}

func New(f Fields) *Post {
	p := &Post{}
	p.apply(f)
	return p
}

func (p *Post) apply(f Fields) {
	p.Title = strings.TrimSpace(f.Title)
	p.Content = f.Content
	p.IsShare = f.IsShare
	p.ChatLink = strings.TrimSpace(f.ChatLink)
	p.ExchangeType = f.ExchangeType
	p.ExchangePeriod = f.ExchangePeriod
	p.ExchangeTime = f.ExchangeTime
}

// WriteBy assigns the owning member. Ownership is fixed once set.
func (p *Post) WriteBy(memberID uint64) error {
	if p.MemberID != 0 {
		return aggregates.Business(aggregates.CodeInvariantViolation, "post.write_by", aggregates.ReasonOwnerAlreadyAssigned)
	}
	if memberID == 0 {
		return aggregates.Validation("post.write_by", aggregates.ReasonMemberNotFound, "member id is required")
	}
	p.MemberID = memberID
	return nil
}

func (p *Post) IsOwnedBy(memberID uint64) bool {
	return p.MemberID != 0 && p.MemberID == memberID
}

func (p *Post) SetAllCategory(c Classification) {
	p.MainCategoryID = c.Main.ID
	p.MidCategoryID = c.Mid.ID
	p.SubCategoryID = c.Sub.ID
}

func (p *Post) SetLinks(links []Link) {
	p.Links = links
}

func (p *Post) SetTakenContent(content string) {
	p.TakenContent = content
}

// AddTakenTalent attaches sub as a wanted talent, ignoring repeats.
func (p *Post) AddTakenTalent(sub category.SubCategory) bool {
	for _, t := range p.TakenTalents {
		if t.SubCategoryID == sub.ID {
			return false
		}
	}
	p.TakenTalents = append(p.TakenTalents, PostTalent{PostID: p.ID, SubCategoryID: sub.ID})
	return true
}

// Update replaces the written fields, classification and wanted talent set in one step.
func (p *Post) Update(f Fields, takenContent string, c Classification, talents []category.SubCategory) {
	p.apply(f)
	p.SetTakenContent(takenContent)
	p.SetAllCategory(c)
	p.TakenTalents = nil
	for _, sub := range talents {
		p.AddTakenTalent(sub)
	}
}

// Link returns the owned link with the given id.
func (p *Post) Link(linkID uint64) (*Link, bool) {
	for i := range p.Links {
		if p.Links[i].ID == linkID {
			return &p.Links[i], true
		}
	}
	return nil, false
}

// UpdateLink edits an owned link in place.
func (p *Post) UpdateLink(linkID uint64, content string) error {
	l, ok := p.Link(linkID)
	if !ok {
		return aggregates.NotFound("post.update_link", aggregates.ReasonLinkNotFound)
	}
	l.Content = strings.TrimSpace(content)
	return nil
}

func (p *Post) AppendLink(content string) {
	p.Links = append(p.Links, NewLink(content))
}

func (p *Post) LikeCount() int {
	return len(p.Likes)
}

// TakenTalentIDs returns the wanted sub category ids in attachment order.
func (p *Post) TakenTalentIDs() []uint64 {
	ids := make([]uint64, 0, len(p.TakenTalents))
	for _, t := range p.TakenTalents {
		ids = append(ids, t.SubCategoryID)
	}
	return ids
}

// LikedBy reports whether memberID already liked the post.
func (p *Post) LikedBy(memberID uint64) bool {
	for _, l := range p.Likes {
		if l.MemberID == memberID {
			return true
		}
	}
	return false
}
