package post

import "strings"

type Link struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID  uint64 `gorm:"not null;index;column:post_id" json:"post_id"`
	Content string `gorm:"not null;column:content" json:"content"`
}

func (Link) TableName() string { return "link" }

func NewLink(content string) Link {
	return Link{Content: strings.TrimSpace(content)}
}

// PostTalent records a sub category the author wants in exchange.
type PostTalent struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID        uint64 `gorm:"not null;index;column:post_id" json:"post_id"`
	SubCategoryID uint64 `gorm:"not null;column:sub_category_id" json:"sub_category_id"`
}

func (PostTalent) TableName() string { return "post_talent" }

type Like struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID   uint64 `gorm:"not null;uniqueIndex:idx_post_like_member;column:post_id" json:"post_id"`
	MemberID uint64 `gorm:"not null;uniqueIndex:idx_post_like_member;column:member_id" json:"member_id"`
}

func (Like) TableName() string { return "post_like" }
