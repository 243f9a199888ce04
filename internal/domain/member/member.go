package member

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const MaxNicknameLength = 20

type Member struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nickname     string    `gorm:"not null;column:nickname" json:"nickname"`
	Image        string    `gorm:"column:image" json:"image"`
	Introduction string    `gorm:"type:text;column:introduction" json:"introduction"`
	ProfileLink  string    `gorm:"column:profile_link" json:"profile_link"`
	Ranks        Ranks     `gorm:"not null;default:ROOKIE;column:ranks" json:"ranks"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Talents []MemberTalent `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"talents,omitempty"`
}

func (Member) TableName() string { return "member" }

// Profile is the editable portion of a member.
type Profile struct {
	Nickname     string
	Image        string
	Introduction string
	ProfileLink  string
}

// NormalizeNickname trims and NFC-normalizes raw, reporting false when the
// result is empty or longer than MaxNicknameLength runes.
func NormalizeNickname(raw string) (string, bool) {
	nickname := norm.NFC.String(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(nickname)
	if n == 0 || n > MaxNicknameLength {
		return "", false
	}
	return nickname, true
}

func (m *Member) UpdateNickname(nickname string) {
	m.Nickname = nickname
}

func (m *Member) UpdateProfile(p Profile) {
	m.Nickname = p.Nickname
	m.Image = strings.TrimSpace(p.Image)
	m.Introduction = p.Introduction
	m.ProfileLink = strings.TrimSpace(p.ProfileLink)
}

// ReplaceTalents swaps both talent sets. Duplicate ids within a set are dropped.
func (m *Member) ReplaceTalents(given, taken []uint64) {
	talents := make([]MemberTalent, 0, len(given)+len(taken))
	talents = appendTalents(talents, m.ID, TalentGiven, given)
	talents = appendTalents(talents, m.ID, TalentTaken, taken)
	m.Talents = talents
}

// RefreshRank recomputes the rank from the member's total received likes and
// reports whether it changed.
func (m *Member) RefreshRank(likes int64) bool {
	next := RankFor(likes)
	if next == m.Ranks {
		return false
	}
	m.Ranks = next
	return true
}

// TalentIDs returns the sub category ids of the given type in stored order.
func (m *Member) TalentIDs(t TalentType) []uint64 {
	var ids []uint64
	for _, mt := range m.Talents {
		if mt.Type == t {
			ids = append(ids, mt.SubCategoryID)
		}
	}
	return ids
}

func appendTalents(dst []MemberTalent, memberID uint64, t TalentType, ids []uint64) []MemberTalent {
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		dst = append(dst, MemberTalent{MemberID: memberID, SubCategoryID: id, Type: t})
	}
	return dst
}
