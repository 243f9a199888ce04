package member

// TalentType tags a member talent as offered or wanted.
type TalentType string

const (
	TalentGiven TalentType = "GIVEN"
	TalentTaken TalentType = "TAKEN"
)

type MemberTalent struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID      uint64     `gorm:"not null;index;column:member_id" json:"member_id"`
	SubCategoryID uint64     `gorm:"not null;column:sub_category_id" json:"sub_category_id"`
	Type          TalentType `gorm:"not null;column:type" json:"type"`
}

func (MemberTalent) TableName() string { return "member_talent" }
