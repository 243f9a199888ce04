package category

// MainCategory is the top level of the talent catalog.
type MainCategory struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;uniqueIndex;column:name" json:"name"`

	MidCategories []MidCategory `gorm:"foreignKey:MainCategoryID" json:"mid_categories,omitempty"`
}

func (MainCategory) TableName() string { return "main_category" }

type MidCategory struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	MainCategoryID uint64 `gorm:"not null;index;column:main_category_id" json:"main_category_id"`
	Name           string `gorm:"not null;column:name" json:"name"`

	SubCategories []SubCategory `gorm:"foreignKey:MidCategoryID" json:"sub_categories,omitempty"`
}

func (MidCategory) TableName() string { return "mid_category" }

// SubCategory is the leaf of the catalog. A talent is always a sub category.
type SubCategory struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	MidCategoryID uint64 `gorm:"not null;index;column:mid_category_id" json:"mid_category_id"`
	Name          string `gorm:"not null;column:name" json:"name"`
}

func (SubCategory) TableName() string { return "sub_category" }
