package domain

// Post Model
type Post struct {
	ID      uint    `gorm:"primaryKey" json:"id"`                                         // Primary key
	Message string  `gorm:"type:text;not null" json:"message"`                            // Post body
	Likes   int     `gorm:"not null;default:0" json:"likes"`                              // Like counter, only ever incremented
	Replies []Reply `gorm:"constraint:OnDelete:CASCADE;" json:"replies"`                  // One-to-many, deleted with the post
	Tags    []Tag   `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE;" json:"tags"` // Many-to-many through post_tags
}

// TableName keeps the singular table name
func (Post) TableName() string { return "post" }

// Reply Model
type Reply struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Message string `gorm:"type:text;not null" json:"message"`
	PostID  uint   `gorm:"not null;index" json:"post_id"` // Foreign key to Post
}

func (Reply) TableName() string { return "reply" }

// Tag Model, names are stored lowercased and trimmed
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Tag) TableName() string { return "tag" }
