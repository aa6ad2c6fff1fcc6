package domain

// Alumni Model
type Alumni struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:150;not null" json:"name"`
	Department     string `gorm:"size:100;not null" json:"department"`
	GraduationYear int    `gorm:"not null" json:"graduation_year"`
	CurrentRole    string `gorm:"column:current_role;size:150;not null" json:"current_role"`
	Company        string `gorm:"size:150;not null" json:"company"`
	Location       string `gorm:"size:150;not null" json:"location"`
	Industry       string `gorm:"size:100;not null" json:"industry"`
	AvatarURL      string `gorm:"size:250" json:"avatar_url,omitempty"`
	Email          string `gorm:"size:150" json:"email"`
	LinkedInURL    string `gorm:"column:linkedin_url;size:250" json:"linkedin_url"`
	PasswordHash   string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	IsFeatured     bool   `gorm:"default:false" json:"is_featured"`
}

// TableName pins the table to "alumni" instead of the inflected plural
func (Alumni) TableName() string { return "alumni" }
