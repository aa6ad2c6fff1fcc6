package domain

// Admin Model, created or refreshed on every OAuth login
type Admin struct {
	ID         uint   `gorm:"primaryKey" json:"id"`                             // Primary key
	Email      string `gorm:"size:150;uniqueIndex;not null" json:"email"`       // Verified provider email
	Name       string `gorm:"size:150;not null" json:"name"`                    // Display name
	ProfilePic string `gorm:"size:250" json:"profile_pic"`                      // Avatar URL
	Admin      bool   `gorm:"column:admin;not null;default:false" json:"admin"` // Role flag, edited directly in the DB
}

// TableName keeps the historical table name
func (Admin) TableName() string { return "admins" }
