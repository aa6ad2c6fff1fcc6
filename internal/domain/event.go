package domain

import "time"

// Event Model. Start and end are stored without a zone as IST wall-clock values
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Description string    `gorm:"size:300;not null" json:"description"`
	Location    string    `gorm:"size:150;not null" json:"location"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "events" }
